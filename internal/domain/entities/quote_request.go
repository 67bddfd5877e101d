package entities

// Service is the survey/assessment product being quoted.
//
// Domain notes:
//   - The keys are opaque product codes used by the public quote form.
//   - Pricing and deliverable lookup tables are keyed by these values, so a
//     new service must be added to every exhaustive switch over Service.
type Service string

const (
	ServicePEA     Service = "pea"
	ServicePRA     Service = "pra"
	ServiceBNG     Service = "bng"
	ServiceSpecies Service = "species"
)

// ParseService maps a raw payload value onto a known Service.
func ParseService(raw string) (Service, bool) {
	switch Service(raw) {
	case ServicePEA, ServicePRA, ServiceBNG, ServiceSpecies:
		return Service(raw), true
	}
	return "", false
}

// Stage is the planning-process phase the project is in.
type Stage string

const (
	StageAppraisal   Stage = "appraisal"
	StagePrePlanning Stage = "prePlanning"
	StageValidation  Stage = "validation"
	StagePostConsent Stage = "postConsent"
)

// ParseStage maps a raw payload value onto a known Stage.
func ParseStage(raw string) (Stage, bool) {
	switch Stage(raw) {
	case StageAppraisal, StagePrePlanning, StageValidation, StagePostConsent:
		return Stage(raw), true
	}
	return "", false
}

// SiteContext classifies the site's planning context.
type SiteContext string

const (
	SiteContextUrban     SiteContext = "urban"
	SiteContextEdge      SiteContext = "edge"
	SiteContextStrategic SiteContext = "strategic"
)

// ParseSiteContext maps a raw payload value onto a known SiteContext.
func ParseSiteContext(raw string) (SiteContext, bool) {
	switch SiteContext(raw) {
	case SiteContextUrban, SiteContextEdge, SiteContextStrategic:
		return SiteContext(raw), true
	}
	return "", false
}

// QuoteRequest is the validated quote form payload. It is immutable once
// accepted: the pipeline only ever derives new values from it.
//
// Field constraints (enforced at the HTTP boundary, assumed everywhere else):
//   - Hectares within [0.1, 500]
//   - ProjectName trimmed, length [2, 120]
//   - ContactEmail trimmed, valid shape, length <= 160
//   - RequiredBy optional; empty string means no client deadline
type QuoteRequest struct {
	Service      Service     `json:"service"`
	Stage        Stage       `json:"stage"`
	SiteContext  SiteContext `json:"siteContext"`
	Hectares     float64     `json:"hectares"`
	IsUrgent     bool        `json:"isUrgent"`
	RequiredBy   string      `json:"requiredBy,omitempty"`
	ProjectName  string      `json:"projectName"`
	ContactEmail string      `json:"contactEmail"`
}
