package request

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"coyne_ecology/internal/domain/entities"
)

var validate = validator.New()

// FieldIssue is one field-level validation problem reported to the caller.
// Path is the dot-joined location of the offending field.
type FieldIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// FlexibleNumber accepts both JSON numbers and numeric strings; the public
// quote form submits hectares either way depending on the input widget. A
// value that parses as neither becomes NaN and is rejected during validation
// rather than failing the whole payload bind.
type FlexibleNumber float64

func (f *FlexibleNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = FlexibleNumber(math.NaN())
		return nil
	}
	*f = FlexibleNumber(v)
	return nil
}

// QuoteSubmissionRequest is the raw quote form payload. Validate turns it into
// a domain request or a list of field issues; nothing downstream sees
// unvalidated values.
type QuoteSubmissionRequest struct {
	Service      string         `json:"service"`
	Stage        string         `json:"stage"`
	SiteContext  string         `json:"siteContext"`
	Hectares     FlexibleNumber `json:"hectares"`
	IsUrgent     bool           `json:"isUrgent"`
	RequiredBy   *string        `json:"requiredBy"`
	ProjectName  string         `json:"projectName"`
	ContactEmail string         `json:"contactEmail"`
}

// Validate checks every field and returns the normalized domain request. The
// returned issues cover all failing fields at once so the form can surface
// them together.
func (r QuoteSubmissionRequest) Validate() (entities.QuoteRequest, []FieldIssue) {
	var issues []FieldIssue

	service, ok := entities.ParseService(r.Service)
	if !ok {
		issues = append(issues, FieldIssue{Path: "service", Message: "must be one of pea, pra, bng, species"})
	}
	stage, ok := entities.ParseStage(r.Stage)
	if !ok {
		issues = append(issues, FieldIssue{Path: "stage", Message: "must be one of appraisal, prePlanning, validation, postConsent"})
	}
	siteContext, ok := entities.ParseSiteContext(r.SiteContext)
	if !ok {
		issues = append(issues, FieldIssue{Path: "siteContext", Message: "must be one of urban, edge, strategic"})
	}

	hectares := float64(r.Hectares)
	switch {
	case math.IsNaN(hectares):
		issues = append(issues, FieldIssue{Path: "hectares", Message: "must be a number"})
	case hectares < 0.1 || hectares > 500:
		issues = append(issues, FieldIssue{Path: "hectares", Message: "must be between 0.1 and 500"})
	}

	projectName := strings.TrimSpace(r.ProjectName)
	if len(projectName) < 2 || len(projectName) > 120 {
		issues = append(issues, FieldIssue{Path: "projectName", Message: "must be between 2 and 120 characters"})
	}

	contactEmail := strings.TrimSpace(r.ContactEmail)
	if err := validate.Var(contactEmail, "required,email,max=160"); err != nil {
		issues = append(issues, FieldIssue{Path: "contactEmail", Message: "must be a valid email address of at most 160 characters"})
	}

	requiredBy := ""
	if r.RequiredBy != nil {
		requiredBy = strings.TrimSpace(*r.RequiredBy)
	}

	if len(issues) > 0 {
		return entities.QuoteRequest{}, issues
	}

	return entities.QuoteRequest{
		Service:      service,
		Stage:        stage,
		SiteContext:  siteContext,
		Hectares:     hectares,
		IsUrgent:     r.IsUrgent,
		RequiredBy:   requiredBy,
		ProjectName:  projectName,
		ContactEmail: contactEmail,
	}, nil
}
