// Package quote holds the pure derivation logic of the quote pipeline:
// pricing, deliverable recommendation and the internal review letter. Nothing
// in this package performs I/O; every function is deterministic given its
// inputs and the supplied clock value.
package quote

import "coyne_ecology/internal/domain/entities"

// ServiceConfig is the fixed commercial profile of one assessment product.
type ServiceConfig struct {
	Label          string
	BaseFee        float64
	BaseDays       int
	Weight         int
	DefaultOutputs []string
}

// StageConfig is the fixed profile of one planning-process phase.
type StageConfig struct {
	Label      string
	Weight     int
	Multiplier float64
}

// ContextConfig is the fixed profile of one site classification.
type ContextConfig struct {
	Label      string
	Weight     int
	Multiplier float64
}

// ServiceConfigFor resolves the commercial profile for a service. Inputs are
// validated at the boundary; an unknown value here is a programming error.
func ServiceConfigFor(s entities.Service) ServiceConfig {
	switch s {
	case entities.ServicePEA:
		return ServiceConfig{
			Label:    "PEA Survey",
			BaseFee:  950,
			BaseDays: 5,
			Weight:   0,
			DefaultOutputs: []string{
				"Planning-ready baseline and constraints note",
				"Survey route for follow-on requirements",
			},
		}
	case entities.ServicePRA:
		return ServiceConfig{
			Label:    "PRA (Bats)",
			BaseFee:  1350,
			BaseDays: 7,
			Weight:   1,
			DefaultOutputs: []string{
				"Roost risk classification",
				"Targeted survey mobilisation plan",
			},
		}
	case entities.ServiceBNG:
		return ServiceConfig{
			Label:    "BNG Assessment",
			BaseFee:  2200,
			BaseDays: 8,
			Weight:   2,
			DefaultOutputs: []string{
				"Defra metric workbook",
				"Mitigation and delivery strategy summary",
			},
		}
	case entities.ServiceSpecies:
		return ServiceConfig{
			Label:    "Protected Species",
			BaseFee:  1850,
			BaseDays: 8,
			Weight:   1,
			DefaultOutputs: []string{
				"Species survey findings",
				"Licensing and mitigation route note",
			},
		}
	}
	panic("quote: unknown service " + string(s))
}

// StageConfigFor resolves the profile for a planning stage.
func StageConfigFor(s entities.Stage) StageConfig {
	switch s {
	case entities.StageAppraisal:
		return StageConfig{Label: "Site appraisal", Weight: 0, Multiplier: 0.94}
	case entities.StagePrePlanning:
		return StageConfig{Label: "Pre-planning", Weight: 1, Multiplier: 1.0}
	case entities.StageValidation:
		return StageConfig{Label: "Validation stage", Weight: 2, Multiplier: 1.15}
	case entities.StagePostConsent:
		return StageConfig{Label: "Post-consent", Weight: 1, Multiplier: 1.08}
	}
	panic("quote: unknown stage " + string(s))
}

// ContextConfigFor resolves the profile for a site context.
func ContextConfigFor(c entities.SiteContext) ContextConfig {
	switch c {
	case entities.SiteContextUrban:
		return ContextConfig{Label: "Urban infill", Weight: 0, Multiplier: 0.96}
	case entities.SiteContextEdge:
		return ContextConfig{Label: "Settlement edge", Weight: 1, Multiplier: 1.04}
	case entities.SiteContextStrategic:
		return ContextConfig{Label: "Strategic land", Weight: 2, Multiplier: 1.18}
	}
	panic("quote: unknown site context " + string(c))
}
