package quote

import (
	"fmt"

	"coyne_ecology/internal/domain/entities"
)

// RecommendOutputs returns the ordered deliverables proposed for a request:
// the service's default outputs first, then one stage-specific and one
// context-specific line. All entries are distinct by construction.
func RecommendOutputs(req entities.QuoteRequest) []string {
	service := ServiceConfigFor(req.Service)
	stage := StageConfigFor(req.Stage)
	siteCtx := ContextConfigFor(req.SiteContext)

	outputs := make([]string, 0, len(service.DefaultOutputs)+2)
	outputs = append(outputs, service.DefaultOutputs...)
	outputs = append(outputs,
		fmt.Sprintf("%s delivery sequencing note", stage.Label),
		fmt.Sprintf("%s constraints integration summary", siteCtx.Label),
	)
	return outputs
}
