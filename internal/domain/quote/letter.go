package quote

import (
	"fmt"
	"strings"
	"time"

	"coyne_ecology/internal/domain/entities"
)

// Reference derives the short human-readable identifier shown to requesters
// and reviewers from a draft id.
func Reference(id string) string {
	short := id
	if len(short) > 8 {
		short = short[:8]
	}
	return "Q-" + strings.ToUpper(short)
}

// FormatGBP renders a currency amount as whole pounds with thousands
// separators, e.g. 12450 -> "£12,450".
func FormatGBP(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	intPart := fmt.Sprintf("%.0f", amount)

	n := len(intPart)
	if n > 3 {
		var b strings.Builder
		head := n % 3
		if head > 0 {
			b.WriteString(intPart[:head])
		}
		for i := head; i < n; i += 3 {
			if b.Len() > 0 {
				b.WriteString(",")
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}

	result := "£" + intPart
	if negative {
		result = "-" + result
	}
	return result
}

// ComposeLetter builds the plain-text internal review letter for a draft. The
// letter is the audit and email-body representation of the same data the PDF
// renders; its line structure is fixed and load-bearing for reviewers' tooling.
func ComposeLetter(id string, req entities.QuoteRequest, pricing entities.QuotePricing, outputs []string, now time.Time) string {
	service := ServiceConfigFor(req.Service)
	stage := StageConfigFor(req.Stage)
	siteCtx := ContextConfigFor(req.SiteContext)

	urgency := "Standard mobilisation"
	if req.IsUrgent {
		urgency = "Priority mobilisation requested"
	}
	requiredBy := req.RequiredBy
	if requiredBy == "" {
		requiredBy = "Not provided"
	}

	lines := []string{
		fmt.Sprintf("Quote Draft Reference: %s", Reference(id)),
		fmt.Sprintf("Prepared: %s", now.UTC().Format(time.RFC3339)),
		"",
		"Client Request",
		fmt.Sprintf("Project: %s", req.ProjectName),
		fmt.Sprintf("Contact: %s", req.ContactEmail),
		fmt.Sprintf("Service: %s", service.Label),
		fmt.Sprintf("Stage: %s", stage.Label),
		fmt.Sprintf("Site context: %s", siteCtx.Label),
		fmt.Sprintf("Site size: %.1f ha", req.Hectares),
		fmt.Sprintf("Urgency: %s", urgency),
		fmt.Sprintf("Required by: %s", requiredBy),
		"",
		"Proposed Scope Outputs",
	}
	for _, output := range outputs {
		lines = append(lines, fmt.Sprintf("- %s", output))
	}
	lines = append(lines,
		"",
		"Internal Pricing Model (Not client-facing)",
		fmt.Sprintf("Base fee: %s", FormatGBP(pricing.BaseFee)),
		fmt.Sprintf("Calculated fee: %s", FormatGBP(pricing.CalculatedFee)),
		fmt.Sprintf("Contingency: %s", FormatGBP(pricing.Contingency)),
		fmt.Sprintf("Recommended fee: %s", FormatGBP(pricing.RecommendedFee)),
		fmt.Sprintf("Commercial range: %s - %s", FormatGBP(pricing.FeeRangeLow), FormatGBP(pricing.FeeRangeHigh)),
		fmt.Sprintf("Lead time: %d-%d working days", pricing.LeadDaysMin, pricing.LeadDaysMax),
		fmt.Sprintf("Complexity score: %d", pricing.ComplexityScore),
	)
	for _, note := range pricing.Notes {
		lines = append(lines, fmt.Sprintf("- %s", note))
	}
	lines = append(lines,
		"",
		"Review Action",
		"1. Validate assumptions and scope.",
		"2. Confirm final fee position and margin.",
		"3. Approve release of client-facing quote letter.",
	)

	return strings.Join(lines, "\n")
}
