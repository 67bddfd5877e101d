package quote

import (
	"math"
	"time"

	"coyne_ecology/internal/domain/entities"
)

// Pricing note texts, appended in this fixed order when their condition holds.
const (
	noteUrgencyUplift     = "Urgency uplift applied for priority mobilisation."
	noteTightDeadline     = "Deadline is tighter than modelled lead time; sequencing risk is elevated."
	noteLargeSite         = "Large-site complexity factor applied."
	noteValidationPremium = "Validation-stage response premium applied."
)

// requiredByLayouts are the date shapes the public form is known to submit.
var requiredByLayouts = []string{"2006-01-02", time.RFC3339}

// ComputePricing derives the internal commercial model for a validated
// request. It is a pure, total function: all failure modes are excluded by
// boundary validation, and the result depends only on the request and now.
func ComputePricing(req entities.QuoteRequest, now time.Time) entities.QuotePricing {
	service := ServiceConfigFor(req.Service)
	stage := StageConfigFor(req.Stage)
	siteCtx := ContextConfigFor(req.SiteContext)

	hectareWeight := 0
	switch {
	case req.Hectares >= 5:
		hectareWeight = 2
	case req.Hectares >= 2:
		hectareWeight = 1
	}
	urgencyWeight := 0
	if req.IsUrgent {
		urgencyWeight = 2
	}
	complexityScore := service.Weight + stage.Weight + siteCtx.Weight + hectareWeight + urgencyWeight

	deadlineDays, hasDeadline := daysUntilDeadline(req.RequiredBy, now)
	deadlineMultiplier := 1.0
	if hasDeadline {
		switch {
		case deadlineDays < 7:
			deadlineMultiplier = 1.32
		case deadlineDays < 14:
			deadlineMultiplier = 1.18
		case deadlineDays < 21:
			deadlineMultiplier = 1.08
		}
	}

	urgencyMultiplier := 1.0
	if req.IsUrgent {
		urgencyMultiplier = 1.22
	}
	sizeMultiplier := 1 + math.Min(req.Hectares, 50)*0.015
	complexityMultiplier := 1 + float64(complexityScore)*0.04

	rawFee := service.BaseFee *
		stage.Multiplier *
		siteCtx.Multiplier *
		sizeMultiplier *
		complexityMultiplier *
		urgencyMultiplier *
		deadlineMultiplier

	calculatedFee := roundToNearest(rawFee, 50)
	contingency := roundToNearest(calculatedFee*(0.08+float64(complexityScore)*0.008), 50)
	recommendedFee := calculatedFee + contingency
	feeRangeLow := roundToNearest(recommendedFee*0.92, 50)
	feeRangeHigh := roundToNearest(recommendedFee*1.08, 50)

	urgencyDiscount := 0
	if req.IsUrgent {
		urgencyDiscount = 2
	}
	leadDaysMin := service.BaseDays + int(math.Round(float64(complexityScore)*0.7)) - urgencyDiscount
	if leadDaysMin < 3 {
		leadDaysMin = 3
	}
	leadDaysMax := leadDaysMin + 3

	var notes []string
	if req.IsUrgent {
		notes = append(notes, noteUrgencyUplift)
	}
	if hasDeadline && deadlineDays < leadDaysMin {
		notes = append(notes, noteTightDeadline)
	}
	if req.Hectares >= 5 {
		notes = append(notes, noteLargeSite)
	}
	if req.Stage == entities.StageValidation {
		notes = append(notes, noteValidationPremium)
	}

	return entities.QuotePricing{
		Currency:        "GBP",
		ComplexityScore: complexityScore,
		BaseFee:         service.BaseFee,
		CalculatedFee:   calculatedFee,
		Contingency:     contingency,
		RecommendedFee:  recommendedFee,
		FeeRangeLow:     feeRangeLow,
		FeeRangeHigh:    feeRangeHigh,
		LeadDaysMin:     leadDaysMin,
		LeadDaysMax:     leadDaysMax,
		Notes:           notes,
	}
}

// roundToNearest rounds v to the nearest multiple of n, halves away from zero.
func roundToNearest(v, n float64) float64 {
	return math.Round(v/n) * n
}

// daysUntilDeadline returns the whole days between midnight today and the
// requested deadline, rounded up. The second return is false when no deadline
// was supplied or the value does not parse; an unparseable date is treated the
// same as an absent one rather than rejected.
func daysUntilDeadline(requiredBy string, now time.Time) (int, bool) {
	if requiredBy == "" {
		return 0, false
	}
	var deadline time.Time
	parsed := false
	for _, layout := range requiredByLayouts {
		if t, err := time.ParseInLocation(layout, requiredBy, now.Location()); err == nil {
			deadline = t
			parsed = true
			break
		}
	}
	if !parsed {
		return 0, false
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := math.Ceil(deadline.Sub(midnight).Hours() / 24)
	return int(days), true
}
