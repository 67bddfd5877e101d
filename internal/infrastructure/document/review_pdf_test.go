package document

import (
	"strings"
	"testing"
	"time"

	"coyne_ecology/internal/domain/entities"
	"coyne_ecology/internal/domain/quote"
)

func sampleDraft() entities.QuoteDraft {
	req := entities.QuoteRequest{
		Service:      entities.ServiceBNG,
		Stage:        entities.StageValidation,
		SiteContext:  entities.SiteContextStrategic,
		Hectares:     6,
		IsUrgent:     true,
		RequiredBy:   "2025-03-20",
		ProjectName:  "Ridge Farm Extension",
		ContactEmail: "dev@ridgefarm.example",
	}
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	pricing := quote.ComputePricing(req, now)
	return entities.QuoteDraft{
		ID:               "9f86d081-884c-4d63-9b0e-36f4b8b6c8a1",
		SubmittedAt:      now,
		Request:          req,
		Pricing:          pricing,
		Outputs:          quote.RecommendOutputs(req),
		Status:           entities.QuoteDraftStatusPendingReview,
		ReviewRecipients: []string{"review@coyne.co.uk"},
	}
}

func TestReviewPDFRenderer_Render(t *testing.T) {
	r := NewReviewPDFRenderer()

	result, err := r.Render(sampleDraft())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("Render() returned empty bytes")
	}
	if !strings.HasPrefix(string(result[:5]), "%PDF-") {
		t.Error("result does not start with PDF header")
	}
}

func TestReviewPDFRenderer_RenderNoNotes(t *testing.T) {
	draft := sampleDraft()
	draft.Request.IsUrgent = false
	draft.Pricing.Notes = nil

	r := NewReviewPDFRenderer()
	result, err := r.Render(draft)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("Render() returned empty bytes")
	}
}

// A draft with many long outputs and notes must paginate rather than fail or
// clip; deterministic rendering is checked alongside.
func TestReviewPDFRenderer_RenderOverflowsToSecondPage(t *testing.T) {
	draft := sampleDraft()
	long := strings.Repeat("Extended habitat parcel sequencing consideration across the survey boundary. ", 4)
	for i := 0; i < 30; i++ {
		draft.Outputs = append(draft.Outputs, long)
		draft.Pricing.Notes = append(draft.Pricing.Notes, long)
	}

	r := NewReviewPDFRenderer()
	first, err := r.Render(draft)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	single, err := r.Render(sampleDraft())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(first) <= len(single) {
		t.Errorf("overflowing draft (%d bytes) should render larger than single-page draft (%d bytes)", len(first), len(single))
	}

	again, err := r.Render(draft)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(first) != len(again) {
		t.Errorf("renders of identical draft differ in size: %d vs %d", len(first), len(again))
	}
}
