package response

import (
	"time"

	"coyne_ecology/internal/domain/entities"
	"coyne_ecology/internal/domain/quote"
)

// Client-visible dispatch outcome tags. Deliberately coarser than the internal
// draft status; the requester never sees provider detail.
const (
	ReviewDispatchEmailSent   = "email_sent"
	ReviewDispatchEmailFailed = "email_failed"
)

// QuoteSubmissionResponse is the 202 body returned to the public form.
type QuoteSubmissionResponse struct {
	RequestID      string `json:"requestId"`
	Reference      string `json:"reference"`
	Status         string `json:"status"`
	ReviewDispatch string `json:"reviewDispatch"`
	Message        string `json:"message"`
}

// FromSubmission shapes the client response for a finished submission. The
// message varies only by dispatch outcome and never carries internal error
// text.
func FromSubmission(draft entities.QuoteDraft, result entities.ReviewDispatchResult) QuoteSubmissionResponse {
	dispatch := ReviewDispatchEmailFailed
	message := "Request received. An internal quote draft has been generated and queued for manual review."
	if result.Delivered {
		dispatch = ReviewDispatchEmailSent
		message = "Request received. An internal quote draft has been generated and sent for team review."
	}
	return QuoteSubmissionResponse{
		RequestID:      draft.ID,
		Reference:      quote.Reference(draft.ID),
		Status:         "pending_internal_review",
		ReviewDispatch: dispatch,
		Message:        message,
	}
}

// QuoteDraftResponse is the staff-facing full view of one draft, internal
// pricing included.
type QuoteDraftResponse struct {
	ID               string                `json:"id"`
	Reference        string                `json:"reference"`
	SubmittedAtIso   string                `json:"submittedAtIso"`
	Request          entities.QuoteRequest `json:"request"`
	Pricing          entities.QuotePricing `json:"pricing"`
	Outputs          []string              `json:"outputs"`
	QuoteLetter      string                `json:"quoteLetter"`
	Status           string                `json:"status"`
	ReviewRecipients []string              `json:"reviewRecipients"`
	ReviewProviderID string                `json:"reviewProviderId,omitempty"`
	ReviewError      string                `json:"reviewError,omitempty"`
}

func FromQuoteDraft(d entities.QuoteDraft) QuoteDraftResponse {
	return QuoteDraftResponse{
		ID:               d.ID,
		Reference:        quote.Reference(d.ID),
		SubmittedAtIso:   d.SubmittedAt.UTC().Format(time.RFC3339),
		Request:          d.Request,
		Pricing:          d.Pricing,
		Outputs:          d.Outputs,
		QuoteLetter:      d.QuoteLetter,
		Status:           string(d.Status),
		ReviewRecipients: d.ReviewRecipients,
		ReviewProviderID: d.ReviewProviderID,
		ReviewError:      d.ReviewError,
	}
}

// QuoteDraftSummaryResponse is the staff-facing list row for one draft.
type QuoteDraftSummaryResponse struct {
	ID             string  `json:"id"`
	Reference      string  `json:"reference"`
	SubmittedAtIso string  `json:"submittedAtIso"`
	ProjectName    string  `json:"projectName"`
	Service        string  `json:"service"`
	Status         string  `json:"status"`
	RecommendedFee float64 `json:"recommendedFee"`
}

func FromQuoteDrafts(drafts []entities.QuoteDraft) []QuoteDraftSummaryResponse {
	out := make([]QuoteDraftSummaryResponse, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, QuoteDraftSummaryResponse{
			ID:             d.ID,
			Reference:      quote.Reference(d.ID),
			SubmittedAtIso: d.SubmittedAt.UTC().Format(time.RFC3339),
			ProjectName:    d.Request.ProjectName,
			Service:        string(d.Request.Service),
			Status:         string(d.Status),
			RecommendedFee: d.Pricing.RecommendedFee,
		})
	}
	return out
}
