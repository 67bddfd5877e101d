package entities

import "time"

// QuoteDraftStatus is the internal lifecycle of a draft.
//
// Transitions:
//   - created as pending_review (letter empty)
//   - letter populated (still pending_review)
//   - exactly one terminal state after dispatch: review_email_sent or
//     review_email_failed. Resubmission creates a new draft, never revises one.
type QuoteDraftStatus string

const (
	QuoteDraftStatusPendingReview     QuoteDraftStatus = "pending_review"
	QuoteDraftStatusReviewEmailSent   QuoteDraftStatus = "review_email_sent"
	QuoteDraftStatusReviewEmailFailed QuoteDraftStatus = "review_email_failed"
)

// QuotePricing is the derived commercial model for a request. Immutable once
// computed; every currency amount is a whole multiple of 50 GBP.
type QuotePricing struct {
	Currency        string   `json:"currency"`
	ComplexityScore int      `json:"complexityScore"`
	BaseFee         float64  `json:"baseFee"`
	CalculatedFee   float64  `json:"calculatedFee"`
	Contingency     float64  `json:"contingency"`
	RecommendedFee  float64  `json:"recommendedFee"`
	FeeRangeLow     float64  `json:"feeRangeLow"`
	FeeRangeHigh    float64  `json:"feeRangeHigh"`
	LeadDaysMin     int      `json:"leadDaysMin"`
	LeadDaysMax     int      `json:"leadDaysMax"`
	Notes           []string `json:"notes"`
}

// QuoteDraft is the internal, unsent quote recommendation awaiting staff
// approval. The repository owns drafts for their full lifetime; collaborators
// receive copies and return derived values.
type QuoteDraft struct {
	ID               string           `json:"id"`
	SubmittedAt      time.Time        `json:"submittedAtIso"`
	Request          QuoteRequest     `json:"request"`
	Pricing          QuotePricing     `json:"pricing"`
	Outputs          []string         `json:"outputs"`
	QuoteLetter      string           `json:"quoteLetter"`
	Status           QuoteDraftStatus `json:"status"`
	ReviewRecipients []string         `json:"reviewRecipients"`
	ReviewProviderID string           `json:"reviewProviderId,omitempty"`
	ReviewError      string           `json:"reviewError,omitempty"`
}

// QuoteDraftStatusUpdate carries the optional fields merged alongside a status
// transition. A nil pointer keeps the stored value; a non-nil pointer
// overwrites it, including overwriting with "" to clear a prior error or
// provider id. This distinction is load-bearing: the success transition must
// clear ReviewError without touching anything else.
type QuoteDraftStatusUpdate struct {
	QuoteLetter      *string
	ReviewProviderID *string
	ReviewError      *string
}

// ReviewDispatchResult is the outcome of one review dispatch attempt. It is
// always a value, never a raised error: the dispatcher converts every failure
// mode into Delivered=false with a diagnostic.
type ReviewDispatchResult struct {
	Delivered  bool
	ProviderID string
	Error      string
}
