package interfaces

import "context"

// ReviewAttachment is one base64-encodable file attached to a review email.
type ReviewAttachment struct {
	Filename string
	Content  []byte
}

// ReviewEmail is the provider-agnostic shape of one internal review message.
type ReviewEmail struct {
	From        string
	To          []string
	Subject     string
	HTML        string
	Attachments []ReviewAttachment
}

// IReviewMailer abstracts the external transactional-email provider.
//
// Send performs exactly one bounded network call and returns the provider's
// message identifier on success. A non-2xx provider response surfaces as an
// error embedding the status code and raw body so the dispatcher can record it.
type IReviewMailer interface {
	Send(ctx context.Context, email ReviewEmail) (providerID string, err error)
}
