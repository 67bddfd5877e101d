package interfaces

import (
	"context"

	"coyne_ecology/internal/domain/entities"
)

// IQuoteDraftRepository abstracts draft persistence.
//
// The quote pipeline must be able to:
//   - create a draft when a form submission passes validation
//   - fetch one draft for internal review
//   - list drafts newest-first
//   - merge a status transition with any of letter/provider-id/error fields
//
// The in-scope implementation is an in-process map; the interface keeps the
// pipeline untouched if a durable store ever replaces it. Absence is reported
// as a zero-ID draft with a nil error; callers translate that into their own
// not-found handling.
type IQuoteDraftRepository interface {
	Create(ctx context.Context, draft entities.QuoteDraft) (entities.QuoteDraft, error)
	GetByID(ctx context.Context, id string) (entities.QuoteDraft, error)
	List(ctx context.Context) ([]entities.QuoteDraft, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteDraftStatus, update entities.QuoteDraftStatusUpdate) (entities.QuoteDraft, error)
}
