package interfaces

import (
	"context"

	"coyne_ecology/internal/domain/entities"
)

// IReviewDispatcher routes a fully hydrated draft to internal reviewers.
//
// DispatchForReview never returns an error: configuration gaps, rendering
// failures and provider failures are all folded into the result so the
// submission pipeline can finish with a definite outcome.
type IReviewDispatcher interface {
	DispatchForReview(ctx context.Context, draft entities.QuoteDraft) entities.ReviewDispatchResult
}
