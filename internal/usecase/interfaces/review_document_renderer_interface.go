package interfaces

import "coyne_ecology/internal/domain/entities"

// IReviewDocumentRenderer produces the formatted review document attached to
// dispatch emails. Rendering performs no I/O; a returned error means the
// document could not be assembled and the dispatch must be recorded as failed.
type IReviewDocumentRenderer interface {
	Render(draft entities.QuoteDraft) ([]byte, error)
}
