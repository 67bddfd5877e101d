package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"coyne_ecology/internal/domain/entities"
	"coyne_ecology/internal/usecase/interfaces"
)

// QuoteDraftMemoryRepository keeps drafts in an in-process map. Drafts are
// volatile by design: a restart loses them, and nothing in scope requires
// durability. The repository is safe for concurrent submissions; each update
// targets a single draft by id.
type QuoteDraftMemoryRepository struct {
	mu     sync.RWMutex
	drafts map[string]entities.QuoteDraft
}

var _ interfaces.IQuoteDraftRepository = (*QuoteDraftMemoryRepository)(nil)

func NewQuoteDraftMemoryRepository() *QuoteDraftMemoryRepository {
	return &QuoteDraftMemoryRepository{drafts: make(map[string]entities.QuoteDraft)}
}

// Create assigns a fresh id and stores the draft.
func (r *QuoteDraftMemoryRepository) Create(_ context.Context, draft entities.QuoteDraft) (entities.QuoteDraft, error) {
	draft.ID = uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[draft.ID] = draft
	return draft, nil
}

// GetByID returns the stored draft, or a zero draft when the id is unknown.
func (r *QuoteDraftMemoryRepository) GetByID(_ context.Context, id string) (entities.QuoteDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.drafts[id], nil
}

// List returns all drafts sorted by submission time, newest first.
func (r *QuoteDraftMemoryRepository) List(_ context.Context) ([]entities.QuoteDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drafts := make([]entities.QuoteDraft, 0, len(r.drafts))
	for _, d := range r.drafts {
		drafts = append(drafts, d)
	}
	sort.Slice(drafts, func(i, j int) bool {
		return drafts[i].SubmittedAt.After(drafts[j].SubmittedAt)
	})
	return drafts, nil
}

// UpdateStatus merges a status transition into the stored draft. Nil pointers
// in the update keep the stored values; non-nil pointers overwrite them, so a
// pointer to "" clears a prior error or provider id. Returns a zero draft when
// the id is unknown.
func (r *QuoteDraftMemoryRepository) UpdateStatus(_ context.Context, id string, status entities.QuoteDraftStatus, update entities.QuoteDraftStatusUpdate) (entities.QuoteDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.drafts[id]
	if !ok {
		return entities.QuoteDraft{}, nil
	}

	existing.Status = status
	if update.QuoteLetter != nil {
		existing.QuoteLetter = *update.QuoteLetter
	}
	if update.ReviewProviderID != nil {
		existing.ReviewProviderID = *update.ReviewProviderID
	}
	if update.ReviewError != nil {
		existing.ReviewError = *update.ReviewError
	}

	r.drafts[id] = existing
	return existing, nil
}
