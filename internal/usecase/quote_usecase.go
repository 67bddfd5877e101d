package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"coyne_ecology/internal/domain/entities"
	"coyne_ecology/internal/domain/quote"
	"coyne_ecology/internal/usecase/interfaces"
)

var (
	ErrQuoteDraftNotFound = errors.New("quote draft not found")
	ErrInvalidDraftID     = errors.New("invalid draft id")
)

// IQuoteUseCase exposes the quote-drafting pipeline.
//
// SubmitQuoteRequest runs the full sequence for one validated request:
// pricing, deliverable recommendation, draft creation, letter composition,
// review dispatch and the terminal status transition. The returned dispatch
// result is advisory; once input is valid the submission itself always
// succeeds.
type IQuoteUseCase interface {
	SubmitQuoteRequest(ctx context.Context, req entities.QuoteRequest) (entities.QuoteDraft, entities.ReviewDispatchResult, error)
	GetDraft(ctx context.Context, id string) (entities.QuoteDraft, error)
	ListDrafts(ctx context.Context) ([]entities.QuoteDraft, error)
}

type QuoteUseCase struct {
	repo       interfaces.IQuoteDraftRepository
	dispatcher interfaces.IReviewDispatcher
	recipients []string
	now        func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteDraftRepository, dispatcher interfaces.IReviewDispatcher, recipients []string) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, dispatcher: dispatcher, recipients: recipients, now: time.Now}
}

func (u *QuoteUseCase) SubmitQuoteRequest(ctx context.Context, req entities.QuoteRequest) (entities.QuoteDraft, entities.ReviewDispatchResult, error) {
	now := u.now()
	pricing := quote.ComputePricing(req, now)
	outputs := quote.RecommendOutputs(req)

	draft, err := u.repo.Create(ctx, entities.QuoteDraft{
		SubmittedAt:      now.UTC(),
		Request:          req,
		Pricing:          pricing,
		Outputs:          outputs,
		QuoteLetter:      "",
		Status:           entities.QuoteDraftStatusPendingReview,
		ReviewRecipients: u.recipients,
	})
	if err != nil {
		log.Printf("[quote][usecase] draft create failed project=%q err=%v", req.ProjectName, err)
		return entities.QuoteDraft{}, entities.ReviewDispatchResult{}, err
	}
	log.Printf("[quote][usecase] draft created draft_id=%s reference=%s complexity=%d", draft.ID, quote.Reference(draft.ID), pricing.ComplexityScore)

	letter := quote.ComposeLetter(draft.ID, req, pricing, outputs, now)
	hydrated, err := u.repo.UpdateStatus(ctx, draft.ID, entities.QuoteDraftStatusPendingReview, entities.QuoteDraftStatusUpdate{
		QuoteLetter: &letter,
	})
	if err != nil {
		return entities.QuoteDraft{}, entities.ReviewDispatchResult{}, err
	}
	if hydrated.ID == "" {
		return entities.QuoteDraft{}, entities.ReviewDispatchResult{}, ErrQuoteDraftNotFound
	}

	result := u.dispatcher.DispatchForReview(ctx, hydrated)

	var final entities.QuoteDraft
	if result.Delivered {
		empty := ""
		final, err = u.repo.UpdateStatus(ctx, draft.ID, entities.QuoteDraftStatusReviewEmailSent, entities.QuoteDraftStatusUpdate{
			ReviewProviderID: &result.ProviderID,
			ReviewError:      &empty,
		})
	} else {
		reason := result.Error
		if reason == "" {
			reason = "Unknown email dispatch error."
		}
		final, err = u.repo.UpdateStatus(ctx, draft.ID, entities.QuoteDraftStatusReviewEmailFailed, entities.QuoteDraftStatusUpdate{
			ReviewError: &reason,
		})
	}
	if err != nil {
		return entities.QuoteDraft{}, entities.ReviewDispatchResult{}, err
	}
	if final.ID == "" {
		return entities.QuoteDraft{}, entities.ReviewDispatchResult{}, ErrQuoteDraftNotFound
	}

	log.Printf("[quote][usecase] submission finished draft_id=%s status=%s delivered=%t", final.ID, final.Status, result.Delivered)
	return final, result, nil
}

func (u *QuoteUseCase) GetDraft(ctx context.Context, id string) (entities.QuoteDraft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteDraft{}, ErrInvalidDraftID
	}

	draft, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteDraft{}, err
	}
	if draft.ID == "" {
		return entities.QuoteDraft{}, ErrQuoteDraftNotFound
	}
	return draft, nil
}

func (u *QuoteUseCase) ListDrafts(ctx context.Context) ([]entities.QuoteDraft, error) {
	return u.repo.List(ctx)
}
