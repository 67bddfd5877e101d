package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"coyne_ecology/internal/domain/entities"
)

func draftAt(submitted time.Time, project string) entities.QuoteDraft {
	return entities.QuoteDraft{
		SubmittedAt: submitted,
		Request: entities.QuoteRequest{
			Service:      entities.ServicePEA,
			Stage:        entities.StagePrePlanning,
			SiteContext:  entities.SiteContextEdge,
			Hectares:     1,
			ProjectName:  project,
			ContactEmail: "a@b.com",
		},
		Status:           entities.QuoteDraftStatusPendingReview,
		ReviewRecipients: []string{"review@coyne.co.uk"},
	}
}

func TestQuoteDraftMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewQuoteDraftMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, draftAt(time.Now().UTC(), "Oak Meadow"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Status != entities.QuoteDraftStatusPendingReview || created.QuoteLetter != "" {
		t.Errorf("new draft = %+v, want pending_review with empty letter", created)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.ID != created.ID || got.Request.ProjectName != "Oak Meadow" {
		t.Errorf("GetByID() = %+v", got)
	}

	missing, err := repo.GetByID(ctx, "nope")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if missing.ID != "" {
		t.Errorf("expected zero draft for unknown id, got %+v", missing)
	}
}

func TestQuoteDraftMemoryRepository_ListNewestFirst(t *testing.T) {
	repo := NewQuoteDraftMemoryRepository()
	ctx := context.Background()
	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, draftAt(base.Add(time.Duration(i)*time.Hour), fmt.Sprintf("Site %d", i))); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	drafts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(drafts) != 3 {
		t.Fatalf("List() returned %d drafts", len(drafts))
	}
	for i := 1; i < len(drafts); i++ {
		if drafts[i].SubmittedAt.After(drafts[i-1].SubmittedAt) {
			t.Errorf("drafts not in reverse-chronological order: %v before %v",
				drafts[i-1].SubmittedAt, drafts[i].SubmittedAt)
		}
	}
}

func TestQuoteDraftMemoryRepository_UpdateStatusMerge(t *testing.T) {
	repo := NewQuoteDraftMemoryRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, draftAt(time.Now().UTC(), "Oak Meadow"))

	t.Run("letter populated without touching other fields", func(t *testing.T) {
		letter := "letter body"
		updated, err := repo.UpdateStatus(ctx, created.ID, entities.QuoteDraftStatusPendingReview, entities.QuoteDraftStatusUpdate{
			QuoteLetter: &letter,
		})
		if err != nil {
			t.Fatalf("UpdateStatus() error = %v", err)
		}
		if updated.QuoteLetter != "letter body" || updated.Status != entities.QuoteDraftStatusPendingReview {
			t.Errorf("updated = %+v", updated)
		}
	})

	t.Run("failure records error only", func(t *testing.T) {
		reason := "provider down"
		updated, err := repo.UpdateStatus(ctx, created.ID, entities.QuoteDraftStatusReviewEmailFailed, entities.QuoteDraftStatusUpdate{
			ReviewError: &reason,
		})
		if err != nil {
			t.Fatalf("UpdateStatus() error = %v", err)
		}
		if updated.ReviewError != "provider down" || updated.ReviewProviderID != "" {
			t.Errorf("updated = %+v", updated)
		}
		if updated.QuoteLetter != "letter body" {
			t.Error("omitted letter field must keep its prior value")
		}
	})

	t.Run("success sets provider id and explicitly clears error", func(t *testing.T) {
		id := "msg_1"
		empty := ""
		updated, err := repo.UpdateStatus(ctx, created.ID, entities.QuoteDraftStatusReviewEmailSent, entities.QuoteDraftStatusUpdate{
			ReviewProviderID: &id,
			ReviewError:      &empty,
		})
		if err != nil {
			t.Fatalf("UpdateStatus() error = %v", err)
		}
		if updated.ReviewProviderID != "msg_1" {
			t.Errorf("provider id = %q", updated.ReviewProviderID)
		}
		if updated.ReviewError != "" {
			t.Errorf("review error = %q, want cleared", updated.ReviewError)
		}
	})

	t.Run("omitted pointers keep prior values", func(t *testing.T) {
		updated, err := repo.UpdateStatus(ctx, created.ID, entities.QuoteDraftStatusReviewEmailSent, entities.QuoteDraftStatusUpdate{})
		if err != nil {
			t.Fatalf("UpdateStatus() error = %v", err)
		}
		if updated.ReviewProviderID != "msg_1" || updated.QuoteLetter != "letter body" {
			t.Errorf("updated = %+v, want prior values retained", updated)
		}
	})

	t.Run("unknown id yields zero draft", func(t *testing.T) {
		updated, err := repo.UpdateStatus(ctx, "nope", entities.QuoteDraftStatusReviewEmailSent, entities.QuoteDraftStatusUpdate{})
		if err != nil {
			t.Fatalf("UpdateStatus() error = %v", err)
		}
		if updated.ID != "" {
			t.Errorf("expected zero draft, got %+v", updated)
		}
	})
}

func TestQuoteDraftMemoryRepository_ConcurrentCreates(t *testing.T) {
	repo := NewQuoteDraftMemoryRepository()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			created, err := repo.Create(ctx, draftAt(time.Now().UTC(), fmt.Sprintf("Site %d", i)))
			if err != nil {
				t.Errorf("Create() error = %v", err)
				return
			}
			status := entities.QuoteDraftStatusReviewEmailSent
			if i%2 == 0 {
				status = entities.QuoteDraftStatusReviewEmailFailed
			}
			if _, err := repo.UpdateStatus(ctx, created.ID, status, entities.QuoteDraftStatusUpdate{}); err != nil {
				t.Errorf("UpdateStatus() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	drafts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(drafts) != n {
		t.Errorf("List() returned %d drafts, want %d", len(drafts), n)
	}
}
