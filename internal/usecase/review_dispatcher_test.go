package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"coyne_ecology/internal/domain/entities"
	"coyne_ecology/internal/domain/quote"
	"coyne_ecology/internal/infrastructure/config"
	"coyne_ecology/internal/usecase/interfaces"
	mock_interfaces "coyne_ecology/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func dispatchDraft() entities.QuoteDraft {
	req := entities.QuoteRequest{
		Service:      entities.ServicePEA,
		Stage:        entities.StagePrePlanning,
		SiteContext:  entities.SiteContextEdge,
		Hectares:     1,
		ProjectName:  "Oak Meadow",
		ContactEmail: "a@b.com",
	}
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	return entities.QuoteDraft{
		ID:               "9f86d081-884c-4d63-9b0e-36f4b8b6c8a1",
		SubmittedAt:      now,
		Request:          req,
		Pricing:          quote.ComputePricing(req, now),
		Outputs:          quote.RecommendOutputs(req),
		QuoteLetter:      "letter body",
		Status:           entities.QuoteDraftStatusPendingReview,
		ReviewRecipients: []string{"review@coyne.co.uk", "x@y.com"},
	}
}

func dispatchConfig() config.ReviewConfig {
	return config.ReviewConfig{
		APIKey:     "re_key",
		FromEmail:  "quotes@coyne.co.uk",
		Recipients: []string{"review@coyne.co.uk", "x@y.com"},
	}
}

func TestReviewDispatcher_DispatchForReview(t *testing.T) {
	t.Run("missing api key fails before render or send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIReviewDocumentRenderer(ctrl)
		mailer := mock_interfaces.NewMockIReviewMailer(ctrl)
		// No expectations registered: any render or send call fails the test.

		cfg := dispatchConfig()
		cfg.APIKey = ""
		d := NewReviewDispatcher(cfg, renderer, mailer)

		result := d.DispatchForReview(context.Background(), dispatchDraft())
		if result.Delivered {
			t.Fatal("expected delivery failure")
		}
		if !strings.Contains(result.Error, "RESEND_API_KEY") {
			t.Errorf("error = %q, want mention of the missing key", result.Error)
		}
	})

	t.Run("empty recipients fail before render or send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIReviewDocumentRenderer(ctrl)
		mailer := mock_interfaces.NewMockIReviewMailer(ctrl)

		d := NewReviewDispatcher(dispatchConfig(), renderer, mailer)
		draft := dispatchDraft()
		draft.ReviewRecipients = nil

		result := d.DispatchForReview(context.Background(), draft)
		if result.Delivered {
			t.Fatal("expected delivery failure")
		}
		if !strings.Contains(result.Error, "QUOTE_REVIEW_EMAILS") {
			t.Errorf("error = %q, want mention of the recipient config", result.Error)
		}
	})

	t.Run("render failure is captured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIReviewDocumentRenderer(ctrl)
		mailer := mock_interfaces.NewMockIReviewMailer(ctrl)

		renderer.EXPECT().Render(gomock.Any()).Return(nil, errors.New("font table corrupt"))

		d := NewReviewDispatcher(dispatchConfig(), renderer, mailer)
		result := d.DispatchForReview(context.Background(), dispatchDraft())
		if result.Delivered {
			t.Fatal("expected delivery failure")
		}
		if !strings.Contains(result.Error, "font table corrupt") {
			t.Errorf("error = %q, want render diagnostic", result.Error)
		}
	})

	t.Run("render panic is captured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIReviewDocumentRenderer(ctrl)
		mailer := mock_interfaces.NewMockIReviewMailer(ctrl)

		renderer.EXPECT().Render(gomock.Any()).DoAndReturn(func(entities.QuoteDraft) ([]byte, error) {
			panic("layout engine blew up")
		})

		d := NewReviewDispatcher(dispatchConfig(), renderer, mailer)
		result := d.DispatchForReview(context.Background(), dispatchDraft())
		if result.Delivered {
			t.Fatal("expected delivery failure")
		}
		if !strings.Contains(result.Error, "layout engine blew up") {
			t.Errorf("error = %q, want panic diagnostic", result.Error)
		}
	})

	t.Run("provider failure is captured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIReviewDocumentRenderer(ctrl)
		mailer := mock_interfaces.NewMockIReviewMailer(ctrl)

		renderer.EXPECT().Render(gomock.Any()).Return([]byte("%PDF-fake"), nil)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("email provider error (500): upstream down"))

		d := NewReviewDispatcher(dispatchConfig(), renderer, mailer)
		result := d.DispatchForReview(context.Background(), dispatchDraft())
		if result.Delivered || result.ProviderID != "" {
			t.Fatalf("expected failure without provider id, got %+v", result)
		}
		if !strings.Contains(result.Error, "500") {
			t.Errorf("error = %q, want provider status", result.Error)
		}
	})

	t.Run("success builds subject, html and attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIReviewDocumentRenderer(ctrl)
		mailer := mock_interfaces.NewMockIReviewMailer(ctrl)

		renderer.EXPECT().Render(gomock.Any()).Return([]byte("%PDF-fake"), nil)
		mailer.EXPECT().Send(gomock.Any(), gomock.AssignableToTypeOf(interfaces.ReviewEmail{})).DoAndReturn(
			func(_ context.Context, email interfaces.ReviewEmail) (string, error) {
				if email.Subject != "Quote Review Required: Oak Meadow (Q-9F86D081)" {
					t.Errorf("subject = %q", email.Subject)
				}
				if email.From != "quotes@coyne.co.uk" {
					t.Errorf("from = %q", email.From)
				}
				if len(email.To) != 2 {
					t.Errorf("to = %v", email.To)
				}
				if len(email.Attachments) != 1 || email.Attachments[0].Filename != "Q-9F86D081-review-draft.pdf" {
					t.Errorf("attachments = %+v", email.Attachments)
				}
				for _, want := range []string{"Oak Meadow", "a@b.com", "Q-9F86D081", "Approve release"} {
					if !strings.Contains(email.HTML, want) {
						t.Errorf("html missing %q", want)
					}
				}
				return "msg_123", nil
			},
		)

		d := NewReviewDispatcher(dispatchConfig(), renderer, mailer)
		result := d.DispatchForReview(context.Background(), dispatchDraft())
		if !result.Delivered || result.ProviderID != "msg_123" || result.Error != "" {
			t.Fatalf("unexpected result %+v", result)
		}
	})

	t.Run("html escapes request fields", func(t *testing.T) {
		draft := dispatchDraft()
		draft.Request.ProjectName = `<script>alert("x")</script>`

		html := buildReviewHTML(draft, "Q-TEST")
		if strings.Contains(html, "<script>") {
			t.Error("project name was not escaped")
		}
		if !strings.Contains(html, "&lt;script&gt;") {
			t.Error("expected escaped project name")
		}
	})
}
