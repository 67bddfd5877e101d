package usecase

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"coyne_ecology/internal/domain/entities"
	"coyne_ecology/internal/domain/quote"
	"coyne_ecology/internal/infrastructure/config"
	"coyne_ecology/internal/usecase/interfaces"
)

// ReviewDispatcher renders the review document for a draft and attempts
// delivery to the configured reviewers. Failures are returned as data in the
// dispatch result; nothing propagates to the caller as an error.
type ReviewDispatcher struct {
	cfg      config.ReviewConfig
	renderer interfaces.IReviewDocumentRenderer
	mailer   interfaces.IReviewMailer
}

var _ interfaces.IReviewDispatcher = (*ReviewDispatcher)(nil)

func NewReviewDispatcher(cfg config.ReviewConfig, renderer interfaces.IReviewDocumentRenderer, mailer interfaces.IReviewMailer) *ReviewDispatcher {
	return &ReviewDispatcher{cfg: cfg, renderer: renderer, mailer: mailer}
}

// DispatchForReview checks preconditions, renders the PDF and submits the
// review email. On a missing API key it fails before any rendering or network
// activity.
func (d *ReviewDispatcher) DispatchForReview(ctx context.Context, draft entities.QuoteDraft) (result entities.ReviewDispatchResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[quote][dispatch] recovered panic draft_id=%s panic=%v", draft.ID, r)
			result = entities.ReviewDispatchResult{Error: fmt.Sprintf("review dispatch panic: %v", r)}
		}
	}()

	if d.cfg.APIKey == "" {
		log.Printf("[quote][dispatch] missing RESEND_API_KEY draft_id=%s", draft.ID)
		return entities.ReviewDispatchResult{Error: "RESEND_API_KEY is not configured."}
	}
	if len(draft.ReviewRecipients) == 0 {
		log.Printf("[quote][dispatch] no review recipients draft_id=%s", draft.ID)
		return entities.ReviewDispatchResult{Error: "QUOTE_REVIEW_EMAILS is not configured."}
	}

	reference := quote.Reference(draft.ID)
	log.Printf("[quote][dispatch] start draft_id=%s reference=%s recipients=%d", draft.ID, reference, len(draft.ReviewRecipients))

	pdfBytes, err := d.renderer.Render(draft)
	if err != nil {
		log.Printf("[quote][dispatch] render failed draft_id=%s err=%v", draft.ID, err)
		return entities.ReviewDispatchResult{Error: fmt.Sprintf("review document rendering failed: %v", err)}
	}

	email := interfaces.ReviewEmail{
		From:    d.cfg.FromEmail,
		To:      draft.ReviewRecipients,
		Subject: fmt.Sprintf("Quote Review Required: %s (%s)", draft.Request.ProjectName, reference),
		HTML:    buildReviewHTML(draft, reference),
		Attachments: []interfaces.ReviewAttachment{
			{Filename: fmt.Sprintf("%s-review-draft.pdf", reference), Content: pdfBytes},
		},
	}

	providerID, err := d.mailer.Send(ctx, email)
	if err != nil {
		log.Printf("[quote][dispatch] send failed draft_id=%s err=%v", draft.ID, err)
		return entities.ReviewDispatchResult{Error: err.Error()}
	}

	log.Printf("[quote][dispatch] delivered draft_id=%s provider_id=%s", draft.ID, providerID)
	return entities.ReviewDispatchResult{Delivered: true, ProviderID: providerID}
}

// buildReviewHTML summarises the key fields and the review flow; the full
// detail travels in the attached document.
func buildReviewHTML(draft entities.QuoteDraft, reference string) string {
	esc := html.EscapeString
	req := draft.Request

	var b strings.Builder
	b.WriteString(`<div style="font-family:Arial,sans-serif;line-height:1.5;color:#121826">`)
	b.WriteString(`<h2 style="margin:0 0 8px">Quote Review Required</h2>`)
	b.WriteString(`<p style="margin:0 0 16px">A new quote request has been drafted and is awaiting internal review. The full review draft is attached.</p>`)
	fmt.Fprintf(&b, `<p style="margin:0 0 4px"><strong>Project:</strong> %s</p>`, esc(req.ProjectName))
	fmt.Fprintf(&b, `<p style="margin:0 0 4px"><strong>Contact:</strong> %s</p>`, esc(req.ContactEmail))
	fmt.Fprintf(&b, `<p style="margin:0 0 4px"><strong>Service:</strong> %s</p>`, esc(quote.ServiceConfigFor(req.Service).Label))
	fmt.Fprintf(&b, `<p style="margin:0 0 4px"><strong>Recommended fee:</strong> %s</p>`, esc(quote.FormatGBP(draft.Pricing.RecommendedFee)))
	fmt.Fprintf(&b, `<p style="margin:0 0 16px"><strong>Reference:</strong> %s</p>`, esc(reference))
	b.WriteString(`<ol style="margin:0 0 16px;padding-left:20px">`)
	b.WriteString(`<li>Validate assumptions and scope.</li>`)
	b.WriteString(`<li>Confirm final fee position and margin.</li>`)
	b.WriteString(`<li>Approve release of client-facing quote letter.</li>`)
	b.WriteString(`</ol>`)
	fmt.Fprintf(&b, `<pre style="white-space:pre-wrap;background:#f6f8ff;padding:16px;border-radius:8px;border:1px solid #d8e0f7">%s</pre>`, esc(draft.QuoteLetter))
	b.WriteString(`</div>`)
	return b.String()
}
