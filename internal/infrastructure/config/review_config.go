// Package config resolves the review-dispatch configuration once at wiring
// time. Business logic never reads environment variables directly; it receives
// this struct at construction.
package config

import (
	"os"
	"strings"
)

// FallbackReviewEmail is always included in the recipient list so a draft can
// never be created with nobody to review it, whatever the deployment sets.
const FallbackReviewEmail = "review@coyne.co.uk"

// DefaultFromEmail is the sender used when QUOTE_FROM_EMAIL is unset.
const DefaultFromEmail = "quotes@coyne.co.uk"

// ReviewConfig carries everything the review dispatcher needs.
//
// Env vars:
//   - RESEND_API_KEY      provider bearer token; dispatch fails locally without it
//   - QUOTE_FROM_EMAIL    sender address (default quotes@coyne.co.uk)
//   - QUOTE_REVIEW_EMAILS comma-separated reviewer addresses
type ReviewConfig struct {
	APIKey     string
	FromEmail  string
	Recipients []string
}

// NewReviewConfigFromEnv reads the review configuration from the environment.
func NewReviewConfigFromEnv() ReviewConfig {
	return ReviewConfig{
		APIKey:     os.Getenv("RESEND_API_KEY"),
		FromEmail:  getenvDefault("QUOTE_FROM_EMAIL", DefaultFromEmail),
		Recipients: ResolveReviewRecipients(os.Getenv("QUOTE_REVIEW_EMAILS")),
	}
}

// ResolveReviewRecipients splits a comma-separated recipient list, trims and
// lower-cases each entry, removes duplicates and unions in the fixed fallback
// review address.
func ResolveReviewRecipients(raw string) []string {
	seen := make(map[string]bool)
	var recipients []string
	for _, part := range strings.Split(raw, ",") {
		addr := strings.ToLower(strings.TrimSpace(part))
		if addr == "" || seen[addr] {
			continue
		}
		seen[addr] = true
		recipients = append(recipients, addr)
	}
	if !seen[FallbackReviewEmail] {
		recipients = append(recipients, FallbackReviewEmail)
	}
	return recipients
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
