package config

import (
	"testing"
)

func TestResolveReviewRecipients(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty config yields fallback only",
			raw:  "",
			want: []string{FallbackReviewEmail},
		},
		{
			name: "case-insensitive duplicates collapse",
			raw:  "x@y.com, X@Y.com",
			want: []string{"x@y.com", FallbackReviewEmail},
		},
		{
			name: "fallback not doubled when configured explicitly",
			raw:  "Review@Coyne.co.uk,ops@coyne.co.uk",
			want: []string{"review@coyne.co.uk", "ops@coyne.co.uk"},
		},
		{
			name: "blank entries skipped",
			raw:  " , a@b.com, ,",
			want: []string{"a@b.com", FallbackReviewEmail},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveReviewRecipients(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("ResolveReviewRecipients(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			members := make(map[string]bool, len(got))
			for _, addr := range got {
				if members[addr] {
					t.Fatalf("duplicate recipient %q in %v", addr, got)
				}
				members[addr] = true
			}
			for _, addr := range tt.want {
				if !members[addr] {
					t.Errorf("missing recipient %q in %v", addr, got)
				}
			}
		})
	}
}

func TestNewReviewConfigFromEnv(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_test_key")
	t.Setenv("QUOTE_FROM_EMAIL", "")
	t.Setenv("QUOTE_REVIEW_EMAILS", "a@b.com")

	cfg := NewReviewConfigFromEnv()
	if cfg.APIKey != "re_test_key" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.FromEmail != DefaultFromEmail {
		t.Errorf("FromEmail = %q, want default %q", cfg.FromEmail, DefaultFromEmail)
	}
	if len(cfg.Recipients) != 2 {
		t.Errorf("Recipients = %v, want configured address plus fallback", cfg.Recipients)
	}
}
