package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/traces-dev/traces-tui/internal/engine"
)

// Scribe is the interface used by the app to render timeline prose. The
// template scribe below is deterministic and offline; an AI-backed scribe
// would satisfy the same interface.
type Scribe interface {
	Summary(ctx context.Context, t engine.Timeline) (string, error)
}

type templateScribe struct{}

// NewTemplateScribe returns the built-in deterministic scribe.
func NewTemplateScribe() Scribe { return &templateScribe{} }

func (s *templateScribe) Summary(ctx context.Context, t engine.Timeline) (string, error) {
	var b strings.Builder
	b.WriteString("# " + t.Title + "\n\n")
	if t.Decision != "" {
		b.WriteString("**Decision:** " + t.Decision + "\n\n")
	}
	b.WriteString(fmt.Sprintf("**Style:** %s — %s\n\n", t.Style, t.Style.Description()))
	b.WriteString(fmt.Sprintf("**Tone:** %s — %s\n\n", t.Tone, t.Tone.Description()))
	for i, p := range t.Paths {
		b.WriteString(fmt.Sprintf("## Path %d: %s (%.0f%%)\n\n", i+1, p.Title, p.Probability*100))
		b.WriteString(fmt.Sprintf("_%s — %s_\n\n", p.Indicator, p.Indicator.Description()))
		b.WriteString(p.Outcome + "\n\n")
		if len(p.KeyMoments) > 0 {
			b.WriteString("Key moments:\n")
			for _, km := range p.KeyMoments {
				b.WriteString("- " + km + "\n")
			}
			b.WriteString("\n")
		}
	}
	if t.SequelAvailable {
		b.WriteString("_A sequel timeline is available for this decision._\n")
	}
	return b.String(), nil
}

// minimalScribe is the last-resort fallback; it never fails.
type minimalScribe struct{}

func NewMinimalFallbackScribe() Scribe { return &minimalScribe{} }

func (s *minimalScribe) Summary(ctx context.Context, t engine.Timeline) (string, error) {
	var b strings.Builder
	b.WriteString("# " + t.Title + "\n")
	for i, p := range t.Paths {
		b.WriteString(fmt.Sprintf("%d. %s (%.0f%%)\n", i+1, p.Title, p.Probability*100))
	}
	return b.String(), nil
}

// WithFallback returns a scribe that prefers primary and falls back on error.
func WithFallback(primary, fallback Scribe) Scribe { return &fallbackScribe{p: primary, f: fallback} }

type fallbackScribe struct{ p, f Scribe }

func (s *fallbackScribe) Summary(ctx context.Context, t engine.Timeline) (string, error) {
	if s.p == nil {
		return s.f.Summary(ctx, t)
	}
	if out, err := s.p.Summary(ctx, t); err == nil {
		return out, nil
	}
	return s.f.Summary(ctx, t)
}
