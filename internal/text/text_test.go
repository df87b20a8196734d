package text

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/traces-dev/traces-tui/internal/engine"
)

func sampleTimeline() engine.Timeline {
	return engine.Timeline{
		Title:    "Crossroads: take the job",
		Decision: "take the job",
		Style:    engine.StyleRealistic,
		Tone:     engine.ToneBalanced,
		Paths: []engine.DecisionPath{
			{Title: "Two Steps Forward", Probability: 0.5, Outcome: "It settles.", Indicator: engine.IndicatorSteady, KeyMoments: []string{"An early win"}},
			{Title: "The Honest Middle", Probability: 0.5, Outcome: "It lands between.", Indicator: engine.IndicatorUncertain},
		},
	}
}

func TestTemplateScribeSummary(t *testing.T) {
	md, err := NewTemplateScribe().Summary(context.Background(), sampleTimeline())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	for _, want := range []string{"Crossroads: take the job", "Path 1", "50%", "Key moments", "An early win"} {
		if !strings.Contains(md, want) {
			t.Fatalf("summary missing %q:\n%s", want, md)
		}
	}
}

func TestSummaryCacheKeyDeterminism(t *testing.T) {
	k1, _ := SummaryCacheKey(sampleTimeline())
	k2, _ := SummaryCacheKey(sampleTimeline())
	if string(k1) != string(k2) {
		t.Fatal("SummaryCacheKey not stable for equivalent timeline")
	}
	other := sampleTimeline()
	other.Title = "something else"
	k3, _ := SummaryCacheKey(other)
	if string(k1) == string(k3) {
		t.Fatal("SummaryCacheKey identical for different timeline")
	}
}

type failingScribe struct{}

func (failingScribe) Summary(context.Context, engine.Timeline) (string, error) {
	return "", errors.New("offline")
}

func TestFallbackScribe(t *testing.T) {
	s := WithFallback(failingScribe{}, NewMinimalFallbackScribe())
	md, err := s.Summary(context.Background(), sampleTimeline())
	if err != nil {
		t.Fatalf("fallback should absorb primary error: %v", err)
	}
	if !strings.Contains(md, "Crossroads") {
		t.Fatalf("fallback output unexpected:\n%s", md)
	}
}
