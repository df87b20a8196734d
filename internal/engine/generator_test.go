package engine

import (
	"math"
	"strings"
	"testing"
)

func genStream(label string) *Stream {
	seed, _ := NewSessionSeed("generator-test")
	return seed.Stream(label)
}

func TestProbabilitiesSumToOne(t *testing.T) {
	for _, tone := range AllTones {
		for count := 1; count <= 8; count++ {
			tl, err := GenerateTimeline(genStream("sum"), "take the new job", StyleRealistic, tone, count)
			if err != nil {
				t.Fatalf("tone %s count %d: %v", tone, count, err)
			}
			var sum float64
			for _, p := range tl.Paths {
				sum += p.Probability
			}
			if math.Abs(sum-1.0) > 1e-9 {
				t.Fatalf("tone %s count %d: probabilities sum %v", tone, count, sum)
			}
		}
	}
}

func TestToneWeightOrdering(t *testing.T) {
	opt, _ := GenerateTimeline(genStream("opt"), "move abroad", StyleCinematic, ToneOptimistic, 4)
	if opt.Paths[0].Probability <= opt.Paths[3].Probability {
		t.Fatalf("optimistic should weight early paths highest: %v vs %v", opt.Paths[0].Probability, opt.Paths[3].Probability)
	}
	ch, _ := GenerateTimeline(genStream("ch"), "move abroad", StyleCinematic, ToneChallenging, 4)
	if ch.Paths[3].Probability <= ch.Paths[0].Probability {
		t.Fatalf("challenging should weight late paths highest: %v vs %v", ch.Paths[3].Probability, ch.Paths[0].Probability)
	}
	bal, _ := GenerateTimeline(genStream("bal"), "move abroad", StyleCinematic, ToneBalanced, 4)
	if math.Abs(bal.Paths[0].Probability-bal.Paths[3].Probability) > 1e-9 {
		t.Fatalf("balanced should be uniform: %v vs %v", bal.Paths[0].Probability, bal.Paths[3].Probability)
	}
}

func TestTemplateCyclingBeyondPool(t *testing.T) {
	pool := PoolFor(ToneBalanced)
	tl, err := GenerateTimeline(genStream("cycle"), "start a company", StyleSketch, ToneBalanced, len(pool)+2)
	if err != nil {
		t.Fatalf("GenerateTimeline: %v", err)
	}
	for i, p := range tl.Paths {
		want := pool[i%len(pool)]
		if p.Title != want.Title {
			t.Fatalf("path %d title %q, want template %q", i, p.Title, want.Title)
		}
		if p.Indicator != want.Indicator {
			t.Fatalf("path %d indicator %q, want %q", i, p.Indicator, want.Indicator)
		}
	}
}

func TestPathCountBelowOneRejected(t *testing.T) {
	if _, err := GenerateTimeline(genStream("bad"), "anything", StyleRealistic, ToneBalanced, 0); err == nil {
		t.Fatal("expected error for path count 0")
	}
}

func TestPlaceholderMediaURLs(t *testing.T) {
	tl, _ := GenerateTimeline(genStream("media"), "go back to school", StyleAnimated, ToneRealistic, 3)
	if !strings.HasSuffix(tl.VideoURL, ".mp4") || !strings.HasSuffix(tl.ThumbnailURL, ".jpg") {
		t.Fatalf("unexpected media URLs: %s %s", tl.VideoURL, tl.ThumbnailURL)
	}
	if tl.Title == "" {
		t.Fatal("title should be synthesized")
	}
}
