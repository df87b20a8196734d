package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var titlePrefixes = []string{"Crossroads", "Turning Point", "The Fork", "What Comes Next", "Branches", "The Long View"}

// GenerateTimeline synthesizes a mock timeline for a decision. It is pure given
// a stream: the same stream label and inputs always produce the same result.
// Paths cycle the tone's template pool by index, so any count >= 1 is valid.
// A real backend generation service would replace this factory wholesale.
func GenerateTimeline(stream *Stream, decision string, style TimelineStyle, tone EmotionalTone, pathCount int) (Timeline, error) {
	if pathCount < 1 {
		return Timeline{}, fmt.Errorf("path count must be >= 1, got %d", pathCount)
	}
	decision = strings.TrimSpace(decision)
	pool := PoolFor(tone)
	paths := make([]DecisionPath, 0, pathCount)
	raw := make([]float64, pathCount)
	var sum float64
	for i := 0; i < pathCount; i++ {
		raw[i] = rawWeight(tone, i, pathCount)
		sum += raw[i]
	}
	for i := 0; i < pathCount; i++ {
		tpl := pool[i%len(pool)]
		paths = append(paths, DecisionPath{
			ID:          uuid.New(),
			Title:       tpl.Title,
			Probability: raw[i] / sum,
			Outcome:     tpl.Outcome,
			Indicator:   tpl.Indicator,
			KeyMoments:  append([]string{}, tpl.KeyMoments...),
		})
	}
	media := stream.Child("media")
	return Timeline{
		ID:              uuid.New(),
		Title:           synthesizeTitle(stream.Child("title"), decision),
		Decision:        decision,
		CreatedAt:       time.Now(),
		VideoURL:        placeholderMediaURL(media, "mp4"),
		ThumbnailURL:    placeholderMediaURL(media, "jpg"),
		Style:           style,
		Tone:            tone,
		Paths:           paths,
		SequelAvailable: stream.Child("sequel").Float64() < 0.3,
	}, nil
}

// rawWeight implements the per-tone probability slope: optimistic favors early
// paths linearly, challenging favors late ones, realistic/balanced are uniform.
func rawWeight(tone EmotionalTone, idx, count int) float64 {
	bias := tone.Bias()
	switch {
	case bias > 0:
		return float64(count - idx)
	case bias < 0:
		return float64(idx + 1)
	default:
		return 1.0
	}
}

func synthesizeTitle(stream *Stream, decision string) string {
	prefix := titlePrefixes[stream.Intn(len(titlePrefixes))]
	short := decision
	if len(short) > 40 {
		short = strings.TrimSpace(short[:40]) + "…"
	}
	if short == "" {
		return prefix
	}
	return prefix + ": " + short
}

// placeholderMediaURL returns an inert media reference; nothing contacts it.
func placeholderMediaURL(stream *Stream, ext string) string {
	return fmt.Sprintf("https://media.traces.app/timelines/%016x.%s", stream.Child(ext).Uint64(), ext)
}
