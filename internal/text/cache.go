package text

import (
	"crypto/sha256"
	"encoding/json"

	"github.com/traces-dev/traces-tui/internal/engine"
)

// SummaryCacheKey hashes the fields that influence a rendered summary so
// re-renders of an unchanged timeline can be served from the store cache.
func SummaryCacheKey(t engine.Timeline) ([]byte, error) {
	payload := struct {
		Title    string                `json:"title"`
		Decision string                `json:"decision"`
		Style    engine.TimelineStyle  `json:"style"`
		Tone     engine.EmotionalTone  `json:"tone"`
		Paths    []engine.DecisionPath `json:"paths"`
		Sequel   bool                  `json:"sequel"`
	}{t.Title, t.Decision, t.Style, t.Tone, t.Paths, t.SequelAvailable}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(raw)
	return sum[:], nil
}
