package engine

import (
	"time"

	"github.com/google/uuid"
)

// Timeline is a generated bundle of decision outcome paths plus media references.
// Instances are ephemeral until the user accepts one in review; the store layer
// persists accepted timelines.
type Timeline struct {
	ID              uuid.UUID
	Title           string
	Decision        string
	CreatedAt       time.Time
	VideoURL        string
	ThumbnailURL    string
	Style           TimelineStyle
	Tone            EmotionalTone
	Paths           []DecisionPath
	SequelAvailable bool
}

// DecisionPath is one possible future outcome branch. Within a timeline the
// probabilities of all sibling paths sum to 1.0.
type DecisionPath struct {
	ID          uuid.UUID
	Title       string
	Probability float64
	Outcome     string
	Indicator   EmotionalIndicator
	KeyMoments  []string
}

// User is a flat profile record for the mock feed.
type User struct {
	ID            uuid.UUID
	Username      string
	DisplayName   string
	Bio           string
	TimelineCount int
	FollowerCount int
}

// ActivityItem is one entry in the mock community feed.
type ActivityItem struct {
	ID        uuid.UUID
	Username  string
	Action    string
	Subject   string
	CreatedAt time.Time
	Likes     int
}

// WisdomItem is a short reflective prompt with a community rating.
type WisdomItem struct {
	ID     uuid.UUID
	Quote  string
	Source string
	Rating float64
	Saves  int
}
