package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Mock feed factories. These stand in for the community backend the way
// GenerateTimeline stands in for the generation service; everything produced
// here is ephemeral.

var mockNames = []string{"Alex", "Jordan", "Taylor", "Riley", "Morgan", "Casey", "Jamie", "Avery"}

var mockBios = []string{
	"Mapping the roads not taken.",
	"One decision at a time.",
	"Collector of alternate futures.",
	"Here for the hard choices.",
}

var feedActions = []string{"generated a timeline for", "explored a sequel to", "shared a path from", "revisited"}

var feedSubjects = []string{
	"moving across the country",
	"going back to school",
	"starting a company",
	"changing careers",
	"a year off to travel",
	"buying the old house",
}

var wisdomQuotes = []struct {
	Quote  string
	Source string
}{
	{"The best time to plant a tree was twenty years ago. The second best time is now.", "Proverb"},
	{"You can't connect the dots looking forward; you can only connect them looking backwards.", "Steve Jobs"},
	{"Between stimulus and response there is a space. In that space is our power to choose.", "Viktor Frankl"},
	{"It is in your moments of decision that your destiny is shaped.", "Tony Robbins"},
	{"Whenever you see a successful person you only see the public glories, never the private sacrifices.", "Vaibhav Shah"},
}

// MockUser fabricates a profile record.
func MockUser(stream *Stream) User {
	name := mockNames[stream.Intn(len(mockNames))]
	return User{
		ID:            uuid.New(),
		Username:      fmt.Sprintf("%s_%03d", name, stream.Intn(1000)),
		DisplayName:   name,
		Bio:           mockBios[stream.Intn(len(mockBios))],
		TimelineCount: 1 + stream.Intn(24),
		FollowerCount: stream.Intn(5000),
	}
}

// MockActivityFeed fabricates n community feed entries, newest first.
func MockActivityFeed(stream *Stream, n int) []ActivityItem {
	items := make([]ActivityItem, 0, n)
	now := time.Now()
	for i := 0; i < n; i++ {
		s := stream.Child(fmt.Sprintf("activity:%d", i))
		items = append(items, ActivityItem{
			ID:        uuid.New(),
			Username:  mockNames[s.Intn(len(mockNames))],
			Action:    feedActions[s.Intn(len(feedActions))],
			Subject:   feedSubjects[s.Intn(len(feedSubjects))],
			CreatedAt: now.Add(-time.Duration(i) * 37 * time.Minute),
			Likes:     s.Intn(200),
		})
	}
	return items
}

// MockWisdomItems fabricates n wisdom entries, cycling the quote pool.
func MockWisdomItems(stream *Stream, n int) []WisdomItem {
	items := make([]WisdomItem, 0, n)
	for i := 0; i < n; i++ {
		s := stream.Child(fmt.Sprintf("wisdom:%d", i))
		q := wisdomQuotes[i%len(wisdomQuotes)]
		items = append(items, WisdomItem{
			ID:     uuid.New(),
			Quote:  q.Quote,
			Source: q.Source,
			Rating: 3.0 + s.Float64()*2.0,
			Saves:  s.Intn(400),
		})
	}
	return items
}
