package engine

import "testing"

func TestMockFeedShapes(t *testing.T) {
	seed, _ := NewSessionSeed("mock-test")
	feed := MockActivityFeed(seed.Stream("feed"), 6)
	if len(feed) != 6 {
		t.Fatalf("expected 6 feed items, got %d", len(feed))
	}
	for _, item := range feed {
		if item.Username == "" || item.Action == "" || item.Subject == "" {
			t.Fatalf("feed item incomplete: %+v", item)
		}
	}
	wisdom := MockWisdomItems(seed.Stream("wisdom"), 7)
	if len(wisdom) != 7 {
		t.Fatalf("expected 7 wisdom items, got %d", len(wisdom))
	}
	for _, item := range wisdom {
		if item.Quote == "" || item.Rating < 3.0 || item.Rating > 5.0 {
			t.Fatalf("wisdom item out of shape: %+v", item)
		}
	}
	u := MockUser(seed.Stream("user"))
	if u.Username == "" || u.TimelineCount < 1 {
		t.Fatalf("mock user incomplete: %+v", u)
	}
}

func TestRandomFactFromEmptyPool(t *testing.T) {
	seed, _ := NewSessionSeed("facts")
	if got := pickFact(seed.Stream("f"), nil); got != "" {
		t.Fatalf("empty pool should degrade to empty string, got %q", got)
	}
	if got := RandomFact(seed.Stream("f")); got == "" {
		t.Fatal("populated pool returned empty fact")
	}
}
