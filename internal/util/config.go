package util

// Config holds runtime settings and flags.
type Config struct {
	SeedText       string
	DSN            string
	TimelineLength float64 // seconds per generated clip
	PathCount      int
	Version        string
}
