package engine

// Catalog of facts surfaced while the generation progress bar fills.
var generationFacts = []string{
	"Most people revisit a major decision within 90 days of making it.",
	"Writing a decision down cuts second-guessing roughly in half.",
	"Imagined futures feel more certain than they are — probabilities help.",
	"People overweight the first option they consider by a wide margin.",
	"Regret fades faster for decisions made than for decisions avoided.",
	"Your future self will adapt more than your present self predicts.",
	"Two futures can share a first year and still end decades apart.",
}

// RandomFact picks one fact from the pool. An empty pool degrades to "".
func RandomFact(stream *Stream) string {
	return pickFact(stream, generationFacts)
}

func pickFact(stream *Stream, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[stream.Intn(len(pool))]
}
