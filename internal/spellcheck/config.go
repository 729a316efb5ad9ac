package spellcheck

// Candidate is one proposed replacement with the model's probability for it.
type Candidate struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// Edit is one run of the diff between the source text and the outcome.
type Edit struct {
	Op   string `json:"op"` // "equal", "insert" or "delete"
	Text string `json:"text"`
}

// Result carries everything a correction run derived from the document.
// Consumers read fields directly instead of going through runtime-registered
// accessors.
type Result struct {
	Performed   bool                `json:"performed"`
	Outcome     string              `json:"outcome"`
	Scores      map[int][]Candidate `json:"scores,omitempty"`
	Suggestions map[int][]string    `json:"suggestions,omitempty"`
	Edits       []Edit              `json:"edits,omitempty"`
}

// RequiresCorrection reports whether the token at index i was treated as a
// misspelling during the run.
func (r *Result) RequiresCorrection(i int) bool {
	_, ok := r.Scores[i]
	return ok
}

// TokenScores returns the (candidate, probability) list for token i, or nil.
func (r *Result) TokenScores(i int) []Candidate { return r.Scores[i] }

// TokenSuggestions returns the candidate strings for token i, or nil.
func (r *Result) TokenSuggestions(i int) []string { return r.Suggestions[i] }
