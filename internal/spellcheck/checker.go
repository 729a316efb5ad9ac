// Package spellcheck implements contextual correction of out-of-vocabulary
// tokens: misspell detection against the vocabulary, candidate generation
// through masked-token prediction, edit-distance ranking and text reassembly.
package spellcheck

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"contextcheck/internal/document"
	"contextcheck/internal/inference"
	"contextcheck/internal/vocabulary"
	"contextcheck/pkg/options"
)

// ErrEmptyDocument is returned when Correct is called without tokens.
var ErrEmptyDocument = errors.New("spellcheck: empty document")

// Checker runs the correction pipeline. It is stateless across runs; the
// vocabulary store and the predictor are shared, everything else lives on the
// per-run Result.
type Checker struct {
	opts      options.CheckerOptions
	vocab     *vocabulary.Store
	predictor inference.Predictor
}

// NewChecker builds a Checker over the given vocabulary and predictor.
func NewChecker(vocab *vocabulary.Store, predictor inference.Predictor, opts ...options.Options) *Checker {
	cfg := options.DefaultOptions
	for _, o := range opts {
		o.Apply(&cfg)
	}
	if cfg.TopN < 1 {
		cfg.TopN = options.DefaultOptions.TopN
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Checker{opts: cfg, vocab: vocab, predictor: predictor}
}

// Classify returns the misspelled tokens in document order. A token is
// misspelled when its lower-cased text is unknown to the vocabulary, it is
// not a PERSON entity, and it does not look like a number, email or URL.
func (c *Checker) Classify(doc document.Doc) []document.Token {
	var misspelled []document.Token
	for _, tok := range doc.Tokens {
		if c.vocab.Contains(tok.Text) {
			continue
		}
		if tok.EntType == "PERSON" {
			continue
		}
		if tok.LikeNum || tok.LikeEmail || tok.LikeURL {
			continue
		}
		misspelled = append(misspelled, tok)
	}
	return misspelled
}

// maskedText renders the document with the target token replaced by the mask
// placeholder. Every other token keeps its text and trailing whitespace, so
// the model sees the sentence structure unchanged.
func (c *Checker) maskedText(doc document.Doc, target int) string {
	var b strings.Builder
	for _, tok := range doc.Tokens {
		if tok.Index == target {
			b.WriteString(c.opts.MaskToken)
			b.WriteString(tok.Whitespace)
		} else {
			b.WriteString(tok.TextWithWS())
		}
	}
	return b.String()
}

// Generate queries the predictor once per misspelled token and collects the
// top-N candidates per token, sorted by descending probability as delivered.
// When at least one token was processed the result's Performed flag is set
// and the full score map attached; any predictor error discards the whole
// map and fails the run.
func (c *Checker) Generate(ctx context.Context, doc document.Doc, misspelled []document.Token, res *Result) (map[int][]Candidate, error) {
	if len(misspelled) == 0 {
		return map[int][]Candidate{}, nil
	}

	workers := c.opts.Workers
	if workers > len(misspelled) {
		workers = len(misspelled)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	scores := make(map[int][]Candidate, len(misspelled))
	jobs := make(chan document.Token)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tok := range jobs {
				list, err := c.generateOne(ctx, doc, tok)
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
						cancel()
					}
				} else {
					scores[tok.Index] = list
				}
				mu.Unlock()
			}
		}()
	}
	for _, tok := range misspelled {
		jobs <- tok
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		// a partially populated score map is never published
		return nil, firstErr
	}
	res.Performed = true
	res.Scores = scores
	res.Suggestions = suggestionsOnly(scores)
	return scores, nil
}

func (c *Checker) generateOne(ctx context.Context, doc document.Doc, tok document.Token) ([]Candidate, error) {
	masked := c.maskedText(doc, tok.Index)
	if strings.Count(masked, c.opts.MaskToken) != 1 {
		// no single recognizable mask position; the token gets no candidates
		return nil, nil
	}
	preds, err := c.predictor.Predict(ctx, masked, c.opts.TopN)
	if err != nil {
		return nil, fmt.Errorf("predict for %q: %w", tok.Text, err)
	}
	list := make([]Candidate, 0, len(preds))
	for _, p := range preds {
		list = append(list, Candidate{Term: p.Token, Score: p.Score})
	}
	return list, nil
}

func suggestionsOnly(scores map[int][]Candidate) map[int][]string {
	out := make(map[int][]string, len(scores))
	for idx, list := range scores {
		terms := make([]string, 0, len(list))
		for _, cand := range list {
			terms = append(terms, cand.Term)
		}
		out[idx] = terms
	}
	return out
}

// Rank picks the replacement per token: candidates are scanned in the order
// received (descending probability) and the tracked best is replaced only on
// a strictly smaller edit distance to the original text. Equal distances
// therefore resolve to the more probable candidate. Do not re-sort by
// distance; that would change observable output. Tokens with an empty
// candidate list are omitted.
func (c *Checker) Rank(misspelled []document.Token, scores map[int][]Candidate) map[int]string {
	best := make(map[int]string)
	for _, tok := range misspelled {
		list := scores[tok.Index]
		if len(list) == 0 {
			continue
		}
		least := -1
		for _, cand := range list {
			d := levenshtein(tok.Text, cand.Term)
			if least == -1 || d < least {
				least = d
				best[tok.Index] = cand.Term
			}
		}
	}
	return best
}

// Assemble rebuilds the text in token order: ranked tokens emit their
// replacement followed by the original trailing whitespace, everything else
// passes through verbatim.
func (c *Checker) Assemble(doc document.Doc, ranked map[int]string) string {
	var b strings.Builder
	for _, tok := range doc.Tokens {
		if repl, ok := ranked[tok.Index]; ok {
			b.WriteString(repl)
			b.WriteString(tok.Whitespace)
		} else {
			b.WriteString(tok.TextWithWS())
		}
	}
	return b.String()
}

// Correct runs the full pipeline and returns the corrected text with the run
// annotations. When nothing is misspelled the outcome stays empty and no
// inference call is made. On failure no corrected text is produced and the
// original text stands.
func (c *Checker) Correct(ctx context.Context, doc document.Doc) (string, *Result, error) {
	if doc.Len() == 0 {
		return "", nil, ErrEmptyDocument
	}
	res := &Result{}
	started := time.Now()

	misspelled := c.Classify(doc)
	c.stageLog("misspell identification", started)
	if len(misspelled) == 0 {
		return "", res, nil
	}

	scores, err := c.Generate(ctx, doc, misspelled, res)
	if err != nil {
		return "", nil, err
	}
	c.stageLog("candidate generation", started)

	ranked := c.Rank(misspelled, scores)
	c.stageLog("candidate ranking", started)

	outcome := c.Assemble(doc, ranked)
	res.Outcome = outcome
	res.Edits = editAnnotations(doc.Text(), outcome)
	return outcome, res, nil
}

func (c *Checker) stageLog(stage string, since time.Time) {
	if !c.opts.Debug {
		return
	}
	log.Printf("%s took: %s", stage, time.Since(since))
}
