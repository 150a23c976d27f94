package match

import (
	"math"
	"sort"

	"github.com/spigell/resume-ranker/internal/text"
)

// vectorSpace is a shared TF-IDF space over one corpus. Terms are unigrams
// and bigrams of the normalized, stop-word-filtered token stream. Weights use
// smoothed inverse document frequency (ln((1+n)/(1+df))+1) and every document
// vector is L2-normalized, so the cosine of a document with itself is 1.
type vectorSpace struct {
	vectors []map[string]float64
}

func newVectorSpace(docs []string) *vectorSpace {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)

	for i, doc := range docs {
		tokens := contentTokens(doc)

		c := make(map[string]int)
		for _, tok := range tokens {
			c[tok]++
		}
		for j := 0; j+1 < len(tokens); j++ {
			c[tokens[j]+" "+tokens[j+1]]++
		}

		counts[i] = c
		for term := range c {
			df[term]++
		}
	}

	n := float64(len(docs))
	vectors := make([]map[string]float64, len(docs))
	for i, c := range counts {
		vec := make(map[string]float64, len(c))
		sumSquares := 0.0
		for term, tf := range c {
			w := float64(tf) * (math.Log((1+n)/(1+float64(df[term]))) + 1)
			vec[term] = w
			sumSquares += w * w
		}
		if sumSquares > 0 {
			norm := math.Sqrt(sumSquares)
			for term := range vec {
				vec[term] /= norm
			}
		}
		vectors[i] = vec
	}

	return &vectorSpace{vectors: vectors}
}

// contentTokens normalizes doc and drops stop-words. Bigrams are formed from
// this filtered stream, so "experienced python developer" and "experienced in
// python" share the bigram "experienced python".
func contentTokens(doc string) []string {
	var tokens []string
	for _, tok := range text.Tokens(text.Normalize(doc)) {
		if isStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// cosine is the dot product of two L2-normalized sparse vectors, clamped into
// [0,1] to absorb floating point drift. Zero when either vector is empty.
func cosine(a, b map[string]float64) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}

	dot := 0.0
	for term, w := range a {
		if other, ok := b[term]; ok {
			dot += w * other
		}
	}

	if dot > 1 {
		dot = 1
	}
	if dot < 0 {
		dot = 0
	}
	return dot
}

// topTerms returns up to k terms of document i with the highest weights,
// highest first. Zero-weight terms never appear; ties break alphabetically so
// the result is deterministic.
func (s *vectorSpace) topTerms(i, k int) []string {
	vec := s.vectors[i]

	type weighted struct {
		term   string
		weight float64
	}
	terms := make([]weighted, 0, len(vec))
	for term, w := range vec {
		if w > 0 {
			terms = append(terms, weighted{term, w})
		}
	}

	sort.Slice(terms, func(a, b int) bool {
		if terms[a].weight != terms[b].weight {
			return terms[a].weight > terms[b].weight
		}
		return terms[a].term < terms[b].term
	})

	if len(terms) > k {
		terms = terms[:k]
	}

	top := make([]string, 0, len(terms))
	for _, t := range terms {
		top = append(top, t.term)
	}
	return top
}
