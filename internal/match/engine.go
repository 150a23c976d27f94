// Package match scores candidate documents against a reference document by
// blending TF-IDF cosine similarity with token-set Jaccard overlap into a
// 0-100 score, and surfaces the top weighted terms per candidate to justify
// the number.
package match

import (
	"math"

	"github.com/spigell/resume-ranker/internal/text"
)

// topKeywords is how many contributing terms a result carries at most.
const topKeywords = 5

// Result is the score breakdown for one candidate.
type Result struct {
	// Cosine is the raw TF-IDF cosine similarity in [0,1].
	Cosine float64
	// Jaccard is the raw token-set overlap in [0,1].
	Jaccard float64
	// Score is the blended, scaled value in [0,100] at two decimals.
	Score float64
	// Keywords are up to 5 nonzero-weight terms, highest weight first.
	Keywords []string
}

// Score ranks every candidate text against the reference text, returning one
// result per candidate in input order. The vector space is built fresh over
// {reference} plus all candidates on every call; nothing is shared between
// calls and the inputs are not mutated.
//
// Texts that normalize to empty score 0 on both signals. Negative weights are
// not guarded against: a caller supplying one gets the negative score the
// arithmetic produces, matching the reference behavior.
func Score(reference string, candidates []string, cfg ScoringConfig) []Result {
	results := make([]Result, 0, len(candidates))
	if len(candidates) == 0 {
		return results
	}

	weights := cfg.withDefaults()

	docs := make([]string, 0, len(candidates)+1)
	docs = append(docs, reference)
	docs = append(docs, candidates...)

	space := newVectorSpace(docs)
	refVector := space.vectors[0]
	refTokens := text.TokenSet(text.Normalize(reference))

	for i, candidate := range candidates {
		vector := space.vectors[i+1]

		cos := cosine(refVector, vector)
		jac := jaccard(refTokens, text.TokenSet(text.Normalize(candidate)))

		raw := cos*weights.cosine + jac*weights.jaccard
		score := round2(raw * weights.scaling)
		if score > MaxScore {
			score = MaxScore
		}

		results = append(results, Result{
			Cosine:   cos,
			Jaccard:  jac,
			Score:    score,
			Keywords: space.topTerms(i+1, topKeywords),
		})
	}

	return results
}

// jaccard is |intersection| / |union| of two token sets, 0 when the union is
// empty.
func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// round2 rounds half away from zero at two decimal digits.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
