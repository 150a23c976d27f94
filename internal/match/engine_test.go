package match

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestScoreEmptyBatch(t *testing.T) {
	results := Score("anything", nil, DefaultScoringConfig())
	if len(results) != 0 {
		t.Fatalf("expected empty results, got %d", len(results))
	}
}

func TestScoreBothEmpty(t *testing.T) {
	results := Score("", []string{""}, DefaultScoringConfig())
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}

	r := results[0]
	if r.Cosine != 0 || r.Jaccard != 0 || r.Score != 0 {
		t.Fatalf("expected all-zero result, got %+v", r)
	}
	if len(r.Keywords) != 0 {
		t.Fatalf("expected no keywords, got %v", r.Keywords)
	}
}

func TestScoreEmptyCandidate(t *testing.T) {
	results := Score("python developer", []string{""}, DefaultScoringConfig())

	r := results[0]
	// Intersection is empty while the union is not, so Jaccard is 0, not
	// undefined.
	if r.Cosine != 0 || r.Jaccard != 0 || r.Score != 0 {
		t.Fatalf("expected zeros for empty candidate, got %+v", r)
	}
}

func TestScoreIdenticalTexts(t *testing.T) {
	doc := "senior python developer building cloud services with aws docker and kubernetes"

	results := Score(doc, []string{doc}, DefaultScoringConfig())
	r := results[0]

	if math.Abs(r.Cosine-1) > 1e-9 {
		t.Fatalf("expected cosine 1 for identical texts, got %v", r.Cosine)
	}
	if r.Jaccard != 1 {
		t.Fatalf("expected jaccard 1 for identical texts, got %v", r.Jaccard)
	}
	if r.Score != 100 {
		t.Fatalf("expected score 100 with default config, got %v", r.Score)
	}
}

func TestScoreClipCeiling(t *testing.T) {
	doc := "go engineer"

	for _, scaling := range []float64{1, 100, 400, 10000} {
		cfg := ScoringConfig{CosineWeight: ptr(0.6), JaccardWeight: ptr(0.4), ScalingFactor: scaling}
		results := Score(doc, []string{doc}, cfg)
		if results[0].Score > MaxScore {
			t.Fatalf("score %v exceeds ceiling with scaling %v", results[0].Score, scaling)
		}
	}
}

func TestScoreSmallScalingNotClipped(t *testing.T) {
	doc := "go engineer"

	cfg := ScoringConfig{CosineWeight: ptr(0.6), JaccardWeight: ptr(0.4), ScalingFactor: 50}
	results := Score(doc, []string{doc}, cfg)
	// Identical texts give raw 1.0, so the score is the scaling factor.
	if results[0].Score != 50 {
		t.Fatalf("expected 50.00, got %v", results[0].Score)
	}
}

func TestScoreExampleScenario(t *testing.T) {
	reference := "python developer with aws and docker experience"
	candidate := "experienced python developer skilled in aws cloud and kubernetes"

	results := Score(reference, []string{candidate}, DefaultScoringConfig())
	r := results[0]

	if r.Cosine <= 0 || r.Cosine >= 1 {
		t.Fatalf("expected cosine strictly between 0 and 1, got %v", r.Cosine)
	}

	// Token sets share {python, developer, aws, and} out of 12 distinct
	// tokens.
	if math.Abs(r.Jaccard-4.0/12.0) > 1e-9 {
		t.Fatalf("expected jaccard 1/3, got %v", r.Jaccard)
	}

	if r.Score <= 0 || r.Score > 100 {
		t.Fatalf("score out of range: %v", r.Score)
	}
}

func TestScoreKeywords(t *testing.T) {
	reference := "python developer"
	candidates := []string{
		"python python python developer aws docker kubernetes react angular linux git sql",
	}

	results := Score(reference, candidates, DefaultScoringConfig())
	keywords := results[0].Keywords

	if len(keywords) == 0 || len(keywords) > 5 {
		t.Fatalf("expected between 1 and 5 keywords, got %v", keywords)
	}

	// The repeated term carries the highest term frequency and must rank
	// first.
	if keywords[0] != "python" {
		t.Fatalf("expected python first, got %v", keywords)
	}
}

func TestScoreKeywordsFewerThanFive(t *testing.T) {
	results := Score("go", []string{"go"}, DefaultScoringConfig())

	if got := results[0].Keywords; len(got) != 1 || got[0] != "go" {
		t.Fatalf("expected single keyword go, got %v", got)
	}
}

func TestScoreKeywordsIncludeBigrams(t *testing.T) {
	results := Score("machine learning engineer", []string{"machine learning engineer"}, DefaultScoringConfig())

	hasBigram := false
	for _, kw := range results[0].Keywords {
		if strings.Contains(kw, " ") {
			hasBigram = true
		}
	}
	if !hasBigram {
		t.Fatalf("expected a bigram among keywords, got %v", results[0].Keywords)
	}
}

func TestScoreResultsInInputOrder(t *testing.T) {
	reference := "python developer"
	candidates := []string{"python developer", "accountant", "python engineer"}

	results := Score(reference, candidates, DefaultScoringConfig())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Score <= results[1].Score {
		t.Fatalf("identical candidate should outscore unrelated one: %+v", results)
	}
}

func TestScoreDeterministic(t *testing.T) {
	reference := "python developer with aws experience"
	candidates := []string{"aws python developer", "java developer"}

	first := Score(reference, candidates, DefaultScoringConfig())
	second := Score(reference, candidates, DefaultScoringConfig())

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ between identical calls:\n%+v\n%+v", first, second)
	}
}

func TestScoreZeroConfigUsesDefaults(t *testing.T) {
	doc := "python developer"

	zero := Score(doc, []string{doc}, ScoringConfig{})
	def := Score(doc, []string{doc}, DefaultScoringConfig())

	if !reflect.DeepEqual(zero, def) {
		t.Fatalf("zero config should behave like defaults:\n%+v\n%+v", zero, def)
	}
}

func TestScoreSingleAbsentWeightDefaults(t *testing.T) {
	doc := "python developer"

	// Only the cosine key is set. The absent jaccard key must take its
	// default, not zero: identical texts then give raw 1.0.
	partial := Score(doc, []string{doc}, ScoringConfig{CosineWeight: ptr(0.6), ScalingFactor: 50})
	if partial[0].Score != 50 {
		t.Fatalf("absent jaccard weight should default to 0.4, got score %v", partial[0].Score)
	}

	// An explicit zero is honored.
	explicit := Score(doc, []string{doc}, ScoringConfig{CosineWeight: ptr(0.6), JaccardWeight: ptr(0), ScalingFactor: 50})
	if explicit[0].Score != 30 {
		t.Fatalf("explicit zero jaccard weight should be kept, got score %v", explicit[0].Score)
	}
}

func TestWithDefaultsPerKey(t *testing.T) {
	w := ScoringConfig{CosineWeight: ptr(0.25)}.withDefaults()
	if w.cosine != 0.25 {
		t.Fatalf("explicit cosine weight overridden: %v", w.cosine)
	}
	if w.jaccard != DefaultJaccardWeight {
		t.Fatalf("jaccard weight = %v, want default %v", w.jaccard, DefaultJaccardWeight)
	}
	if w.scaling != DefaultScalingFactor {
		t.Fatalf("scaling = %v, want default %v", w.scaling, DefaultScalingFactor)
	}

	w = ScoringConfig{JaccardWeight: ptr(0)}.withDefaults()
	if w.cosine != DefaultCosineWeight || w.jaccard != 0 {
		t.Fatalf("per-key resolution broken: %+v", w)
	}
}

func TestScoreNegativeWeightPropagates(t *testing.T) {
	// Negative weights are not guarded against; the arithmetic result is
	// reported as-is.
	doc := "python developer"
	cfg := ScoringConfig{CosineWeight: ptr(-1), JaccardWeight: ptr(0), ScalingFactor: 400}

	results := Score(doc, []string{doc}, cfg)
	if results[0].Score >= 0 {
		t.Fatalf("expected negative score, got %v", results[0].Score)
	}
}

func TestJaccard(t *testing.T) {
	a := map[string]struct{}{"python": {}, "developer": {}, "aws": {}}
	b := map[string]struct{}{"python": {}, "aws": {}, "cloud": {}, "go": {}}

	got := jaccard(a, b)
	want := 2.0 / 5.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("jaccard = %v, want %v", got, want)
	}

	if jaccard(nil, nil) != 0 {
		t.Fatalf("expected 0 for empty union")
	}
}
