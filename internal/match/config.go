package match

// Defaults applied when the scoring configuration is missing keys. Scoring
// must stay available on partial configuration, so each absent weight falls
// back here instead of failing.
const (
	DefaultCosineWeight  = 0.6
	DefaultJaccardWeight = 0.4
	DefaultScalingFactor = 400

	// MaxScore is the hard ceiling applied after scaling.
	MaxScore = 100
)

// ScoringConfig carries the blend weights and the scaling factor for one
// scoring call. It is a plain value passed into every call; there is no
// ambient configuration state. The weight fields are pointers so that a key
// absent from configuration stays distinguishable from an explicit zero. The
// engine does not require the weights to sum to 1, though the reference
// configuration does.
type ScoringConfig struct {
	CosineWeight  *float64 `mapstructure:"cosine"`
	JaccardWeight *float64 `mapstructure:"jaccard"`
	ScalingFactor float64  `mapstructure:"scaling-factor"`
}

// DefaultScoringConfig returns the reference configuration: 60% cosine,
// 40% Jaccard, scaled by 400.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		CosineWeight:  ptr(DefaultCosineWeight),
		JaccardWeight: ptr(DefaultJaccardWeight),
		ScalingFactor: DefaultScalingFactor,
	}
}

func ptr(v float64) *float64 { return &v }

// scoringWeights is a ScoringConfig with every key resolved.
type scoringWeights struct {
	cosine  float64
	jaccard float64
	scaling float64
}

// withDefaults resolves the configuration per key. A nil weight means its key
// was absent and takes the documented default; an explicit zero is kept. A
// non-positive scaling factor falls back to the default.
func (c ScoringConfig) withDefaults() scoringWeights {
	w := scoringWeights{
		cosine:  DefaultCosineWeight,
		jaccard: DefaultJaccardWeight,
		scaling: c.ScalingFactor,
	}
	if c.CosineWeight != nil {
		w.cosine = *c.CosineWeight
	}
	if c.JaccardWeight != nil {
		w.jaccard = *c.JaccardWeight
	}
	if w.scaling <= 0 {
		w.scaling = DefaultScalingFactor
	}
	return w
}
