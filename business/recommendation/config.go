package recommendation

// Strategy names accepted by the facade.
const (
	StrategySimilar      = "similar"
	StrategyPersonalized = "personalized"
	StrategyTrending     = "trending"
	StrategyBoughtWith   = "frequently-bought"
)

// Weights for the similarity sub-signals. Each sub-signal is normalized to
// [0,1] before weighting, so the weights must sum to at most 1.0 for the
// composite score to stay inside [0,1].
type Weights struct {
	Category     float64
	Price        float64
	Attributes   float64
	Conservation float64
	Popularity   float64
}

type Config struct {
	Weights Weights

	// price proximity contributes nothing beyond this relative difference
	PriceCutoff float64

	// minimum composite score for the similar-items strategy
	SimilarityThreshold float64

	// default result count when the caller passes no limit
	MaxRecommendations int

	// additive score bump when several source purchases agree on a candidate
	MultiSourceBoost float64

	// purchase-driven trending window, in days
	TrendingWindowDays int

	// how many recent anchor orders the co-occurrence scan covers
	CoOccurrenceWindow int

	// how many recent orders feed the personalized strategy
	RecentOrderLookback int

	// how many of the most recent purchased products seed similar-items
	SourceProducts int
}

const (
	defaultWeightCategory     = 0.30
	defaultWeightPrice        = 0.20
	defaultWeightAttributes   = 0.25
	defaultWeightConservation = 0.15
	defaultWeightPopularity   = 0.10

	defaultPriceCutoff         = 0.30
	defaultSimilarityThreshold = 0.60
	defaultMaxRecommendations  = 6
	defaultMultiSourceBoost    = 0.10

	defaultTrendingWindowDays  = 30
	defaultCoOccurrenceWindow  = 50
	defaultRecentOrderLookback = 5
	defaultSourceProducts      = 3
)

func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Category:     defaultWeightCategory,
			Price:        defaultWeightPrice,
			Attributes:   defaultWeightAttributes,
			Conservation: defaultWeightConservation,
			Popularity:   defaultWeightPopularity,
		},
		PriceCutoff:         defaultPriceCutoff,
		SimilarityThreshold: defaultSimilarityThreshold,
		MaxRecommendations:  defaultMaxRecommendations,
		MultiSourceBoost:    defaultMultiSourceBoost,
		TrendingWindowDays:  defaultTrendingWindowDays,
		CoOccurrenceWindow:  defaultCoOccurrenceWindow,
		RecentOrderLookback: defaultRecentOrderLookback,
		SourceProducts:      defaultSourceProducts,
	}
}

// normalized fills zero-valued tunables with defaults so a partially built
// Config stays usable.
func (cfg Config) normalized() Config {
	def := DefaultConfig()

	if cfg.Weights == (Weights{}) {
		cfg.Weights = def.Weights
	}
	if cfg.PriceCutoff <= 0 {
		cfg.PriceCutoff = def.PriceCutoff
	}
	if cfg.SimilarityThreshold <= 0 {
		cfg.SimilarityThreshold = def.SimilarityThreshold
	}
	if cfg.MaxRecommendations <= 0 {
		cfg.MaxRecommendations = def.MaxRecommendations
	}
	if cfg.MultiSourceBoost <= 0 {
		cfg.MultiSourceBoost = def.MultiSourceBoost
	}
	if cfg.TrendingWindowDays <= 0 {
		cfg.TrendingWindowDays = def.TrendingWindowDays
	}
	if cfg.CoOccurrenceWindow <= 0 {
		cfg.CoOccurrenceWindow = def.CoOccurrenceWindow
	}
	if cfg.RecentOrderLookback <= 0 {
		cfg.RecentOrderLookback = def.RecentOrderLookback
	}
	if cfg.SourceProducts <= 0 {
		cfg.SourceProducts = def.SourceProducts
	}

	return cfg
}
