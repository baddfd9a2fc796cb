package engine

// Config holds the league shape and the thresholds the engine decides with.
type Config struct {
	ILCapacity int // total IL-type slots in the league
	BenchSlots int

	LowRankThreshold  int // 30-day rank beyond which a starter is flagged
	WaiverRankCeiling int // window rank a free agent must be inside
	WaiverMinMPG      float64
	WaiverMinGames    int // games played in the window
}

// DefaultConfig returns the standard-league settings.
func DefaultConfig() Config {
	return Config{
		ILCapacity:        3,
		BenchSlots:        3,
		LowRankThreshold:  60,
		WaiverRankCeiling: 96,
		WaiverMinMPG:      28.0,
		WaiverMinGames:    5,
	}
}

// Engine is the stateless decision core: allocation, IL flags, and waiver
// scanning over one day's snapshot. Every method is a pure function of its
// inputs; nothing persists between calls.
type Engine struct {
	cfg Config
}

// New creates an Engine with the given league configuration.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}
