package align

// Config holds the gap-penalty scheme for global alignment.
//
// Opening a gap must cost more than the best possible single substitution
// score (BLOSUM62 tops out at 11), otherwise a lone substitution can be
// represented as an insertion+deletion pair and corrupt downstream
// reference-position counting. The defaults keep open > extend > max
// substitution bonus.
type Config struct {
	GapOpen   int `yaml:"gap_open" json:"gap_open"`
	GapExtend int `yaml:"gap_extend" json:"gap_extend"`
}

// DefaultConfig returns the standard penalty scheme.
func DefaultConfig() Config {
	return Config{
		GapOpen:   12,
		GapExtend: 2,
	}
}

func applyDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.GapOpen <= 0 {
		cfg.GapOpen = def.GapOpen
	}
	if cfg.GapExtend <= 0 {
		cfg.GapExtend = def.GapExtend
	}
	return cfg
}
