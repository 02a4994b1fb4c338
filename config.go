package bfsearch

// DEBUG gates verbose diagnostic logging, same name and gating style as
// the teacher's package-level DEBUG constant.
const DEBUG = false

// SearchConfig is the TOML-decodable shape of a search run's parameters
// (spec.md §6's flags, minus the target bytes themselves which are always
// positional/CLI-only). cmd/bfsearch layers `flag` overrides on top of
// whatever a `--config` file supplies, the same two-step
// decode-then-override pattern the teacher's cmd/addpop and cmd/rungen use
// for ToolConfig/PopulationConfig.
type SearchConfig struct {
	Beta       float64 `toml:"beta"`
	Gamma      float64 `toml:"gamma"`
	MaxSteps   uint64  `toml:"max_steps"`
	DemoSteps  uint64  `toml:"demo_steps"`
	Extra      uint    `toml:"extra"`
	DBPath     string  `toml:"db_path"`
}

// DefaultSearchConfig returns spec.md §6's documented flag defaults.
func DefaultSearchConfig() *SearchConfig {
	return &SearchConfig{
		Beta:      1.0,
		Gamma:     1.0,
		MaxSteps:  1_000_000,
		DemoSteps: 1_000_000,
		Extra:     64,
	}
}

// ScoreParams extracts the two score weights in the shape frontier.go
// expects.
func (c *SearchConfig) ScoreParams() ScoreParams {
	return ScoreParams{Beta: c.Beta, Gamma: c.Gamma}
}
