package app

import "flag"

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	Seed   int64
	Config string
}

// NewConfig returns a Config populated with the reference defaults: the full
// heat bug variant, 15px cells and a 100ms tick.
func NewConfig() *Config {
	return &Config{Sim: "heatbugs", Scale: 15, TPS: 10, Seed: 1337}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (heatgrid, heatfield, heatbugs)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Config, "config", c.Config, "optional YAML config file")
}
