package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters shared by the viewer and
// the headless runner.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Steps   int
	Verbose bool
	Crop    bool
	Set     Params
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "caves", Scale: 6, TPS: 15, Seed: 42, Steps: 60, Set: Params{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (0 prints only the final frame)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Steps, "steps", c.Steps, "steps to run in headless mode")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log debug output to stderr")
	fs.BoolVar(&c.Crop, "crop", c.Crop, "print only the bounding box of the shapes")
	fs.Var(c.Set, "set", "comma separated key=value simulation parameters (repeatable)")
}

// Params collects key=value pairs from one or more -set flags.
type Params map[string]string

// String implements flag.Value.
func (p Params) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (p Params) Set(s string) error {
	for _, pair := range strings.Split(s, ",") {
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return fmt.Errorf("parameter %q is not key=value", pair)
		}
		p[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return nil
}
