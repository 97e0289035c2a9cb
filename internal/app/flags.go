package app

import (
	"flag"
	"fmt"
	"strings"

	"falling-sand/internal/brush"
	"falling-sand/internal/sims/sand"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	Panel int
	Brush string

	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults: a 30x30 sand
// world drawn with 20px cells, ticking four times per second.
func NewConfig() *Config {
	return &Config{Sim: "sand", Scale: 20, TPS: 4, Seed: 42, Panel: 220, Brush: "sand"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.Brush, "brush", c.Brush, "initial brush material (stone, sand, water, lava)")
	fs.Var(&c.Overrides, "set", "sim option in key=value form (repeatable)")
}

// SimOptions returns the sim factory options collected from -set flags. The
// seed flag is passed through so the sim's own default does not win.
func (c *Config) SimOptions() map[string]string {
	opts := c.Overrides.Map()
	if _, ok := opts["seed"]; !ok {
		opts["seed"] = fmt.Sprint(c.Seed)
	}
	return opts
}

// NewBrush builds the driver brush from the -brush flag.
func (c *Config) NewBrush() (*brush.Brush, error) {
	m, err := sand.ParseMaterial(c.Brush)
	if err != nil {
		return nil, fmt.Errorf("brush: %w", err)
	}
	b, err := brush.NewWith(m)
	if err != nil {
		return nil, fmt.Errorf("brush: %w", err)
	}
	return b, nil
}

// KVList collects repeated key=value flag values.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set validates and appends one key=value pair.
func (l *KVList) Set(value string) error {
	key, _, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later pairs win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}
