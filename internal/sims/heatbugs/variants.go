package heatbugs

import "heatbugs/internal/core"

// Variant names registered with core.
const (
	VariantGrid  = "heatgrid"
	VariantField = "heatfield"
	VariantBugs  = "heatbugs"
)

// Variants lists the registered variant names from simplest to complete.
var Variants = []string{VariantGrid, VariantField, VariantBugs}

// VariantConfig returns the default configuration for the named variant:
// heatgrid is a static random field, heatfield adds decay and diffusion, and
// heatbugs adds the bug population. Unknown names return the heatbugs config.
func VariantConfig(name string) Config {
	c := DefaultConfig()
	switch name {
	case VariantGrid:
		c.Params.Decay = 0
		c.Params.Diffusion = 0
		c.Params.BugCount = 0
	case VariantField:
		c.Params.BugCount = 0
	}
	return c
}

// NewVariant builds a world for the named variant with map overrides applied.
func NewVariant(name string, cfg map[string]string) *World {
	return NewVariantWithConfig(name, ApplyOverrides(VariantConfig(name), cfg))
}

// NewVariantWithConfig builds a world from cfg that reports the variant name.
func NewVariantWithConfig(name string, cfg Config) *World {
	w := NewWithConfig(cfg)
	switch name {
	case VariantGrid, VariantField:
		w.name = name
	}
	return w
}

func init() {
	for _, name := range Variants {
		name := name
		core.Register(name, func(cfg map[string]string) core.Sim {
			return NewVariant(name, cfg)
		})
	}
}
