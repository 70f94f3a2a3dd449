package room

import (
	"fmt"
	"strconv"

	"cozy-spring/internal/core"
)

// Params holds the tunables of one generation pass.
type Params struct {
	GrowthFalloff         float64 `yaml:"growth_falloff"`
	EdgeGrowth            float64 `yaml:"edge_growth"`
	CenterGrowth          float64 `yaml:"center_growth"`
	GrowthNoiseAmplitude  float64 `yaml:"growth_noise_amplitude"`
	GrowthNoiseFrequency  float64 `yaml:"growth_noise_frequency"`
	GrowthNoiseOctaves    int     `yaml:"growth_noise_octaves"`
	GrowthNoiseBias       float64 `yaml:"growth_noise_bias"`
	SpecialNoiseFrequency float64 `yaml:"special_noise_frequency"`
	SpecialNoiseAmplitude float64 `yaml:"special_noise_amplitude"`
	NoiseFractalGain      float64 `yaml:"noise_fractal_gain"`

	TreeGrowthCutoff      float64 `yaml:"tree_growth_cutoff"`
	LoneTreeGrowthCutoff  float64 `yaml:"lone_tree_growth_cutoff"`
	LoneTreeSpecialCutoff float64 `yaml:"lone_tree_special_cutoff"`
	GrassGrowthCutoff     float64 `yaml:"grass_growth_cutoff"`
	TallGrassGrowthCutoff float64 `yaml:"tall_grass_growth_cutoff"`

	ExitSize int `yaml:"exit_size"`
}

// DefaultParams returns the tuned defaults.
func DefaultParams() Params {
	return Params{
		GrowthFalloff:         0.6,
		EdgeGrowth:            1.5,
		CenterGrowth:          -1.0,
		GrowthNoiseAmplitude:  4.0,
		GrowthNoiseFrequency:  0.1,
		GrowthNoiseOctaves:    3,
		GrowthNoiseBias:       -1.7,
		SpecialNoiseFrequency: 0.5,
		SpecialNoiseAmplitude: 3.0,
		NoiseFractalGain:      0.6,
		TreeGrowthCutoff:      0.6,
		LoneTreeGrowthCutoff:  0.4,
		LoneTreeSpecialCutoff: 0.4,
		GrassGrowthCutoff:     0.0,
		TallGrassGrowthCutoff: 0.2,
		ExitSize:              2,
	}
}

type paramField struct {
	key   string
	label string
	group string
	float func(*Params) *float64
	int   func(*Params) *int
	min   int
}

var paramFields = []paramField{
	{key: "growth_falloff", label: "Growth falloff", group: "Growth", float: func(p *Params) *float64 { return &p.GrowthFalloff }},
	{key: "edge_growth", label: "Edge growth", group: "Growth", float: func(p *Params) *float64 { return &p.EdgeGrowth }},
	{key: "center_growth", label: "Center growth", group: "Growth", float: func(p *Params) *float64 { return &p.CenterGrowth }},
	{key: "growth_noise_amplitude", label: "Growth noise amplitude", group: "Growth Noise", float: func(p *Params) *float64 { return &p.GrowthNoiseAmplitude }},
	{key: "growth_noise_frequency", label: "Growth noise frequency", group: "Growth Noise", float: func(p *Params) *float64 { return &p.GrowthNoiseFrequency }},
	{key: "growth_noise_octaves", label: "Growth noise octaves", group: "Growth Noise", int: func(p *Params) *int { return &p.GrowthNoiseOctaves }, min: 1},
	{key: "growth_noise_bias", label: "Growth noise bias", group: "Growth Noise", float: func(p *Params) *float64 { return &p.GrowthNoiseBias }},
	{key: "noise_fractal_gain", label: "Fractal gain", group: "Growth Noise", float: func(p *Params) *float64 { return &p.NoiseFractalGain }},
	{key: "special_noise_frequency", label: "Special noise frequency", group: "Special Noise", float: func(p *Params) *float64 { return &p.SpecialNoiseFrequency }},
	{key: "special_noise_amplitude", label: "Special noise amplitude", group: "Special Noise", float: func(p *Params) *float64 { return &p.SpecialNoiseAmplitude }},
	{key: "tree_growth_cutoff", label: "Tree cutoff", group: "Cutoffs", float: func(p *Params) *float64 { return &p.TreeGrowthCutoff }},
	{key: "lone_tree_growth_cutoff", label: "Lone tree growth cutoff", group: "Cutoffs", float: func(p *Params) *float64 { return &p.LoneTreeGrowthCutoff }},
	{key: "lone_tree_special_cutoff", label: "Lone tree special cutoff", group: "Cutoffs", float: func(p *Params) *float64 { return &p.LoneTreeSpecialCutoff }},
	{key: "grass_growth_cutoff", label: "Grass cutoff", group: "Cutoffs", float: func(p *Params) *float64 { return &p.GrassGrowthCutoff }},
	{key: "tall_grass_growth_cutoff", label: "Tall grass cutoff", group: "Cutoffs", float: func(p *Params) *float64 { return &p.TallGrassGrowthCutoff }},
	{key: "exit_size", label: "Exit size", group: "Exits", int: func(p *Params) *int { return &p.ExitSize }},
}

func lookupField(key string) (paramField, bool) {
	for _, f := range paramFields {
		if f.key == key {
			return f, true
		}
	}
	return paramField{}, false
}

// Keys lists every tunable key in presentation order.
func Keys() []string {
	keys := make([]string, len(paramFields))
	for i, f := range paramFields {
		keys[i] = f.key
	}
	return keys
}

// Set parses value into the field named by key.
func (p *Params) Set(key, value string) error {
	f, ok := lookupField(key)
	if !ok {
		return fmt.Errorf("unknown room parameter %q", key)
	}
	if f.int != nil {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("room parameter %s: %w", key, err)
		}
		if parsed < f.min {
			return fmt.Errorf("room parameter %s: %d below minimum %d", key, parsed, f.min)
		}
		*f.int(p) = parsed
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("room parameter %s: %w", key, err)
	}
	*f.float(p) = parsed
	return nil
}

// Float returns the named parameter as a float64.
func (p Params) Float(key string) (float64, bool) {
	f, ok := lookupField(key)
	if !ok {
		return 0, false
	}
	if f.int != nil {
		return float64(*f.int(&p)), true
	}
	return *f.float(&p), true
}

// Apply returns a copy of p with every parsable entry of cfg applied.
// Unknown keys and malformed values are ignored.
func (p Params) Apply(cfg map[string]string) Params {
	for k, v := range cfg {
		_ = p.Set(k, v)
	}
	return p
}

// FromMap populates params from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Params {
	return DefaultParams().Apply(cfg)
}

// Parameters exposes the tunables grouped for display.
func (p Params) Parameters() core.ParameterSnapshot {
	var groups []core.ParameterGroup
	index := map[string]int{}
	for _, f := range paramFields {
		i, ok := index[f.group]
		if !ok {
			i = len(groups)
			index[f.group] = i
			groups = append(groups, core.ParameterGroup{Name: f.group})
		}
		var param core.Parameter
		if f.int != nil {
			param = intParam(f.key, f.label, *f.int(&p))
		} else {
			param = floatParam(f.key, f.label, *f.float(&p))
		}
		groups[i].Params = append(groups[i].Params, param)
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
