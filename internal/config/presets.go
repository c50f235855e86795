package config

import "sort"

// Presets are named example systems.
var Presets = map[string]SystemConfig{
	"first_order": {Num: []float64{1}, Den: []float64{1, 1}},
	"lag":         {Num: []float64{1}, Den: []float64{10, 1}},
	"second_order": {
		Num: []float64{1}, Den: []float64{1, 0.4, 1},
	},
	"resonant": {
		Num: []float64{1}, Den: []float64{1, 0.05, 1},
	},
	"third_order": {
		Num: []float64{8}, Den: []float64{1, 3, 3, 1},
	},
	"lead": {
		Num: []float64{1, 1}, Den: []float64{0.1, 1},
	},
	"dead_time": {
		Num: []float64{1}, Den: []float64{1, 1}, Delay: 0.5,
	},
	// pole at s=0: bode and nyquist hit ω=0 and return tf.ErrSingular
	"integrator": {Num: []float64{1}, Den: []float64{1, 1, 0}},
}

func GetPreset(name string) *SystemConfig {
	sys, ok := Presets[name]
	if !ok {
		return nil
	}
	return &sys
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
