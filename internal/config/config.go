package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/transferanalyzer/internal/freqresp"
	"github.com/san-kum/transferanalyzer/internal/laplace"
	"github.com/san-kum/transferanalyzer/internal/nyquist"
	"github.com/san-kum/transferanalyzer/internal/tf"
	"github.com/san-kum/transferanalyzer/internal/timeresp"
)

const (
	DefaultBackend = "terminal"
	DefaultFormat  = "png"
	DefaultWidth   = 80
	DefaultHeight  = 15
)

type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	System    SystemConfig    `yaml:"system"`
	Frequency FrequencyConfig `yaml:"frequency"`
	Time      TimeConfig      `yaml:"time"`
	Nyquist   NyquistConfig   `yaml:"nyquist"`
}

type DisplayConfig struct {
	Backend   string `yaml:"backend"`
	OutputDir string `yaml:"output_dir"`
	Format    string `yaml:"format"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Hold      bool   `yaml:"hold"`
}

// SystemConfig describes G(s) = num(s)/den(s)·e^(-s·delay), coefficients
// highest power first.
type SystemConfig struct {
	Num   []float64 `yaml:"num"`
	Den   []float64 `yaml:"den"`
	Delay float64   `yaml:"delay"`
}

type FrequencyConfig struct {
	StartRange float64 `yaml:"start_range"`
	EndRange   float64 `yaml:"end_range"`
}

type TimeConfig struct {
	EndRange      float64 `yaml:"end_range"`
	Precision     int     `yaml:"precision"`
	Method        string  `yaml:"inversion_method"`
	StepAmplitude float64 `yaml:"step_amplitude"`
}

type NyquistConfig struct {
	OmegaRange []float64 `yaml:"omega_range,flow"`
	OmegaStep  float64   `yaml:"omega_step"`
}

func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Backend:   DefaultBackend,
			OutputDir: ".",
			Format:    DefaultFormat,
			Width:     DefaultWidth,
			Height:    DefaultHeight,
		},
		System: SystemConfig{
			Num: []float64{1},
			Den: []float64{1, 1},
		},
		Frequency: FrequencyConfig{
			StartRange: freqresp.DefaultStartRange,
			EndRange:   freqresp.DefaultEndRange,
		},
		Time: TimeConfig{
			EndRange:      timeresp.DefaultEndRange,
			Precision:     timeresp.DefaultPrecision,
			Method:        laplace.DefaultMethod,
			StepAmplitude: timeresp.DefaultAmplitude,
		},
		Nyquist: NyquistConfig{
			OmegaRange: []float64{nyquist.DefaultLow, nyquist.DefaultHigh},
			OmegaStep:  nyquist.DefaultStep,
		},
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// TransferFunction builds G(s) from the system section.
func (c *Config) TransferFunction() (tf.Func, error) {
	if len(c.System.Num) == 0 || len(c.System.Den) == 0 {
		return nil, fmt.Errorf("config: system needs num and den coefficients")
	}
	return tf.WithDelay(tf.Rational(c.System.Num, c.System.Den), c.System.Delay), nil
}

func (c *Config) FrequencyOptions() freqresp.Options {
	return freqresp.Options{StartRange: c.Frequency.StartRange, EndRange: c.Frequency.EndRange}
}

func (c *Config) TimeOptions() timeresp.Options {
	return timeresp.Options{EndRange: c.Time.EndRange, Precision: c.Time.Precision, Method: c.Time.Method}
}

func (c *Config) StepOptions() timeresp.StepOptions {
	return timeresp.StepOptions{Options: c.TimeOptions(), Amplitude: c.Time.StepAmplitude}
}

func (c *Config) NyquistOptions() (nyquist.Options, error) {
	if len(c.Nyquist.OmegaRange) != 2 {
		return nyquist.Options{}, fmt.Errorf("config: omega_range needs 2 values, got %v", c.Nyquist.OmegaRange)
	}
	return nyquist.Options{Low: c.Nyquist.OmegaRange[0], High: c.Nyquist.OmegaRange[1], Step: c.Nyquist.OmegaStep}, nil
}
