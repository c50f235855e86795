package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/transferanalyzer/internal/chart"
	"github.com/san-kum/transferanalyzer/internal/config"
	"github.com/san-kum/transferanalyzer/internal/freqresp"
	"github.com/san-kum/transferanalyzer/internal/laplace"
	"github.com/san-kum/transferanalyzer/internal/nyquist"
	"github.com/san-kum/transferanalyzer/internal/tf"
	"github.com/san-kum/transferanalyzer/internal/timeresp"
)

var (
	configFile string
	preset     string
	num        string
	den        string
	delay      float64
	verbose    bool
	// Display
	backend string
	outDir  string
	format  string
	width   int
	height  int
	holdOn  bool
	// Frequency response
	startRange float64
	endRange   float64
	// Time response
	timeEnd   float64
	precision int
	method    string
	amplitude float64
	// Nyquist
	omegaMin  float64
	omegaMax  float64
	omegaStep float64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "transferanalyzer",
		Short:        "frequency, time and nyquist plots of transfer functions",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use a preset system")
	pf.StringVar(&num, "num", "1", "numerator coefficients, highest power first")
	pf.StringVar(&den, "den", "1,1", "denominator coefficients, highest power first")
	pf.Float64Var(&delay, "delay", 0, "dead time in seconds")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&backend, "backend", config.DefaultBackend, "display backend (terminal, image)")
	pf.StringVar(&outDir, "out", ".", "output directory (image backend)")
	pf.StringVar(&format, "format", config.DefaultFormat, "image format (png, svg, pdf)")
	pf.IntVar(&width, "width", config.DefaultWidth, "chart width in columns (terminal backend)")
	pf.IntVar(&height, "height", config.DefaultHeight, "chart height in rows (terminal backend)")
	pf.BoolVar(&holdOn, "hold", false, "keep each chart open until closed (terminal backend)")

	bodeCmd := &cobra.Command{
		Use:   "bode",
		Short: "frequency response (magnitude and phase)",
		Args:  cobra.NoArgs,
		RunE:  runBode,
	}
	bodeCmd.Flags().Float64Var(&startRange, "start-range", freqresp.DefaultStartRange, "frequency step and lower plot bound (rad/s)")
	bodeCmd.Flags().Float64Var(&endRange, "end-range", freqresp.DefaultEndRange, "upper frequency (rad/s)")

	impulseCmd := &cobra.Command{
		Use:   "impulse",
		Short: "impulse response",
		Args:  cobra.NoArgs,
		RunE:  runImpulse,
	}
	addTimeFlags(impulseCmd)

	stepCmd := &cobra.Command{
		Use:   "step",
		Short: "step response",
		Args:  cobra.NoArgs,
		RunE:  runStep,
	}
	addTimeFlags(stepCmd)
	stepCmd.Flags().Float64Var(&amplitude, "amplitude", timeresp.DefaultAmplitude, "step amplitude")

	nyquistCmd := &cobra.Command{
		Use:   "nyquist",
		Short: "nyquist diagram",
		Args:  cobra.NoArgs,
		RunE:  runNyquist,
	}
	nyquistCmd.Flags().Float64Var(&omegaMin, "omega-min", nyquist.DefaultLow, "lowest angular frequency (rad/s)")
	nyquistCmd.Flags().Float64Var(&omegaMax, "omega-max", nyquist.DefaultHigh, "highest angular frequency (rad/s)")
	nyquistCmd.Flags().Float64Var(&omegaStep, "omega-step", nyquist.DefaultStep, "angular frequency step (rad/s)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset systems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				sys := config.GetPreset(name)
				line := fmt.Sprintf("  %-13s (%s) / (%s)", name, tf.FormatPoly(sys.Num), tf.FormatPoly(sys.Den))
				if sys.Delay != 0 {
					line += fmt.Sprintf(" · e^(-%gs)", sys.Delay)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	methodsCmd := &cobra.Command{
		Use:   "methods",
		Short: "list inverse laplace methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range laplace.Methods() {
				mark := ""
				if name == laplace.DefaultMethod {
					mark = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s%s\n", name, mark)
			}
			return nil
		},
	}

	rootCmd.AddCommand(bodeCmd, impulseCmd, stepCmd, nyquistCmd, presetsCmd, methodsCmd)
	return rootCmd
}

func addTimeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&timeEnd, "end-range", timeresp.DefaultEndRange, "time span (s)")
	cmd.Flags().IntVar(&precision, "precision", timeresp.DefaultPrecision, "number of samples")
	cmd.Flags().StringVar(&method, "method", laplace.DefaultMethod, "inversion method ("+strings.Join(laplace.Methods(), ", ")+")")
}

// loadConfig layers defaults, the config file, the preset and explicitly
// set flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if preset != "" {
		sys := config.GetPreset(preset)
		if sys == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.System = *sys
	}

	flags := cmd.Flags()
	if flags.Changed("num") {
		coeffs, err := tf.ParseCoeffs(num)
		if err != nil {
			return nil, err
		}
		cfg.System.Num = coeffs
	}
	if flags.Changed("den") {
		coeffs, err := tf.ParseCoeffs(den)
		if err != nil {
			return nil, err
		}
		cfg.System.Den = coeffs
	}
	if flags.Changed("delay") {
		cfg.System.Delay = delay
	}

	if flags.Changed("backend") {
		cfg.Display.Backend = backend
	}
	if flags.Changed("out") {
		cfg.Display.OutputDir = outDir
	}
	if flags.Changed("format") {
		cfg.Display.Format = format
	}
	if flags.Changed("width") {
		cfg.Display.Width = width
	}
	if flags.Changed("height") {
		cfg.Display.Height = height
	}
	if flags.Changed("hold") {
		cfg.Display.Hold = holdOn
	}
	return cfg, nil
}

func newDisplay(cmd *cobra.Command, cfg *config.Config) (chart.Display, error) {
	switch cfg.Display.Backend {
	case "terminal":
		t := chart.NewTerminal(cmd.OutOrStdout())
		t.In = cmd.InOrStdin()
		t.Width = cfg.Display.Width
		t.Height = cfg.Display.Height
		t.Hold = cfg.Display.Hold
		return t, nil
	case "image":
		im := chart.NewImage(cfg.Display.OutputDir, cfg.Display.Format)
		im.Logger = loggerFromContext(cmd.Context())
		return im, nil
	default:
		return nil, fmt.Errorf("unknown backend: %s (available: terminal, image)", cfg.Display.Backend)
	}
}

// setup resolves the configuration, the system under analysis and the
// display for a plotting command.
func setup(cmd *cobra.Command) (*config.Config, tf.Func, chart.Display, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	g, err := cfg.TransferFunction()
	if err != nil {
		return nil, nil, nil, err
	}
	d, err := newDisplay(cmd, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := loggerFromContext(cmd.Context())
	logger.Debug("system",
		"num", tf.FormatPoly(cfg.System.Num),
		"den", tf.FormatPoly(cfg.System.Den),
		"delay", cfg.System.Delay,
		"backend", cfg.Display.Backend,
	)
	return cfg, g, d, nil
}

func runBode(cmd *cobra.Command, args []string) error {
	cfg, g, d, err := setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("start-range") {
		cfg.Frequency.StartRange = startRange
	}
	if cmd.Flags().Changed("end-range") {
		cfg.Frequency.EndRange = endRange
	}

	logger := loggerFromContext(cmd.Context())
	logger.Debug("frequency sweep", "start_range", cfg.Frequency.StartRange, "end_range", cfg.Frequency.EndRange)

	r, err := freqresp.Plot(g, cfg.FrequencyOptions(), d)
	if err != nil {
		return err
	}
	logger.Info("crossover", "omega_c", r.Crossover.Omega, "phi_c", r.Crossover.Phase, "samples", len(r.Omega))
	return nil
}

func applyTimeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("end-range") {
		cfg.Time.EndRange = timeEnd
	}
	if flags.Changed("precision") {
		cfg.Time.Precision = precision
	}
	if flags.Changed("method") {
		cfg.Time.Method = method
	}
	if flags.Changed("amplitude") {
		cfg.Time.StepAmplitude = amplitude
	}
}

func runImpulse(cmd *cobra.Command, args []string) error {
	cfg, g, d, err := setup(cmd)
	if err != nil {
		return err
	}
	applyTimeFlags(cmd, cfg)

	logger := loggerFromContext(cmd.Context())
	logger.Debug("impulse response", "end_range", cfg.Time.EndRange, "precision", cfg.Time.Precision, "method", cfg.Time.Method)

	r, err := timeresp.PlotImpulse(g, cfg.TimeOptions(), d)
	if err != nil {
		return err
	}
	logger.Info("impulse response", "samples", len(r.Time))
	return nil
}

func runStep(cmd *cobra.Command, args []string) error {
	cfg, g, d, err := setup(cmd)
	if err != nil {
		return err
	}
	applyTimeFlags(cmd, cfg)

	logger := loggerFromContext(cmd.Context())
	logger.Debug("step response",
		"amplitude", cfg.Time.StepAmplitude,
		"end_range", cfg.Time.EndRange,
		"precision", cfg.Time.Precision,
		"method", cfg.Time.Method,
	)

	r, err := timeresp.PlotStep(g, cfg.StepOptions(), d)
	if err != nil {
		return err
	}
	logger.Info("step response", "samples", len(r.Time), "final", r.Amplitude[len(r.Amplitude)-1])
	return nil
}

func runNyquist(cmd *cobra.Command, args []string) error {
	cfg, g, d, err := setup(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("omega-min") || flags.Changed("omega-max") {
		opts, err := cfg.NyquistOptions()
		if err != nil {
			return err
		}
		if flags.Changed("omega-min") {
			opts.Low = omegaMin
		}
		if flags.Changed("omega-max") {
			opts.High = omegaMax
		}
		cfg.Nyquist.OmegaRange = []float64{opts.Low, opts.High}
	}
	if flags.Changed("omega-step") {
		cfg.Nyquist.OmegaStep = omegaStep
	}

	opts, err := cfg.NyquistOptions()
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())
	logger.Debug("nyquist sweep", "low", opts.Low, "high", opts.High, "step", opts.Step)

	c, err := nyquist.Plot(g, opts, d)
	if err != nil {
		return err
	}
	logger.Info("nyquist contour", "samples", len(c.Points), "start", c.Points[0])
	return nil
}
