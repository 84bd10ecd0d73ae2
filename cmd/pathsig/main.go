package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathsig/internal/config"
)

var (
	configFile  string
	verbose     bool
	inputFile   string
	outputFile  string
	reportFile  string
	pngFile     string
	level       int
	window      int
	resync      int
	timeAugment bool
	chartRows   int
	coeffs      int
	kind        string
	dim         int
	length      int
	seed        int64
	otherFile   string
	band        int
	penalty     float64
)

// main is the entry point for the pathsig CLI; it exits with status 1 when
// the command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pathsig",
		Short:         "truncated path signatures over CSV time series",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	sigCmd := &cobra.Command{
		Use:   "signature",
		Short: "signature of the whole path",
		RunE:  runSignature,
	}
	sigCmd.Flags().StringVar(&inputFile, "input", "", "path CSV (one row per sample)")
	sigCmd.Flags().IntVar(&level, "level", config.DefaultLevel, "truncation level")
	sigCmd.Flags().BoolVar(&timeAugment, "time-augment", false, "append the sample index as a channel")
	sigCmd.Flags().StringVar(&reportFile, "report", "", "write a JSON run report")
	_ = sigCmd.MarkFlagRequired("input")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "sliding-window signatures",
		RunE:  runWindow,
	}
	windowCmd.Flags().StringVar(&inputFile, "input", "", "path CSV (one row per sample)")
	windowCmd.Flags().IntVar(&window, "window", config.DefaultWindow, "samples per window")
	windowCmd.Flags().IntVar(&level, "level", config.DefaultLevel, "truncation level")
	windowCmd.Flags().BoolVar(&timeAugment, "time-augment", false, "append the sample index as a channel")
	windowCmd.Flags().IntVar(&resync, "resync", 0, "recompute the window directly every N steps (0 = never)")
	windowCmd.Flags().StringVar(&outputFile, "output", "", "output CSV (stdout if empty)")
	windowCmd.Flags().IntVar(&chartRows, "chart", 0, "draw the first K coefficients in the terminal")
	_ = windowCmd.MarkFlagRequired("input")

	genCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a synthetic path",
		RunE:  runGenerate,
	}
	genCmd.Flags().StringVar(&kind, "kind", config.DefaultKind, "walk, chirp or gbm")
	genCmd.Flags().IntVar(&dim, "dim", config.DefaultDim, "channels (ignored by chirp)")
	genCmd.Flags().IntVar(&length, "length", config.DefaultLength, "samples")
	genCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	genCmd.Flags().StringVar(&outputFile, "output", "", "output CSV (stdout if empty)")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot sliding-window coefficients to an image",
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&inputFile, "input", "", "path CSV (one row per sample)")
	plotCmd.Flags().IntVar(&window, "window", config.DefaultWindow, "samples per window")
	plotCmd.Flags().IntVar(&level, "level", config.DefaultLevel, "truncation level")
	plotCmd.Flags().StringVar(&pngFile, "png", "signature.png", "image file (.png, .svg, .pdf)")
	plotCmd.Flags().IntVar(&coeffs, "coeffs", 4, "number of leading coefficients to draw")
	_ = plotCmd.MarkFlagRequired("input")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "DTW distance between the sliding-window signatures of two paths",
		RunE:  runCompare,
	}
	compareCmd.Flags().StringVar(&inputFile, "input", "", "first path CSV")
	compareCmd.Flags().StringVar(&otherFile, "other", "", "second path CSV")
	compareCmd.Flags().IntVar(&window, "window", config.DefaultWindow, "samples per window")
	compareCmd.Flags().IntVar(&level, "level", config.DefaultLevel, "truncation level")
	compareCmd.Flags().BoolVar(&timeAugment, "time-augment", false, "append the sample index as a channel")
	compareCmd.Flags().IntVar(&band, "band", 0, "Sakoe-Chiba band (0 = unconstrained)")
	compareCmd.Flags().Float64Var(&penalty, "penalty", 0, "slope penalty for non-diagonal steps")
	_ = compareCmd.MarkFlagRequired("input")
	_ = compareCmd.MarkFlagRequired("other")

	rootCmd.AddCommand(sigCmd, windowCmd, genCmd, plotCmd, compareCmd)

	return rootCmd
}

// setup resolves the effective configuration (defaults < file < env <
// flags) and installs the slog logger.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	if err := config.LoadEnv(".env"); err != nil {
		return nil, nil, err
	}
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("level") {
		cfg.Level = level
	}
	if flags.Changed("window") {
		cfg.Window = window
	}
	if flags.Changed("resync") {
		cfg.Resync = resync
	}
	if flags.Changed("time-augment") {
		cfg.TimeAugment = timeAugment
	}
	if flags.Changed("kind") {
		cfg.Generator.Kind = kind
	}
	if flags.Changed("dim") {
		cfg.Generator.Dim = dim
	}
	if flags.Changed("length") {
		cfg.Generator.Length = length
	}
	if flags.Changed("seed") {
		cfg.Generator.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	logger.Debug("config resolved", "cmd", cmd.Name(), "level", cfg.Level, "window", cfg.Window,
		"time_augment", cfg.TimeAugment, "resync", cfg.Resync)

	return cfg, logger.With("cmd", cmd.Name()), nil
}
