package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathsig/builder"
	"github.com/katalvlaran/pathsig/dtw"
	"github.com/katalvlaran/pathsig/internal/config"
	"github.com/katalvlaran/pathsig/internal/pathio"
	"github.com/katalvlaran/pathsig/internal/plotting"
	"github.com/katalvlaran/pathsig/internal/report"
	"github.com/katalvlaran/pathsig/matrix"
	"github.com/katalvlaran/pathsig/signature"
	"github.com/katalvlaran/pathsig/tensor"
)

func runSignature(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	path, _, err := pathio.ReadPathFile(inputFile)
	if err != nil {
		return err
	}

	start := time.Now()
	sig, err := signature.Compute(path, cfg.Level, sigOptions(cfg)...)
	if err != nil {
		return err
	}
	vec := sig.SignatureVector()
	log.Info("signature computed", "dim", sig.Dim(), "samples", path.Cols(), "level", cfg.Level,
		"elapsed", time.Since(start))

	col, err := matrix.NewDense(len(vec), 1)
	if err != nil {
		return err
	}
	for i, v := range vec {
		if err = col.Set(i, 0, v); err != nil {
			return err
		}
	}
	if err = pathio.WriteMatrix(cmd.OutOrStdout(), col, pathio.SignatureHeader(sig.Dim(), cfg.Level)); err != nil {
		return err
	}

	if reportFile != "" {
		r := report.New(cmd.Name(), sig.Dim(), cfg.Level, 0, path.Cols(), vec)
		if err = r.WriteFile(reportFile); err != nil {
			return err
		}
		log.Info("report written", "run_id", r.RunID, "file", reportFile)
	}

	return nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	path, _, err := pathio.ReadPathFile(inputFile)
	if err != nil {
		return err
	}

	opts := append(sigOptions(cfg), signature.WithOnWindow(func(right int, sig *tensor.Element) error {
		log.Debug("window", "right", right)
		return nil
	}))
	start := time.Now()
	out, err := signature.SlidingWindow(path, cfg.Window, cfg.Level, opts...)
	if err != nil {
		return err
	}
	d := path.Rows()
	if cfg.TimeAugment {
		d++
	}
	log.Info("sliding window computed", "dim", d, "samples", path.Cols(), "level", cfg.Level,
		"window", cfg.Window, "elapsed", time.Since(start))

	if err = writeOutput(cmd.OutOrStdout(), outputFile, out, pathio.SignatureHeader(d, cfg.Level)); err != nil {
		return err
	}

	if chartRows > 0 {
		series, _, err := plotting.Series(out, chartRows)
		if err != nil {
			return err
		}
		chart, err := plotting.Terminal(series, pathio.SignatureHeader(d, cfg.Level)[:len(series)],
			fmt.Sprintf("window=%d level=%d", cfg.Window, cfg.Level))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), chart)
	}

	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	g := cfg.Generator

	var path *matrix.Dense
	switch g.Kind {
	case "walk":
		path, err = builder.BuildRandomWalk(g.Dim, g.Length, g.Seed)
	case "chirp":
		path, err = builder.BuildChirpPath(g.Length, g.Seed)
	case "gbm":
		path, err = builder.BuildGBMPath(g.Dim, g.Length, g.Seed)
	default:
		err = fmt.Errorf("generate: kind %q: %w", g.Kind, config.ErrInvalid)
	}
	if err != nil {
		return err
	}
	log.Info("path generated", "kind", g.Kind, "dim", path.Rows(), "samples", path.Cols(), "seed", g.Seed)

	return writeOutput(cmd.OutOrStdout(), outputFile, path, pathio.ChannelHeader(path.Rows()))
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	path, _, err := pathio.ReadPathFile(inputFile)
	if err != nil {
		return err
	}
	out, err := signature.SlidingWindow(path, cfg.Window, cfg.Level, sigOptions(cfg)...)
	if err != nil {
		return err
	}
	series, first, err := plotting.Series(out, coeffs)
	if err != nil {
		return err
	}
	d := path.Rows()
	if cfg.TimeAugment {
		d++
	}
	legends := pathio.SignatureHeader(d, cfg.Level)[:len(series)]
	title := fmt.Sprintf("sliding signature (window=%d, level=%d)", cfg.Window, cfg.Level)
	if err = plotting.WritePNG(pngFile, series, legends, title, first); err != nil {
		return err
	}
	log.Info("plot written", "file", pngFile, "series", len(series))

	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	streams := make([]*matrix.Dense, 2)
	for i, name := range []string{inputFile, otherFile} {
		path, _, err := pathio.ReadPathFile(name)
		if err != nil {
			return err
		}
		if streams[i], err = signature.SlidingWindow(path, cfg.Window, cfg.Level, sigOptions(cfg)...); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	start := time.Now()
	dist, _, err := dtw.DTW(streams[0], streams[1], &dtw.Options{
		Band:         band,
		SlopePenalty: penalty,
		MemoryMode:   dtw.RollingArray,
	})
	if err != nil {
		return err
	}
	log.Info("streams aligned", "level", cfg.Level, "window", cfg.Window, "band", band, "elapsed", time.Since(start))
	fmt.Fprintf(cmd.OutOrStdout(), "%g\n", dist)

	return nil
}

func sigOptions(cfg *config.Config) []signature.Option {
	var opts []signature.Option
	if cfg.TimeAugment {
		opts = append(opts, signature.WithTimeAugment())
	}
	if cfg.Resync > 0 {
		opts = append(opts, signature.WithResync(cfg.Resync))
	}

	return opts
}

// writeOutput writes m as CSV to name, or to stdout when name is empty.
func writeOutput(stdout io.Writer, name string, m matrix.Reader, header []string) error {
	if name == "" {
		return pathio.WriteMatrix(stdout, m, header)
	}

	return pathio.WriteMatrixFile(name, m, header)
}
