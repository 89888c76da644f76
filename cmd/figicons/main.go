package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kpango/glg"

	figicons "github.com/gucio321/figicons/pkg"
	"github.com/gucio321/figicons/pkg/config"
	"github.com/gucio321/figicons/pkg/figma"
	"github.com/gucio321/figicons/pkg/ledger"
	"github.com/gucio321/figicons/pkg/optimize"
	"github.com/gucio321/figicons/pkg/svgdoc"
)

type Flags struct {
	OutputDir   string        `json:"outputDir" yaml:"outputDir"`
	ReportPath  string        `json:"reportPath" yaml:"reportPath"`
	Optimizer   string        `json:"optimizer" yaml:"optimizer"`
	Palette     string        `json:"palette" yaml:"palette"`
	Concurrency int           `json:"concurrency" yaml:"concurrency"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
	Debug       bool          `json:"debug" yaml:"debug"`
	Quiet       bool          `json:"quiet" yaml:"quiet"`
	preset      string
	makePreset  string
}

func main() {
	cfg, err := config.ParseEnv()
	if err != nil {
		glg.Fatalf("Unable to read environment: %v", err)
	}

	var f Flags
	flag.StringVar(&f.OutputDir, "o", cfg.OutputDir, "output directory (wiped on every run)")
	flag.StringVar(&f.ReportPath, "report", cfg.ReportPath, "error report CSV path")
	flag.StringVar(&f.Optimizer, "optimizer", "compact", "optimizer: inkscape, compact or none")
	flag.StringVar(&f.Palette, "palette", "default", "recolor palette")
	flag.IntVar(&f.Concurrency, "j", 0, "max parallel downloads (0 = unlimited)")
	flag.DurationVar(&f.Timeout, "timeout", 0, "abort the run after this long (0 = never)")
	flag.BoolVar(&f.Debug, "debug", false, "debug logging")
	flag.BoolVar(&f.Quiet, "quiet", false, "log warnings and errors only")
	flag.StringVar(&f.preset, "preset", "", "JSON or YAML preset file path. This will override all other flags")
	flag.StringVar(&f.makePreset, "make-preset", "", "print preset of current flags in given format (json, yaml) and exit")
	flag.Parse()

	if f.makePreset != "" {
		out, err := config.MakePreset(f, f.makePreset)
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		fmt.Println(string(out))
		glg.Infof("Presets generated")

		return
	}

	if f.preset != "" {
		if err := config.LoadPreset(f.preset, &f); err != nil {
			glg.Fatalf("Unable to load preset from %s: %v (use valid file or empty to not use presets)", f.preset, err)
		}
	}

	setupLogging(f)

	if err := cfg.Validate(); err != nil {
		flag.Usage()
		glg.Fatalf("Invalid configuration: %v", err)
	}

	palette, err := svgdoc.GetPalette(f.Palette)
	if err != nil {
		glg.Fatalf("Cannot load palette: %v", err)
	}

	optimizer, closeOptimizer := newOptimizer(f)
	defer closeOptimizer()

	ctx := context.Background()
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	client := figma.NewClient(cfg.Token, cfg.FileKey, cfg.NodeID, figma.WithBaseURL(cfg.APIURL))
	l := ledger.New(cfg.FileKey)

	if _, err := figicons.NewPipeline(client, l).
		OutputDir(f.OutputDir).
		Optimizer(optimizer).
		Palette(palette).
		Concurrency(f.Concurrency).
		Run(ctx); err != nil {
		closeOptimizer()
		glg.Fatalf("Run failed: %v", err)
	}

	if l.Len() > 0 {
		fmt.Println(l.Table())
		glg.Warnf("%d issues found, see %s", l.Len(), f.ReportPath)
	}

	if err := l.Save(f.ReportPath); err != nil {
		glg.Errorf("Cannot save report: %v", err)
		os.Exit(1)
	}
}

func setupLogging(f Flags) {
	switch {
	case f.Quiet:
		glg.Get().
			SetLevelMode(glg.DEBG, glg.NONE).
			SetLevelMode(glg.INFO, glg.NONE)
	case !f.Debug:
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
	}
}

// newOptimizer returns optimizer selected by flags and a function releasing it.
// If inkscape cannot be started, the built-in compactor is used instead.
func newOptimizer(f Flags) (optimize.Optimizer, func()) {
	switch f.Optimizer {
	case "none":
		return optimize.Noop, func() {}
	case "compact":
		return optimize.Compact, func() {}
	case "inkscape":
		glg.Infof("running inkscape")

		ink, err := optimize.NewInkscape(f.Debug)
		if err != nil {
			glg.Warnf("Cannot run inkscape, falling back to compact: %v", err)
			return optimize.Compact, func() {}
		}

		closed := false

		return optimize.Chain(ink, optimize.Compact), func() {
			if closed {
				return
			}

			closed = true
			if err := ink.Close(); err != nil {
				glg.Warnf("Cannot close inkscape: %v", err)
			}
		}
	}

	glg.Fatalf("Unknown optimizer %q (use inkscape, compact or none)", f.Optimizer)

	return nil, nil
}
