// Command wfcbench learns a tile model from a sample and synthesizes a new
// output from it, retrying with derived seeds until an attempt collapses.
//
// Usage:
//
//	wfcbench [-config run.yaml] [-sample-file box.txt] [-noise 5]
//	         [-n 3] [-periodic] [-symmetry] [-width 50] [-height 25]
//	         [-seed 1] [-propagator ac4] [-heuristic optimized]
//	         [-attempts 10] [-v]
//
// Flags override values from the config file. Without a sample source the
// built-in box drawing is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/tilewave/generator"
	"github.com/katalvlaran/tilewave/heuristic"
	"github.com/katalvlaran/tilewave/model"
	"github.com/katalvlaran/tilewave/propagator"
	"github.com/katalvlaran/tilewave/runconfig"
	"github.com/katalvlaran/tilewave/sample"
	"github.com/katalvlaran/tilewave/tilemap"
)

var errAllContradicted = errors.New("every attempt contradicted")

func main() {
	var (
		configPath = flag.String("config", "", "YAML run configuration")
		sampleFile = flag.String("sample-file", "", "text sample, one row per line")
		noise      = flag.Int("noise", 0, "use a generated terrain sample with this many levels")
		n          = flag.Int("n", 0, "pattern size")
		periodic   = flag.Bool("periodic", true, "wrap sample windows around the edges")
		symmetry   = flag.Bool("symmetry", false, "add rotated and reflected patterns")
		width      = flag.Int("width", 0, "output width")
		height     = flag.Int("height", 0, "output height")
		seed       = flag.Int64("seed", 0, "seed of the first attempt")
		prop       = flag.String("propagator", "", "ac3, ac2001, ac4 or recursive")
		heur       = flag.String("heuristic", "", "scanline, entropy or optimized")
		attempts   = flag.Int("attempts", 0, "maximum number of attempts")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := runconfig.Default()
	if *configPath != "" {
		var err error
		if cfg, err = runconfig.Load(*configPath); err != nil {
			slog.Error("loading config failed", "path", *configPath, "error", err)
			os.Exit(2)
		}
	}

	// explicitly set flags win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sample-file":
			cfg.SampleFile, cfg.Sample, cfg.Noise = *sampleFile, "", nil
		case "noise":
			cfg.Noise = &runconfig.NoiseSample{Width: 48, Height: 48, Levels: *noise, Seed: *seed}
			cfg.Sample, cfg.SampleFile = "", ""
		case "n":
			cfg.PatternSize = *n
		case "periodic":
			cfg.Periodic = *periodic
		case "symmetry":
			cfg.Symmetry = *symmetry
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "seed":
			cfg.Seed = *seed
		case "propagator":
			cfg.Propagator = *prop
		case "heuristic":
			cfg.Heuristic = *heur
		case "attempts":
			cfg.Attempts = *attempts
		}
	})
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	var err error
	if cfg.Noise != nil {
		nz := cfg.Noise
		err = run(cfg, sample.Noise(nz.Width, nz.Height, nz.Levels, nz.Seed), nz.Width, nz.Height, tilemap.Unknown, 2)
	} else {
		var text string
		if text, err = sampleText(cfg); err == nil {
			grid, w, h := tilemap.ParseRunes(text, ' ')
			err = run(cfg, grid, w, h, '?', 1)
		}
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func sampleText(cfg runconfig.Config) (string, error) {
	switch {
	case cfg.Sample != "":
		return cfg.Sample, nil
	case cfg.SampleFile != "":
		data, err := os.ReadFile(cfg.SampleFile)
		if err != nil {
			return "", fmt.Errorf("read sample: %w", err)
		}
		return string(data), nil
	default:
		return sample.Box, nil
	}
}

// run learns a model from grid and makes up to cfg.Attempts attempts,
// printing the first collapsed output to stdout.
func run[T comparable](cfg runconfig.Config, grid []T, w, h int, unknown T, cellWidth int) error {
	mapping := tilemap.New(grid, unknown)
	m, err := model.Build(mapping.ToTileIDs(grid), w, h, model.Options{
		N:        cfg.PatternSize,
		Periodic: cfg.Periodic,
		Symmetry: cfg.Symmetry,
	})
	if err != nil {
		return err
	}
	slog.Info("model learned",
		"sample", fmt.Sprintf("%dx%d", w, h),
		"tiles", mapping.Len(),
		"states", humanize.Comma(int64(m.StateCount())))

	p, err := propagator.ByName(cfg.Propagator)
	if err != nil {
		return err
	}
	heur, err := heuristic.ByName(cfg.Heuristic)
	if err != nil {
		return err
	}
	g, err := generator.New(m, cfg.Width, cfg.Height,
		generator.WithPropagator(p),
		generator.WithHeuristic(heur),
		generator.WithSeed(cfg.Seed),
		generator.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	var total time.Duration
	for attempt := 1; ; attempt++ {
		res := g.Generate()
		st := g.Stats()
		total += st.Elapsed
		slog.Info(humanize.Ordinal(attempt)+" attempt",
			"result", res.String(),
			"seed", st.Seed,
			"steps", humanize.Comma(int64(st.Steps)),
			"bans", humanize.Comma(int64(st.Bans)),
			"elapsed", st.Elapsed.Round(time.Microsecond))

		if res == generator.Collapsed {
			ids := g.TileIDs()
			fmt.Println(tilemap.Render(mapping.ToBase(ids), cfg.Width, cfg.Height, cellWidth))
			slog.Info("done",
				"attempts", attempt,
				"cells", humanize.Comma(int64(cfg.Width*cfg.Height)),
				"regions", humanize.Comma(int64(len(tilemap.Regions(ids, cfg.Width, cfg.Height)))),
				"total", total.Round(time.Microsecond))
			return nil
		}
		if attempt >= cfg.Attempts {
			return fmt.Errorf("%w after %d attempts: %v", errAllContradicted, attempt, g.Err())
		}
		if err := g.Reset(generator.DeriveSeed(cfg.Seed, uint64(attempt))); err != nil {
			return err
		}
	}
}
