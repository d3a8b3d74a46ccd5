package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linuxmatters/glyphforge/internal/cli"
	"github.com/linuxmatters/glyphforge/internal/config"
	"github.com/linuxmatters/glyphforge/internal/renderer"
	"github.com/linuxmatters/glyphforge/internal/shape"
	"github.com/linuxmatters/glyphforge/internal/symbol"
	"github.com/linuxmatters/glyphforge/internal/ui"
	"github.com/mattn/go-isatty"
)

// minCanvasSize keeps the smallest family features a few pixels apart
const minCanvasSize = 64

type GenerateCmd struct {
	Count       int    `help:"Number of symbols to generate" default:"28"`
	OutputDir   string `help:"Directory for symbol_N.png files" default:"generated_symbols" type:"path"`
	Size        int    `help:"Symbol canvas size in pixels" default:"500"`
	MaxAttempts int    `help:"Duplicate candidates tolerated per symbol" default:"100"`
	Families    string `help:"Shape families: all, geometric, script or a comma-separated list" default:"all"`
	Seed        uint64 `help:"Random seed for a reproducible alphabet (0 picks one)" default:"0"`
	Similar     int    `help:"Also reject near duplicates within this many difference-hash bits (-1 disables)" default:"-1" name:"similar-distance"`
	Ink         string `help:"Stroke colour as hex" default:"#000000"`
	Background  string `help:"Canvas colour as hex" default:"#FFFFFF"`
	Plain       bool   `help:"Print plain progress lines instead of the interactive view"`
	NoPreview   bool   `help:"Disable symbol preview during generation"`
}

func (c *GenerateCmd) Run() error {
	if c.Count < 1 {
		return fmt.Errorf("invalid count: %d (must be at least 1)", c.Count)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("invalid max attempts: %d (must be at least 1)", c.MaxAttempts)
	}
	if c.Size < minCanvasSize {
		return fmt.Errorf("invalid size: %d (must be at least %d)", c.Size, minCanvasSize)
	}

	rc := &config.RuntimeConfig{Size: c.Size, MaxAttempts: c.MaxAttempts}
	if err := rc.SetInkColor(c.Ink); err != nil {
		return fmt.Errorf("--ink: %w", err)
	}
	if err := rc.SetBackgroundColor(c.Background); err != nil {
		return fmt.Errorf("--background: %w", err)
	}

	families, err := shape.ParseFamilies(c.Families)
	if err != nil {
		return fmt.Errorf("--families: %w", err)
	}

	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var guardOpts []symbol.GuardOption
	if c.Similar >= 0 {
		guardOpts = append(guardOpts, symbol.WithNearDuplicates(c.Similar))
	}

	gen, err := newSymbolGenerator(rc, families, seed, guardOpts...)
	if err != nil {
		return err
	}

	sink, err := symbol.NewDirSink(c.OutputDir)
	if err != nil {
		return err
	}

	if c.Plain || !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return c.runPlain(gen, sink, seed)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, err = c.runInteractive(ctx, cancel, gen, sink)
	return err
}

// newSymbolGenerator wires shapes, renderer and guard around one seeded source
func newSymbolGenerator(rc *config.RuntimeConfig, families []shape.Family, seed uint64, opts ...symbol.GuardOption) (*symbol.Generator, error) {
	rng := rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
	canvas := shape.NewCanvas(rc.GetSize())

	shapes, err := shape.NewGenerator(rng, canvas, families...)
	if err != nil {
		return nil, err
	}

	source := &symbol.ShapeSource{
		Shapes:   shapes,
		Renderer: renderer.NewRenderer(rng, canvas, rc),
	}
	return symbol.NewGenerator(source, symbol.NewGuard(rc.GetHashSize(), opts...)), nil
}

func (c *GenerateCmd) runPlain(gen *symbol.Generator, sink symbol.Sink, seed uint64) error {
	cli.PrintBanner()
	cli.PrintInfo("Output", c.OutputDir)
	cli.PrintInfo("Seed", strconv.FormatUint(seed, 10))
	fmt.Println()

	res, err := symbol.GenerateBatch(context.Background(), gen, c.Count, sink, symbol.BatchOptions{
		MaxAttempts: c.MaxAttempts,
		OnProgress: func(p symbol.Progress) {
			cli.PrintSymbolProgress(p.Index, p.Total)
		},
	})
	if err != nil {
		if len(res.Paths) > 0 {
			cli.PrintWarning(fmt.Sprintf("kept %d symbols written before the failure", len(res.Paths)))
		}
		return err
	}

	cli.PrintGenerateSummary(c.OutputDir, len(res.Paths), res.Attempts, res.Rejected, res.Duration)
	return nil
}

// runInteractive drives the batch from a worker goroutine and the progress
// view from the program loop. Quitting the view calls cancel, which stops
// the batch at the next symbol boundary.
func (c *GenerateCmd) runInteractive(ctx context.Context, cancel context.CancelFunc, gen *symbol.Generator, sink symbol.Sink, opts ...tea.ProgramOption) (*ui.BatchModel, error) {
	model := ui.NewBatchModel(c.Count, c.NoPreview)
	p := tea.NewProgram(model, opts...)

	var genErr error
	done := make(chan struct{})

	go func() {
		defer close(done)

		res, err := symbol.GenerateBatch(ctx, gen, c.Count, sink, symbol.BatchOptions{
			MaxAttempts: c.MaxAttempts,
			OnProgress: func(prog symbol.Progress) {
				p.Send(ui.SymbolProgress{
					Index:      prog.Index,
					Total:      prog.Total,
					Path:       prog.Path,
					Family:     prog.Symbol.Family.String(),
					Decoration: prog.Symbol.Decoration.String(),
					Attempts:   prog.Symbol.Attempts,
					Elapsed:    prog.Elapsed,
					Image:      prog.Symbol.Image,
				})
			},
		})
		genErr = err

		if err != nil {
			var batchErr *symbol.BatchError
			index := len(res.Paths) + 1
			reason := err
			if errors.As(err, &batchErr) {
				index, reason = batchErr.Index, batchErr.Err
			}
			p.Send(ui.BatchFailed{Index: index, Written: len(res.Paths), Err: reason})
			return
		}

		p.Send(ui.BatchComplete{
			OutputDir: c.OutputDir,
			Count:     len(res.Paths),
			Attempts:  res.Attempts,
			Rejected:  res.Rejected,
			Duration:  res.Duration,
		})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-done
		return model, fmt.Errorf("running UI: %w", err)
	}

	// The final frame already shows the summary; after ctrl+c the batch is
	// cancelled at the next symbol boundary instead.
	if model.Interrupted() {
		cancel()
	}
	<-done
	return model, genErr
}
