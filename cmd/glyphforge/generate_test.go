package main

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linuxmatters/glyphforge/internal/config"
	"github.com/linuxmatters/glyphforge/internal/renderer"
	"github.com/linuxmatters/glyphforge/internal/symbol"
)

// stepSource hands out a new shade per call. With distinct set, calls past
// it repeat the last shade. With blockAt set, that call closes reached and
// waits for ctx before returning.
type stepSource struct {
	ctx      context.Context
	blockAt  int
	reached  chan struct{}
	distinct int

	calls int
}

func (s *stepSource) Candidate() renderer.Candidate {
	s.calls++
	if s.blockAt > 0 && s.calls == s.blockAt {
		close(s.reached)
		<-s.ctx.Done()
	}
	v := s.calls
	if s.distinct > 0 {
		v = min(v, s.distinct)
	}
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{uint8(v * 10), 0, 0, 255}), image.Point{}, draw.Src)
	return renderer.Candidate{Image: img}
}

func countSymbols(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var n int
	for _, e := range entries {
		if _, ok := symbol.ParseSymbolFilename(e.Name()); ok {
			n++
		}
	}
	return n
}

func TestRunInteractive_CtrlCStopsAtSymbolBoundary(t *testing.T) {
	dir := t.TempDir()
	sink, err := symbol.NewDirSink(dir)
	if err != nil {
		t.Fatalf("NewDirSink: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := &stepSource{ctx: ctx, blockAt: 3, reached: make(chan struct{})}
	gen := symbol.NewGenerator(src, symbol.NewGuard(config.HashSize))

	in, keys := io.Pipe()
	defer keys.Close()
	go func() {
		<-src.reached
		_, _ = keys.Write([]byte{0x03}) // ctrl+c
	}()

	cmd := &GenerateCmd{Count: 10, MaxAttempts: 5, OutputDir: dir, NoPreview: true}
	model, err := cmd.runInteractive(ctx, cancel, gen, sink,
		tea.WithInput(in), tea.WithOutput(io.Discard), tea.WithoutSignalHandler())

	if !model.Interrupted() {
		t.Error("model not marked interrupted")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	var batchErr *symbol.BatchError
	if !errors.As(err, &batchErr) || batchErr.Index != 4 {
		t.Errorf("err = %v, want a batch error at symbol 4", err)
	}
	// The symbol in flight when ctrl+c arrived is still finished and written.
	if src.calls != 3 {
		t.Errorf("source called %d times, want 3", src.calls)
	}
	if n := countSymbols(t, dir); n != 3 {
		t.Errorf("%d symbols on disk, want 3", n)
	}
}

func TestRunInteractive_FailureReachesView(t *testing.T) {
	dir := t.TempDir()
	sink, err := symbol.NewDirSink(dir)
	if err != nil {
		t.Fatalf("NewDirSink: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := &stepSource{distinct: 2}
	gen := symbol.NewGenerator(src, symbol.NewGuard(config.HashSize))

	cmd := &GenerateCmd{Count: 5, MaxAttempts: 4, OutputDir: dir, NoPreview: true}
	model, err := cmd.runInteractive(ctx, cancel, gen, sink,
		tea.WithInput(nil), tea.WithOutput(io.Discard), tea.WithoutSignalHandler())

	if !errors.Is(err, symbol.ErrExhaustedAttempts) {
		t.Fatalf("err = %v, want ErrExhaustedAttempts", err)
	}
	if model.Interrupted() {
		t.Error("model marked interrupted without ctrl+c")
	}

	summary := model.CompletionSummary()
	for _, want := range []string{"Stopped at symbol 3", "2 kept on disk"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
	if n := countSymbols(t, dir); n != 2 {
		t.Errorf("%d symbols on disk, want 2", n)
	}
	if src.calls != 2+cmd.MaxAttempts {
		t.Errorf("source called %d times, want %d", src.calls, 2+cmd.MaxAttempts)
	}
}
