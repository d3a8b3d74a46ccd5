package symbol

import (
	"context"
	"fmt"
	"time"
)

// Progress is reported after each symbol is written.
type Progress struct {
	Index   int
	Total   int
	Path    string
	Symbol  Symbol
	Elapsed time.Duration
}

// BatchOptions tunes GenerateBatch.
type BatchOptions struct {
	MaxAttempts int
	OnProgress  func(Progress)
}

// BatchResult summarises a batch, complete or not.
type BatchResult struct {
	Paths    []string // Written files, index order
	Attempts int      // Candidates drawn in total
	Rejected int      // Candidates that collided
	Duration time.Duration
}

// BatchError reports the index at which a batch stopped.
type BatchError struct {
	Index int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("symbol %d: %v", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// GenerateBatch generates count unique symbols and writes them to sink as
// indices 1..count. It stops at the first failure and returns a *BatchError
// holding the failing index; symbols already written stay in place.
func GenerateBatch(ctx context.Context, gen *Generator, count int, sink Sink, opts BatchOptions) (res BatchResult, err error) {
	if count < 1 {
		return res, fmt.Errorf("invalid symbol count %d", count)
	}
	if opts.MaxAttempts < 1 {
		return res, fmt.Errorf("invalid max attempts %d", opts.MaxAttempts)
	}

	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	for i := 1; i <= count; i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, &BatchError{Index: i, Err: ctxErr}
		}

		sym, genErr := gen.GenerateUnique(opts.MaxAttempts)
		if genErr != nil {
			res.Attempts += opts.MaxAttempts
			res.Rejected += opts.MaxAttempts
			return res, &BatchError{Index: i, Err: genErr}
		}
		res.Attempts += sym.Attempts
		res.Rejected += sym.Attempts - 1

		path, writeErr := sink.Write(i, sym.Image)
		if writeErr != nil {
			return res, &BatchError{Index: i, Err: fmt.Errorf("writing symbol: %w", writeErr)}
		}
		res.Paths = append(res.Paths, path)

		if opts.OnProgress != nil {
			opts.OnProgress(Progress{
				Index:   i,
				Total:   count,
				Path:    path,
				Symbol:  sym,
				Elapsed: time.Since(start),
			})
		}
	}

	return res, nil
}
