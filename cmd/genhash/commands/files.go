package commands

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/gtank/generichash/blake2b"
)

const stdinName = "-"

// digestReader streams r through a fresh hash with h's parameters.
func digestReader(ctx context.Context, h *blake2b.Hasher, r io.Reader) ([]byte, error) {
	s, err := h.NewStream()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 64<<10) //nolint:mnd

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := r.Read(buf)
		s.Write(buf[:n]) //nolint:errcheck

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}
	}

	return s.Sum(nil), nil
}

func digestFile(ctx context.Context, h *blake2b.Hasher, name string, stdin io.Reader) ([]byte, error) {
	if name == stdinName {
		return digestReader(ctx, h, stdin)
	}

	f, err := os.Open(name) //nolint:gosec
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return digestReader(ctx, h, f)
}

// forEach runs fn for every index in [0,n) on at most jobs goroutines. The
// first error cancels the context passed to the remaining calls.
func forEach(ctx context.Context, n, jobs int, fn func(ctx context.Context, i int) error) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)

	for i := range n {
		eg.Go(func() error {
			return fn(ctx, i)
		})
	}

	return eg.Wait()
}
