package commands

import (
	"bufio"
	"context"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gtank/generichash/blake2b"
)

type checkLine struct {
	name   string
	mac    []byte
	hasher *blake2b.Hasher
	status string
}

func checkCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Verify digests from a file of 'digest  name' lines (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config(cmd)
			if err != nil {
				return err
			}

			lines, err := readCheckFile(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			markStdinEntries(lines, args[0] == stdinName)

			// The digest size follows the listed digests unless it was set
			// explicitly.
			hashers := map[int]*blake2b.Hasher{}

			for _, l := range lines {
				if l.status != "" {
					continue
				}

				size := cfg.DigestSize
				if size == 0 {
					size = len(l.mac)
				}

				h, ok := hashers[size]
				if !ok {
					c := cfg
					c.DigestSize = size

					if h, err = blake2b.New(c); err != nil {
						var lerr *blake2b.LengthError
						if !errors.As(err, &lerr) || lerr.Field != "digest size" {
							return err
						}

						o.log.Warnw("unusable digest length", "name", l.name, "err", err)
						l.status = "FAILED bad digest length"

						continue
					}

					hashers[size] = h
				}

				l.hasher = h
			}

			err = forEach(cmd.Context(), len(lines), o.jobs, func(ctx context.Context, i int) error {
				l := lines[i]
				if l.hasher == nil {
					return nil
				}

				sum, err := digestFile(ctx, l.hasher, l.name, cmd.InOrStdin())
				if err != nil {
					if ctx.Err() != nil {
						return err
					}

					o.log.Warnw("unable to read", "name", l.name, "err", err)
					l.status = "FAILED open or read"

					return nil
				}

				l.status = "FAILED"
				if subtle.ConstantTimeCompare(sum, l.mac) == 1 {
					l.status = "OK"
				}

				return nil
			})
			if err != nil {
				return err
			}

			failed := 0

			for _, l := range lines {
				if l.status != "OK" {
					failed++
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", l.name, l.status)
			}

			if failed > 0 {
				return errors.Errorf("%d of %d computed checksums did NOT match", failed, len(lines))
			}

			return nil
		},
	}
}

// readCheckFile parses lines of the form "hexdigest  name". Malformed lines
// are kept with a failure status so they show up in the report.
func readCheckFile(path string, stdin io.Reader) ([]*checkLine, error) {
	r := stdin

	if path != stdinName {
		f, err := os.Open(path) //nolint:gosec
		if err != nil {
			return nil, errors.Wrap(err, "unable to open checksum file")
		}
		defer f.Close() //nolint:errcheck

		r = f
	}

	var lines []*checkLine

	s := bufio.NewScanner(r)
	for lineNo := 1; s.Scan(); lineNo++ {
		text := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		digest, name, ok := strings.Cut(text, "  ")
		if !ok || name == "" {
			lines = append(lines, &checkLine{name: fmt.Sprintf("line %d", lineNo), status: "FAILED improperly formatted"})
			continue
		}

		mac, err := hex.DecodeString(digest)
		if err != nil {
			lines = append(lines, &checkLine{name: name, status: "FAILED improperly formatted"})
			continue
		}

		lines = append(lines, &checkLine{name: name, mac: mac})
	}

	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to read checksum file")
	}

	if len(lines) == 0 {
		return nil, errors.New("no checksum lines found")
	}

	return lines, nil
}

// markStdinEntries fails "-" entries that cannot be served: all of them when
// stdin carried the checksum list, otherwise every one after the first.
func markStdinEntries(lines []*checkLine, listFromStdin bool) {
	seen := listFromStdin

	for _, l := range lines {
		if l.status != "" || l.name != stdinName {
			continue
		}

		switch {
		case listFromStdin:
			l.status = "FAILED stdin holds the checksum list"
		case seen:
			l.status = "FAILED stdin already read"
		}

		seen = true
	}
}
