package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gtank/generichash/blake2b"
)

func keygenCmd(o *options) *cobra.Command {
	var keyBytes int

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Print a random hex encoded key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := make([]byte, keyBytes)

			// rejects lengths outside the key bounds before touching the RNG
			if _, err := blake2b.New(blake2b.Config{Key: key}); err != nil {
				return err
			}

			if _, err := rand.Read(key); err != nil {
				return errors.Wrap(err, "unable to read random key")
			}

			o.log.Debugw("generated key", "bytes", keyBytes)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key))

			return nil
		},
	}

	cmd.Flags().IntVar(&keyBytes, "bytes", blake2b.KeyBytes, "key length in bytes")

	return cmd
}
