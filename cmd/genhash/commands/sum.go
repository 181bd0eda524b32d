package commands

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

func sumCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sum [FILE...]",
		Short: "Print BLAKE2b digests (stdin when no FILE or FILE is -)",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := o.hasher(cmd)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{stdinName}
			}

			// stdin can only be read once; repeated "-" arguments share the
			// digest of the first one.
			stdinAt := slices.Index(args, stdinName)

			sums := make([][]byte, len(args))

			err = forEach(cmd.Context(), len(args), o.jobs, func(ctx context.Context, i int) error {
				if args[i] == stdinName && i != stdinAt {
					return nil
				}

				sum, err := digestFile(ctx, h, args[i], cmd.InOrStdin())
				if err != nil {
					return err
				}

				o.log.Debugw("hashed", "name", args[i])
				sums[i] = sum

				return nil
			})
			if err != nil {
				return err
			}

			for i, name := range args {
				if name == stdinName {
					sums[i] = sums[stdinAt]
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%x  %s\n", sums[i], name)
			}

			return nil
		},
	}
}
