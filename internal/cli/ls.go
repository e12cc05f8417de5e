package cli

import (
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/concurrency-patterns/internal/config"
	"github.com/kubev2v/concurrency-patterns/internal/listing"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List a directory, optionally sorted by size or name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.cfg.Listing.Dir
			if len(args) == 1 {
				dir = args[0]
			}

			order, err := listing.OrderFromFlags(opts.cfg.Listing.BySize, opts.cfg.Listing.ByName)
			if err != nil {
				return err
			}

			entries, err := listing.Read(dir)
			if err != nil {
				return err
			}
			listing.Sort(entries, order)
			zap.S().Named("listing").Debugw("directory read", "dir", dir, "entries", len(entries), "order", order)

			return listing.Write(cmd.OutOrStdout(), entries)
		},
	}

	opts.register(cmd,
		&cobraflags.BoolFlag{
			Name:      "size",
			Shorthand: "s",
			ViperKey:  config.KeyListingBySize,
			Usage:     "sort by size",
		},
		&cobraflags.BoolFlag{
			Name:      "name",
			Shorthand: "n",
			ViperKey:  config.KeyListingByName,
			Usage:     "sort by name",
		},
	)
	cmd.MarkFlagsMutuallyExclusive("size", "name")

	return cmd
}
