package cli

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kubev2v/concurrency-patterns/internal/models"
	"github.com/kubev2v/concurrency-patterns/internal/services"
)

func newAllCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every concurrency demonstration in sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			cfg := opts.cfg

			header(out, "detached")
			if err := services.NewDetachedService(cfg.Spawn, out).Run(ctx); err != nil {
				return err
			}

			header(out, "joined")
			if _, err := services.NewJoinedService(cfg.Spawn, out).Run(ctx); err != nil {
				return err
			}

			header(out, "counter")
			if _, err := services.NewCounterService(out).Run(ctx, cfg.Counter); err != nil {
				return err
			}

			header(out, "handoff")
			if _, err := services.NewHandoffService(out).Run(ctx, cfg.Channel.Message); err != nil {
				return err
			}

			header(out, "poll")
			if _, err := services.NewPollingService(cfg.Channel, out).Run(ctx, cfg.Channel.Message); err != nil {
				return err
			}

			header(out, "fanin")
			mode, err := models.ParseFanInMode(cfg.Channel.Collect)
			if err != nil {
				return err
			}
			_, err = services.NewFanInService(out).Run(ctx, services.ProducerValues(cfg.Channel.Producers), mode)
			return err
		},
	}
}

func header(w io.Writer, name string) {
	_, _ = color.New(color.FgCyan).Fprintf(w, "== %s\n", name)
}
