package cli

import (
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/kubev2v/concurrency-patterns/internal/config"
	"github.com/kubev2v/concurrency-patterns/internal/models"
	"github.com/kubev2v/concurrency-patterns/internal/services"
)

func newHandoffCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "handoff",
		Short: "Send one message and block until it is received",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := services.NewHandoffService(cmd.OutOrStdout()).Run(cmd.Context(), opts.cfg.Channel.Message)
			return err
		},
	}

	opts.register(cmd, messageFlag())

	return cmd
}

func newPollCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poll",
		Short: "Send one message and poll for it without blocking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := services.NewPollingService(opts.cfg.Channel, cmd.OutOrStdout()).Run(cmd.Context(), opts.cfg.Channel.Message)
			return err
		},
	}

	d := config.NewChannelWithOptionsAndDefaults()
	opts.register(cmd, messageFlag())

	fs := cmd.Flags()
	fs.Uint("max-attempts", d.PollMaxAttempts, "maximum number of polls before timing out")
	fs.Duration("interval", d.PollInterval, "pause between two polls")
	fs.Duration("max-elapsed", d.PollMaxElapsed, "maximum time spent polling; zero means no bound")
	opts.registerPFlag(cmd, "max-attempts", config.KeyChannelPollMaxAttempts)
	opts.registerPFlag(cmd, "interval", config.KeyChannelPollInterval)
	opts.registerPFlag(cmd, "max-elapsed", config.KeyChannelPollMaxElapsed)

	return cmd
}

func newFanInCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fanin",
		Short: "Sum the values sent by many producers through one channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := models.ParseFanInMode(opts.cfg.Channel.Collect)
			if err != nil {
				return err
			}
			values := services.ProducerValues(opts.cfg.Channel.Producers)
			_, err = services.NewFanInService(cmd.OutOrStdout()).Run(cmd.Context(), values, mode)
			return err
		},
	}

	d := config.NewChannelWithOptionsAndDefaults()
	opts.register(cmd,
		&cobraflags.IntFlag{
			Name:     "producers",
			ViperKey: config.KeyChannelProducers,
			Usage:    "number of producers; producer i sends i",
			Value:    d.Producers,
		},
		&cobraflags.StringFlag{
			Name:     "collect",
			ViperKey: config.KeyChannelCollect,
			Usage:    "consumer discipline: 'drain' or 'recv'",
			Value:    d.Collect,
		},
	)

	return cmd
}

// messageFlag is shared by handoff and poll. Each command needs its own value:
// cobraflags keeps the registered pflag inside it.
func messageFlag() *cobraflags.StringFlag {
	return &cobraflags.StringFlag{
		Name:     "message",
		ViperKey: config.KeyChannelMessage,
		Usage:    "message to hand off",
		Value:    config.NewChannelWithOptionsAndDefaults().Message,
	}
}
