package cmd

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/anoopvshukla/wabot-launch/internal/config"
	"github.com/anoopvshukla/wabot-launch/internal/launcher"
	"github.com/anoopvshukla/wabot-launch/internal/resolver"
	"github.com/anoopvshukla/wabot-launch/internal/ui"
)

// launchFn is swapped out in tests to avoid replacing the test process.
var launchFn = launcher.Launch

// NewRootCmd creates the root command. Flag parsing is disabled: every
// argument, flag-shaped or not, belongs to the bot and is forwarded
// verbatim in its original order.
func NewRootCmd(cfg *config.LaunchConfig, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "wabot-launch [args...]",
		Short:              "Locate and launch the WhatsAppBot binary",
		Long:               `Resolves the installed WhatsAppBot executable across the configured directories and the search path, then hands process control to it.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().Msgf("wabot-launch %s starting", version)
			log.Info().
				Str("bot_dir", cfg.BotDir).
				Str("node_dir", cfg.NodeDir).
				Msg("search directories configured")

			bin, err := resolver.New(cfg, log).Resolve()
			if err != nil {
				var notFound *resolver.NotFoundError
				if errors.As(err, &notFound) {
					for _, loc := range notFound.Searched {
						log.Error().Msgf("searched: %s", loc)
					}
					ui.PrintSearchTable(cmd.ErrOrStderr(), notFound.Searched)
				}
				return err
			}

			log.Info().Str("path", bin.Path).Msg("launching")
			return launchFn(bin.Path, args)
		},
	}

	return cmd
}
