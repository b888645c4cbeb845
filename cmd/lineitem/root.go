package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/lineitem/internal/config"
	"github.com/jask/lineitem/internal/invoice"
	"github.com/jask/lineitem/internal/logging"
	"github.com/jask/lineitem/internal/tui"
)

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "lineitem",
		Short:         "Edit invoice line items in the terminal",
		Long:          "lineitem captures quantity, price, discount and tax for invoice lines,\nderives the amounts as you type, and keeps the lines in memory for editing.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			return runTUI(cfg)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $LINEITEM_CONFIG or ~/.config/lineitem/config.toml)")
	root.Flags().String("id-strategy", "", "record id strategy: sequence, snowflake or uuid")
	root.Flags().Int64("id-node", 0, "snowflake node number (0-1023)")
	root.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	root.Flags().String("log-file", "", `log file path, "-" for stderr`)
	root.Flags().Bool("alt-screen", true, "run in the terminal's alternate screen")

	root.AddCommand(newCalcCmd(), newVersionCmd(), newInitConfigCmd(&cfgFile))
	return root
}

func runTUI(cfg config.Config) error {
	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	ids, err := invoice.NewIDGenerator(cfg.IDs.Strategy, cfg.IDs.Node)
	if err != nil {
		return err
	}
	log.Info().Str("id_strategy", cfg.IDs.Strategy).Msg("starting")

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(tui.New(ids, log), opts...).Run(); err != nil {
		log.Error().Err(err).Msg("program exited")
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info().Msg("stopped")
	return nil
}
