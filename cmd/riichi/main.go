package main

import (
	"fmt"
	"os"

	"github.com/kevin-chtw/tw_riichi/config"
	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/spf13/cobra"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var (
	configFile string
	format     string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "riichi",
	Short:         "riichi 立直麻将和牌计分",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return err
		}
		if format != "" {
			cfg.Output.Format = format
		}
		l, err := utils.Logger(utils.ParseLevel(cfg.Log.Level), cfg.Log.Dir)
		if err != nil {
			return err
		}
		logger.SetLogger(l)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "yaml config file")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: text or json")
	rootCmd.AddCommand(newScoreCmd(), newWaitsCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
