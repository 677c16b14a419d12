package cmd

import (
	"context"
	"os/signal"
	"syscall"

	logging "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs the news intelligence pipeline once over the configured topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		p, err := BuildPipeline(ctx)
		if err != nil {
			return err
		}

		logging.Info("starting news intelligence pipeline run")

		return p.Run(ctx)
	},
}

func initRunCmd() {
	rootCmd.AddCommand(runCmd)
}
