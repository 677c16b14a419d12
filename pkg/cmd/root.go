package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "newsintel",
	Short: "Breathbath NewsIntel aggregates topic news into GitHub issue reports",
}

func Execute() error {
	initVersionCmd()
	initRunCmd()
	initCacheCmd()

	return rootCmd.Execute()
}
