package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the query translation cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show query translation cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := buildCachePolicy(context.Background())
		if err != nil {
			return err
		}

		stats := policy.Stats()

		fmt.Printf("Total:  %d\nErrors: %d\n", stats.Total, stats.Errors)
		if stats.Total > 0 {
			fmt.Printf("Oldest: %s\nNewest: %s\n",
				stats.Oldest.Format("2006-01-02 15:04:05"),
				stats.Newest.Format("2006-01-02 15:04:05"))
		}

		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the query translation cache (forces re-translation of every topic)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		policy, err := buildCachePolicy(ctx)
		if err != nil {
			return err
		}

		err = policy.Clear(ctx)
		if err != nil {
			return err
		}

		fmt.Println("Query translation cache cleared.")

		return nil
	},
}

func initCacheCmd() {
	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
