// Package main is the entry point for the rpg-worlds command line
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-worlds/internal/errors"
)

var (
	worldID  string
	envFiles []string
)

var rootCmd = &cobra.Command{
	Use:   "rpg-worlds",
	Short: "Character builds for world-authored tabletop settings",
	Long: `rpg-worlds validates character builds against the content authored for a
world, stores them in Redis and derives their stat blocks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&worldID, "world", "", "world to act on (overrides WORLD_ID)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(bonusCmd)
	rootCmd.AddCommand(levelUpCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(rollCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if rejection, ok := errors.GetRejection(err); ok {
			_ = writeJSON(os.Stderr, map[string]any{
				"error":     errors.GetMessage(err),
				"rejection": rejection,
			})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(errors.GetCode(err).ExitStatus())
	}
}
