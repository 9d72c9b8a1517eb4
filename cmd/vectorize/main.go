// Command vectorize converts raster images into SVG outlines.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	vectorize "github.com/dalefugier/Vectorize"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	settingsFile string
)

var rootCmd = &cobra.Command{
	Use:           "vectorize <command>",
	Short:         "Trace raster images into vector curves",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		vectorize.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file (default "+defaultSettingsHint+")")

	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(defaultsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "vectorize:", err)
		os.Exit(1)
	}
}
