package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"skycast/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := app.New()

	var opts app.Options
	ran := false

	rootCmd := &cobra.Command{
		Use:           "skycast",
		Short:         "Current weather in your terminal, with an ASCII sky",
		Long:          "Fetches current conditions from OpenWeatherMap for the saved default location (or an ad-hoc zip code) and renders them next to an ASCII-art glyph.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			return a.Run(cmd.Context(), opts)
		},
	}

	rootCmd.Flags().BoolVar(&opts.Setup, "setup", false, "run the interactive setup flow")
	rootCmd.Flags().StringVar(&opts.Zip, "zip", "", "show weather for this zip code instead of the saved default")
	rootCmd.Flags().StringVarP(&opts.Country, "country", "c", "", "country code for --zip (default US)")
	rootCmd.Flags().BoolVar(&opts.JSON, "json", false, "print the reading as JSON instead of art")
	rootCmd.MarkFlagsMutuallyExclusive("setup", "zip")

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if !ran {
			os.Exit(app.ExitInvalidInput)
		}
		os.Exit(app.ExitCode(err))
	}
}
