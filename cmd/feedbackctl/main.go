package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"feedbackservice/internal/apiclient"
)

var Version = "dev"

type options struct {
	apiURL  string
	timeout time.Duration
}

func (o *options) client() *apiclient.Client {
	return apiclient.New(o.apiURL, o.timeout)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "feedbackctl",
		Short:         "Browse analyzed feedback and send digests",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultURL := os.Getenv("FEEDBACK_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api", defaultURL, "Feedback service base URL")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Per-request timeout")

	rootCmd.AddCommand(listCmd(opts))
	rootCmd.AddCommand(insightsCmd(opts))
	rootCmd.AddCommand(backfillCmd(opts))
	rootCmd.AddCommand(digestCmd(opts))

	return rootCmd
}
