package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Srialok01/healthcheck/internal/config"
	"github.com/Srialok01/healthcheck/internal/logging"
	"github.com/Srialok01/healthcheck/internal/output"
	"github.com/Srialok01/healthcheck/internal/probe"
)

var (
	flagTimeout     float64
	flagNoRedirects bool
	flagSummary     bool
	flagJSON        bool
	flagConcurrency int
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "healthcheck [url ...]",
	Short: "Check the health of HTTP(S) endpoints from the terminal",
	Long: `healthcheck probes one or more URLs and reports status code, response
latency, redirect resolution, and TLS certificate validity and expiry.

URLs can be passed as arguments, or saved in the config file
(~/.config/healthcheck/config.yml) and probed by running healthcheck with no
arguments. A site being down is reported in the output, not via the exit
code: only usage errors exit non-zero.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config supplies defaults and the saved site list; it is
		// optional as long as URLs are passed on the command line.
		cfg, err := config.LoadConfig()
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = &config.Config{
				TimeoutSeconds: config.DefaultTimeoutSeconds,
				Concurrency:    config.DefaultConcurrency,
			}
		}

		urls := args
		if len(urls) == 0 {
			urls = cfg.URLs()
		}
		if len(urls) == 0 {
			return fmt.Errorf("no URLs to check (pass them as arguments or run 'healthcheck site:add')")
		}

		timeoutSeconds := float64(cfg.TimeoutSeconds)
		if cmd.Flags().Changed("timeout") {
			timeoutSeconds = flagTimeout
		}
		if timeoutSeconds <= 0 {
			return fmt.Errorf("--timeout must be a positive number of seconds")
		}

		follow := !cfg.NoRedirects
		if cmd.Flags().Changed("no-redirects") {
			follow = !flagNoRedirects
		}

		concurrency := cfg.Concurrency
		if cmd.Flags().Changed("concurrency") {
			concurrency = flagConcurrency
		}
		if concurrency <= 0 {
			return fmt.Errorf("--concurrency must be positive")
		}

		logger, err := logging.New(flagVerbose, cfg.LogDir)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		defer logger.Sync()

		prober := probe.New(probe.Options{
			Timeout:         time.Duration(timeoutSeconds * float64(time.Second)),
			FollowRedirects: follow,
			Concurrency:     concurrency,
			Logger:          logger,
		})
		defer prober.Close()

		// Handle OS signals
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		results := prober.CheckAll(ctx, urls)

		if flagJSON {
			var summary *probe.Summary
			if flagSummary {
				s := probe.Summarize(results)
				summary = &s
			}
			return output.WriteJSON(os.Stdout, results, summary)
		}

		fmt.Print(output.RenderResults(results))
		if flagSummary {
			fmt.Print(output.RenderSummary(probe.Summarize(results)))
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Float64Var(&flagTimeout, "timeout", config.DefaultTimeoutSeconds, "per-probe timeout in seconds")
	rootCmd.Flags().BoolVar(&flagNoRedirects, "no-redirects", false, "report the first response instead of following redirects")
	rootCmd.Flags().BoolVar(&flagSummary, "summary", false, "print aggregate statistics after per-site results")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "emit machine-readable JSON instead of formatted text")
	rootCmd.Flags().IntVar(&flagConcurrency, "concurrency", config.DefaultConcurrency, "number of probes run in parallel")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging to stderr")
}
