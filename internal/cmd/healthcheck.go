package cmd

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/nigellippett2/nrml/internal/config"
	"github.com/nigellippett2/nrml/internal/healthcheck"
	"github.com/nigellippett2/nrml/internal/logger"
)

var healthcheckFlags struct {
	url     string
	timeout time.Duration
}

var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Probe a running server's health endpoint",
	Long: `Call GET /api/health on a running server and print the report.

The command exits non-zero when the server is unreachable or reports
itself unhealthy, so it can back a container HEALTHCHECK. The base URL
defaults to HEALTH_URL.`,
	Args: cobra.NoArgs,
	RunE: runHealthcheck,
}

func init() {
	healthcheckCmd.Flags().StringVar(&healthcheckFlags.url, "url", "", "Base URL of the server (default $HEALTH_URL)")
	healthcheckCmd.Flags().DurationVar(&healthcheckFlags.timeout, "timeout", 5*time.Second, "Request timeout")
	rootCmd.AddCommand(healthcheckCmd)
}

func runHealthcheck(cmd *cobra.Command, args []string) error {
	baseURL := healthcheckFlags.url
	if baseURL == "" {
		cfg, err := config.Parse(nil)
		if err != nil {
			return err
		}
		baseURL = cfg.HealthURL
	}

	client := healthcheck.NewClient(baseURL, healthcheckFlags.timeout, logger.Discard())
	resp, err := client.Check(cmd.Context())
	if resp != nil {
		printHealth(cmd, baseURL, resp)
	}
	if errors.Is(err, healthcheck.ErrUnhealthy) {
		return err
	}
	if err != nil {
		return fmt.Errorf("%s is unreachable: %w", baseURL, err)
	}
	return nil
}

func printHealth(cmd *cobra.Command, baseURL string, resp *healthcheck.Response) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s %s: %s\n", statusIcon(resp.Status), baseURL, resp.Status)
	if resp.Version != "" {
		fmt.Fprintf(out, "  Version: %s\n", resp.Version)
	}
	if resp.Uptime != "" {
		fmt.Fprintf(out, "  Uptime:  %s\n", resp.Uptime)
	}

	names := make([]string, 0, len(resp.Checks))
	for name := range resp.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		check := resp.Checks[name]
		line := fmt.Sprintf("  %s %s: %s", statusIcon(check.Status), name, check.Status)
		if check.Message != "" {
			line += " (" + check.Message + ")"
		}
		fmt.Fprintln(out, line)
	}
}

func statusIcon(status string) string {
	switch status {
	case healthcheck.StatusHealthy:
		return "✓"
	case healthcheck.StatusDisabled:
		return "-"
	default:
		return "✗"
	}
}
