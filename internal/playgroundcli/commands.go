// Package playgroundcli provides the cobra commands that run and inspect the
// local Marketplace API playground. They back both the standalone playground
// binary and the "marketplace playground" command group.
package playgroundcli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/authorizedbuyers/marketplace-samples/internal/playground"
)

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// resourceKinds is the order in which status prints resource counts.
var resourceKinds = []string{
	"clients", "client_users", "proposals", "deals",
	"finalized_deals", "auction_packages", "publisher_profiles",
}

// NewCommand returns a command named use with the start, status and config
// subcommands.
func NewCommand(use string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: "Marketplace API Playground - local Authorized Buyers Marketplace API simulator",
		Long: `A standalone local HTTP server that simulates the Authorized Buyers
Marketplace API (v1) for running the samples without Google credentials.

The playground provides:
  - Clients, client users, proposals, deals, finalized deals,
    auction packages and publisher profiles
  - Stateful operations on seeded sample data
  - Optional file-based state persistence
  - Rate limiting and authentication simulation`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewStartCommand())
	cmd.AddCommand(NewStatusCommand())
	cmd.AddCommand(NewConfigCommand())
	return cmd
}

// NewStartCommand returns the command that runs the playground server until
// it receives a shutdown signal.
func NewStartCommand() *cobra.Command {
	var (
		port  int
		host  string
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the playground API server",
		Long: `Start a local HTTP server that simulates the Marketplace API.
The server runs until interrupted (Ctrl+C).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			playground.SetDebug(debug)
			server, err := playground.NewServer(port, host)
			if err != nil {
				return err
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, shutdownSignals...)
			defer signal.Stop(sigChan)

			errChan := make(chan error, 1)
			go func() {
				errChan <- server.Start()
			}()
			color.Green("Playground listening on %s", server.GetURL())
			fmt.Fprintf(cmd.OutOrStdout(), "Run the samples with --base-url %s --token <any>\n", server.GetURL())

			select {
			case <-sigChan:
				color.Yellow("\nShutting down...")
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Stop(ctx); err != nil {
					return fmt.Errorf("failed to shut down server: %w", err)
				}
				color.Green("Playground server stopped")
				return nil
			case err := <-errChan:
				return err
			}
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to run the playground server on")
	cmd.Flags().StringVar(&host, "host", "localhost", "Host to bind the playground server to")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log every request")
	return cmd
}

// NewStatusCommand returns the command that probes a running playground.
func NewStatusCommand() *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check playground server status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStatus(cmd.OutOrStdout(), &http.Client{Timeout: 5 * time.Second}, url)
		},
	}
	cmd.Flags().StringVar(&url, "url", "http://localhost:8080", "Playground server URL")
	return cmd
}

func printStatus(w io.Writer, client *http.Client, url string) error {
	url = strings.TrimSuffix(url, "/")
	resp, err := client.Get(url + "/health")
	if err != nil {
		return fmt.Errorf("no playground server found at %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("playground health check returned %s", resp.Status)
	}

	var health struct {
		Status        string         `json:"status"`
		UptimeSeconds int64          `json:"uptime_seconds"`
		Resources     map[string]int `json:"resources"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return fmt.Errorf("unexpected health response: %w", err)
	}
	fmt.Fprintln(w, color.GreenString("Playground server is running at %s (up %ds)", url, health.UptimeSeconds))
	for _, kind := range resourceKinds {
		fmt.Fprintf(w, "  %-20s %d\n", kind, health.Resources[kind])
	}
	return nil
}

// NewConfigCommand returns the command that prints the effective
// playground configuration.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective playground configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := playground.LoadPlaygroundConfig()
			if err != nil {
				return err
			}
			path, _ := playground.ConfigPath()
			fmt.Fprintln(cmd.OutOrStdout(), color.CyanString("# %s", path))
			return writeJSON(cmd.OutOrStdout(), config)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
