package greeter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/BRAVO68WEB/greeter/internal/config"
	"github.com/BRAVO68WEB/greeter/internal/server"
	"github.com/BRAVO68WEB/greeter/pkg/output"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that a running server answers with the greeting",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		return handleHealth(cmd.Context(), url, timeout)
	},
}

func init() {
	healthCmd.Flags().String("url", "", "Server base URL (default from GREETER_SERVER or ~/.greeter/client.json)")
	healthCmd.Flags().Duration("timeout", 5*time.Second, "Request timeout")
}

func handleHealth(ctx context.Context, url string, timeout time.Duration) error {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		return output.PrintError("Failed to load config: " + err.Error())
	}
	if url != "" {
		cfg.ServerURL = url
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := checkGreeting(ctx, http.DefaultClient, cfg.GreetingURL()); err != nil {
		return output.PrintError("Server unhealthy: " + err.Error())
	}
	output.PrintSuccess("Server at " + cfg.ServerURL + " answers with the greeting")
	return nil
}

// checkGreeting GETs url and verifies it returns 200 with the greeting body.
func checkGreeting(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if !bytes.Equal(body, server.GreetingBody()) {
		return fmt.Errorf("unexpected body %q", body)
	}
	return nil
}
