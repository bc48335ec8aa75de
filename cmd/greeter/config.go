package greeter

import (
	"fmt"

	"github.com/BRAVO68WEB/greeter/internal/config"
	"github.com/BRAVO68WEB/greeter/pkg/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show greeter configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		setServer, _ := cmd.Flags().GetString("set-server")
		return handleConfig(cmd, setServer)
	},
}

func init() {
	configCmd.Flags().String("set-server", "", "Save the server URL used by 'greeter health' to client.json")
}

func handleConfig(cmd *cobra.Command, setServer string) error {
	if setServer != "" {
		if err := config.SaveClientConfig(&config.ClientConfig{ServerURL: setServer}); err != nil {
			return output.PrintError("Failed to save config: " + err.Error())
		}
		output.PrintSuccess("Saved server URL " + setServer)
	}

	cfg, err := config.LoadClientConfig()
	if err != nil {
		return output.PrintError("Failed to load config: " + err.Error())
	}
	srv := serverConfig(cmd)

	output.PrintInfo("greeter configuration")
	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Config dir:    %s\n", config.GetConfigDir())
	fmt.Fprintf(w, "  Listen port:   %d\n", srv.Port)
	fmt.Fprintf(w, "  Access log:    %v\n", srv.AccessLog)
	fmt.Fprintf(w, "  Health target: %s\n", cfg.GreetingURL())
	return nil
}
