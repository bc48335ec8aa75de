package greeter

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X github.com/BRAVO68WEB/greeter/cmd/greeter.version=..."
var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "greeter",
	Short: "HTTP server that answers GET / with a JSON greeting",
	Long: `greeter listens on $PORT (default 3000) and answers GET / with {"message":"Docker is easy 🐳"}.
Running it without a subcommand is the same as "greeter serve".`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addServeFlags(rootCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(healthCmd)
}
