package greeter

import (
	"log"
	"os"

	"github.com/BRAVO68WEB/greeter/internal/config"
	"github.com/BRAVO68WEB/greeter/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the greeting server",
	Long:  `Start the greeting server on $PORT (default 3000), listening on all interfaces.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	addServeFlags(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("port", 0, "Port to listen on (overrides PORT)")
	cmd.Flags().Bool("access-log", false, "Log every request and set X-Request-Id (or GREETER_ACCESS_LOG=1)")
}

// serverConfig resolves the port from --port, then PORT, then the default.
func serverConfig(cmd *cobra.Command) server.Config {
	port, err := config.ParsePort(os.Getenv(config.EnvPort))
	if err != nil {
		log.Printf("[greeter] ignoring %s: %v; using %d", config.EnvPort, err, port)
	}
	if p, _ := cmd.Flags().GetInt("port"); p != 0 {
		port = p
	}
	accessLog, _ := cmd.Flags().GetBool("access-log")

	return server.Config{
		Port:      port,
		AccessLog: accessLog || config.AccessLogEnabled(),
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := server.New(serverConfig(cmd))
	if err != nil {
		return err
	}
	return srv.Run()
}
