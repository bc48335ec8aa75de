package greeter

import (
	"github.com/BRAVO68WEB/greeter/internal/server"
	"github.com/BRAVO68WEB/greeter/pkg/output"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the routes the server registers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return output.PrintRoutes(cmd.OutOrStdout(), server.Routes(), format)
	},
}

func init() {
	routesCmd.Flags().String("format", "table", "Output format: table or json")
}
