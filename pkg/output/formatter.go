package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/BRAVO68WEB/greeter/internal/server"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

func PrintSuccess(msg string) {
	color.Green("%s", msg)
}

func PrintError(msg string) error {
	color.Red("❌ %s", msg)
	return errors.New(msg)
}

func PrintInfo(msg string) {
	color.Cyan("%s", msg)
}

// PrintRoutes writes the route table to w as a table (default) or JSON.
func PrintRoutes(w io.Writer, routes []server.Route, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(routes, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "", "table":
	default:
		return fmt.Errorf("unknown format %q (want table or json)", format)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Method", "Path", "Description"})
	for _, r := range routes {
		table.Append([]string{r.Method, r.Path, r.Description})
	}
	table.Render()
	return nil
}
