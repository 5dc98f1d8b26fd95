// Package routes implements 'hecho routes'
package routes

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hecho/internal/cli/handler"
	"github.com/thenoetrevino/hecho/internal/logging"
	"github.com/thenoetrevino/hecho/internal/web"
)

// wordWrap is the width the route table is rendered at
const wordWrap = 80

// RoutesCmd returns the routes command
func RoutesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Show the HTTP route table",
		Long:  "List the HTTP routes in match order. The first pattern that equals the request path wins.",
		RunE:  handler.SimpleCommand(handler.NoArgs(handler.HandlerFunc(runRoutes))),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

type routeEntry struct {
	Order   int    `json:"order"`
	Pattern string `json:"pattern"`
	Name    string `json:"name"`
	URL     string `json:"url"`
}

type routesResult []routeEntry

func (r routesResult) PrintHuman(w io.Writer) error {
	var md strings.Builder
	md.WriteString("# Routes\n\n")
	md.WriteString("| # | Pattern | Name | URL |\n")
	md.WriteString("|---|---------|------|-----|\n")
	for _, e := range r {
		fmt.Fprintf(&md, "| %d | %s | %s | %s |\n", e.Order, e.Pattern, e.Name, e.URL)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return err
	}
	out, err := renderer.Render(md.String())
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func runRoutes(ctx context.Context, args *handler.Arguments) (any, error) {
	// The route table is static; no database is needed to list it
	site, err := web.NewSite(nil, logging.Logger)
	if err != nil {
		return nil, err
	}

	routes := site.Router.Routes()
	result := make(routesResult, 0, len(routes))
	for i, route := range routes {
		url, err := site.Router.Reverse(route.Name)
		if err != nil {
			return nil, err
		}
		result = append(result, routeEntry{
			Order:   i + 1,
			Pattern: route.Pattern,
			Name:    route.Name,
			URL:     url,
		})
	}
	return result, nil
}
