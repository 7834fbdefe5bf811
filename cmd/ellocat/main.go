package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ello/elloapi"
	"github.com/ello/elloapi/config"
	"github.com/ello/elloapi/coverage"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configFile string
	discover   string
	token      string
	locale     string
	baseUrl    string
	oasFile    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:          "ellocat",
		Short:        "ellocat - Ello API endpoint catalog",
		Long:         "Lists the Ello API endpoint catalog, shows the requests it builds and the sample data it stubs.",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&opts.discover, "discover", "Featured", "Discover type for the Discover endpoint (Featured, Trending, Recent)")

	routesCmd := &cobra.Command{
		Use:   "routes",
		Short: "List every catalog route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutes(cmd)
		},
	}

	sampleCmd := &cobra.Command{
		Use:   "sample [tag]",
		Short: "Print the stub sample data for an endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := catalogEndpoint(args[0], opts.discover)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(elloapi.SampleData(e))
			return err
		},
	}

	requestCmd := &cobra.Command{
		Use:   "request [tag]",
		Short: "Print the wire request built for the catalog instance of an endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, opts, args[0])
		},
	}
	requestCmd.Flags().StringVar(&opts.token, "token", "", "Bearer token")
	requestCmd.Flags().StringVar(&opts.locale, "locale", "en", "Accept-Language")
	requestCmd.Flags().StringVar(&opts.baseUrl, "base-url", "https://ello.co", "API base URL")

	fetchCmd := &cobra.Command{
		Use:   "fetch [tag]",
		Short: "Dispatch the catalog instance of an endpoint (live or stub, per config)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, opts, args[0])
		},
	}
	fetchCmd.Flags().StringVar(&opts.token, "token", "", "Bearer token")

	coverageCmd := &cobra.Command{
		Use:   "coverage",
		Short: "Report how the catalog covers an OpenAPI document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoverage(cmd, opts)
		},
	}
	coverageCmd.Flags().StringVar(&opts.oasFile, "oas", "", "OpenAPI document (JSON or YAML)")
	_ = coverageCmd.MarkFlagRequired("oas")

	rootCmd.AddCommand(routesCmd, sampleCmd, requestCmd, fetchCmd, coverageCmd)
	return rootCmd
}

func runRoutes(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tMETHOD\tPATH\tKIND\tAUTH")
	for _, r := range elloapi.Routes() {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", r.Name, r.Method, r.Template, r.Kind, r.RequiresAuth)
	}
	return w.Flush()
}

func runRequest(cmd *cobra.Command, opts *options, tagName string) error {
	e, err := catalogEndpoint(tagName, opts.discover)
	if err != nil {
		return err
	}
	req := elloapi.BuildRequest(e, elloapi.StaticToken(opts.token), elloapi.SystemClock, opts.locale)
	url, err := req.URL(opts.baseUrl)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s %s\n", req.Method, url)
	for _, h := range req.Headers {
		_, _ = fmt.Fprintf(out, "%s: %s\n", h.Name, h.Value)
	}
	_, _ = fmt.Fprintf(out, "# kind: %s\n", req.Kind)
	body, err := req.Body()
	if err == nil && body != nil {
		_, _ = fmt.Fprintf(out, "\n%s\n", body)
	}
	return err
}

func runFetch(cmd *cobra.Command, opts *options, tagName string) error {
	e, err := catalogEndpoint(tagName, opts.discover)
	if err != nil {
		return err
	}
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}
	provider, err := elloapi.NewProvider(
		elloapi.WithConfig(cfg),
		elloapi.WithTokens(elloapi.StaticToken(opts.token)),
	)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	res, err := provider.Do(ctx, e)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "# %s %d (%s, %s)\n", elloapi.Describe(e), res.Status, res.Kind, provider.Mode())
	_, err = out.Write(res.Body)
	return err
}

func runCoverage(cmd *cobra.Command, opts *options) error {
	f, err := os.Open(opts.oasFile)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	cov := coverage.NewCoverage()
	if err = cov.LoadSpec(f); err != nil {
		return err
	}
	for _, r := range elloapi.Routes() {
		cov.ReportRoute(r)
	}
	spec, err := cov.SpecCoverage()
	if err != nil {
		return err
	}
	return spec.Write(cmd.OutOrStdout())
}

// catalogEndpoint finds the catalog instance for a tag name (case-insensitive)
func catalogEndpoint(tagName string, discover string) (elloapi.Endpoint, error) {
	var tag elloapi.Tag
	for _, t := range elloapi.Tags() {
		if strings.EqualFold(t.String(), tagName) {
			tag = t
			break
		}
	}
	if tag == 0 {
		return nil, fmt.Errorf("unknown endpoint %q", tagName)
	}
	for _, e := range elloapi.Catalog() {
		if e.Tag() != tag {
			continue
		}
		if d, ok := e.(elloapi.Discover); ok && !strings.EqualFold(d.Type.String(), discover) {
			continue
		}
		return e, nil
	}
	return nil, fmt.Errorf("no catalog instance for %s (discover type %q)", tag, discover)
}
