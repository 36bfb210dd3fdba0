package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/oereb-service/internal/app"
	"github.com/oereb-service/internal/config"
	"github.com/oereb-service/internal/pkg/logger"
	"github.com/oereb-service/internal/usecase/dto"
)

// rootOptions - глобальные флаги
type rootOptions struct {
	envFile    string
	deployment string
	logLevel   string
	timeout    time.Duration
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "oerebctl",
		Short:         "Operator CLI of the OEREB extract service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.envFile, "env", ".env", "settings file (environment variables override it)")
	pf.StringVar(&opts.deployment, "deployment", "", "deployment YAML (default: DEPLOYMENT_FILE)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.DurationVar(&opts.timeout, "timeout", time.Minute, "operation timeout")

	cmd.AddCommand(
		newTopicsCommand(opts),
		newExtractCommand(opts),
		newEGRIDCommand(opts),
	)
	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFile(o.envFile)
	if err != nil {
		return nil, err
	}
	if o.deployment != "" {
		cfg.Deployment = o.deployment
	}
	return cfg, nil
}

// withApp собирает сервис, выполняет fn и закрывает подключения
func (o *rootOptions) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	log, err := logger.New(o.logLevel, logger.WithStderr(), logger.WithService("oerebctl"))
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	a, err := app.New(ctx, cfg, log, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func newTopicsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List configured topics with thresholds and source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			deployment, err := config.LoadDeployment(cfg.Deployment)
			if err != nil {
				return err
			}
			return printTopics(cmd.OutOrStdout(), deployment)
		},
	}
}

func printTopics(out io.Writer, deployment *config.Deployment) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tFEDERAL\tSOURCE\tGEOMETRY\tMIN LENGTH\tMIN AREA")
	for _, t := range deployment.Topics {
		fmt.Fprintf(w, "%s\t%t\t%s\t%s\t%g %s\t%g %s\n",
			t.Code, t.Federal, t.Source, t.GeometryType,
			t.Thresholds.Length.Limit, t.Thresholds.Length.Unit,
			t.Thresholds.Area.Limit, t.Thresholds.Area.Unit)
	}
	return w.Flush()
}

func newExtractCommand(opts *rootOptions) *cobra.Command {
	var (
		lang     string
		topics   string
		geometry bool
	)

	cmd := &cobra.Command{
		Use:   "extract EGRID",
		Short: "Build the extract of a real estate and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				extract, params, err := a.Extract.GetExtract(ctx, dto.ExtractRequest{
					EGRID:    args[0],
					Language: lang,
					Topics:   topics,
					Geometry: geometry,
				})
				if err != nil {
					return err
				}
				resp := dto.ConvertExtract(extract, params.Language, a.Deployment.DefaultLanguage, params.WithGeometry)
				return printJSON(cmd.OutOrStdout(), resp)
			})
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "extract language (default: deployment default)")
	cmd.Flags().StringVar(&topics, "topics", "ALL", "ALL, ALL_FEDERAL or comma separated topic codes")
	cmd.Flags().BoolVar(&geometry, "geometry", false, "include geometries")
	return cmd
}

func newEGRIDCommand(opts *rootOptions) *cobra.Command {
	var req dto.GetEGRIDRequest

	cmd := &cobra.Command{
		Use:   "egrid",
		Short: "Resolve real estates by point or by district and number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.EN == "" && (req.IdentDN == "" || req.Number == "") {
				return fmt.Errorf("either --en or both --identdn and --number are required")
			}
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				resp, err := a.RealEstate.GetEGRID(ctx, req)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			})
		},
	}

	cmd.Flags().StringVar(&req.EN, "en", "", "point x,y in the cadastre reference system")
	cmd.Flags().StringVar(&req.IdentDN, "identdn", "", "land register district identifier")
	cmd.Flags().StringVar(&req.Number, "number", "", "real estate number")
	return cmd
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

