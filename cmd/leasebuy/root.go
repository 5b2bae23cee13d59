package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/rpgo/carlease-calculator/internal/calculation"
	"github.com/rpgo/carlease-calculator/internal/config"
	"github.com/rpgo/carlease-calculator/internal/domain"
	"github.com/rpgo/carlease-calculator/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type rootOptions struct {
	envFiles []string
	logLevel string

	settings config.Settings
	logger   calculation.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "leasebuy",
		Short: "Car lease vs buy calculator",
		Long: `leasebuy compares leasing a car through a salary structure (pre-tax
rental, fuel allowance and perquisite) with buying it on a loan, over the
longer of the lease and loan tenures, using the FY 2025-26 new regime slabs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(opts.envFiles...)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				settings.LogLevel = opts.logLevel
			}
			logger, err := newLogger(cmd.ErrOrStderr(), settings.LogLevel)
			if err != nil {
				return err
			}
			opts.settings = settings
			opts.logger = logger
			return nil
		},
	}

	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load (default .env)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (LEASEBUY_LOG_LEVEL)")

	cmd.AddCommand(
		newCompareCmd(opts),
		newReportCmd(opts),
		newExampleCmd(),
		newSlabsCmd(),
		newServeCmd(opts),
	)
	return cmd
}

// loadScenario reads the scenario file (defaults when empty) and overlays a share-link query.
func loadScenario(path, share string) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	if path != "" {
		loaded, err := parser.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if share != "" {
		values, err := url.ParseQuery(share)
		if err != nil {
			return nil, fmt.Errorf("invalid share query: %w", err)
		}
		cfg.Input = config.ParseQuery(values, cfg.Input)
		if err := parser.ValidateInput(&cfg.Input); err != nil {
			return nil, fmt.Errorf("share query: %w", err)
		}
	}
	return cfg, nil
}

func buildReport(cfg *domain.Configuration, logger calculation.Logger) *output.Report {
	engine := calculation.NewEngineWithConfig(cfg)
	engine.SetLogger(logger)
	result := engine.RunConfiguration(cfg)
	return output.NewReport(cfg.Input, cfg.SlabTable(), result)
}

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var configPath, format, share string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Print the lease vs buy comparison",
		Example: `  leasebuy compare
  leasebuy compare --config scenario.yaml --format csv
  leasebuy compare --share "leaseRental=45000&loanRate=0.09"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := output.LookupFormatter(format)
			if err != nil {
				return err
			}
			cfg, err := loadScenario(configPath, share)
			if err != nil {
				return err
			}
			data, err := formatter.Format(buildReport(cfg, opts.logger))
			if err != nil {
				return fmt.Errorf("format %s: %w", formatter.Name(), err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "scenario YAML file (defaults when omitted)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format")
	cmd.Flags().StringVar(&share, "share", "", "share-link query string overriding the scenario inputs")
	return cmd
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	var configPath, format, share, out, dir string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the comparison to a report file",
		Example: `  leasebuy report --format pdf --out lease_vs_buy.pdf
  leasebuy report --format html --dir reports/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := output.LookupFormatter(format)
			if err != nil {
				return err
			}
			cfg, err := loadScenario(configPath, share)
			if err != nil {
				return err
			}
			report := buildReport(cfg, opts.logger)

			path := out
			if path == "" {
				path, err = output.WriteFormatted(formatter, report, dir)
				if err != nil {
					return fmt.Errorf("write report: %w", err)
				}
			} else {
				data, err := formatter.Format(report)
				if err != nil {
					return fmt.Errorf("format %s: %w", formatter.Name(), err)
				}
				if err := os.WriteFile(path, data, 0644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "scenario YAML file (defaults when omitted)")
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "report format")
	cmd.Flags().StringVar(&share, "share", "", "share-link query string overriding the scenario inputs")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (timestamped file in --dir when omitted)")
	cmd.Flags().StringVar(&dir, "dir", ".", "directory for timestamped reports")
	return cmd
}

func newExampleCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example scenario file with the default inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg := parser.CreateExampleConfiguration()
			if out == "" {
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("encode example: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := parser.SaveToFile(cfg, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example scenario written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout when omitted)")
	return cmd
}

func newSlabsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slabs",
		Short: "Print the default tax slab table as YAML",
		Long: `Print the FY 2025-26 new regime slab table. Each row is the width of
the slab and its rate; the final row is unbounded. Edit the output and
paste it under "slabs:" in a scenario file to compare other regimes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(domain.DefaultSlabTable())
			if err != nil {
				return fmt.Errorf("encode slabs: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
