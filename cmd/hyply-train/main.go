// Package main provides the entry point for hyply-train, the offline
// trainer that rebuilds pkg/langs' token log-probability table from a
// samples/<language>/* directory tree.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/monkslc/hyperpolyglot/pkg/config"
	"github.com/monkslc/hyperpolyglot/pkg/observability"
	"github.com/monkslc/hyperpolyglot/pkg/trainer"
	"github.com/monkslc/hyperpolyglot/pkg/version"
)

func main() {
	var samplesDir, outputFile, configPath string
	var logger *slog.Logger

	cmd := &cobra.Command{
		Use:   "hyply-train",
		Short: "Retrain hyply's classifier token tables from a samples directory",
		Long: `hyply-train walks a samples/<language>/* directory, tokenizes every
sample, and emits the per-language token log-probability table the
classifier scores candidates against.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger = observability.NewLogger(observability.ParseLevel(cfg.Logging.Level), cfg.Logging.Format, observability.ModeTrain)

			if samplesDir == "" {
				samplesDir = cfg.Training.SamplesDir
			}
			if outputFile == "" {
				outputFile = cfg.Training.OutputFile
			}
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			return run(logger, samplesDir, outputFile)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a hyply config file")
	cmd.Flags().StringVar(&samplesDir, "samples", "", "Directory of samples/<language>/* training data (default: config training.samples_dir)")
	cmd.Flags().StringVar(&outputFile, "output", "", "Go source file to write (default: config training.output_file)")
	cmd.AddCommand(versionCmd())

	if err := cmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("run failed", "error", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(logger *slog.Logger, samplesDir, outputFile string) error {
	logger.Info("training started", "samples_dir", samplesDir, "output_file", outputFile)

	model, err := trainer.Train(samplesDir)
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}

	if err := model.WriteGoSource(outputFile, "langs"); err != nil {
		return fmt.Errorf("write %s: %w", outputFile, err)
	}

	printSummary(model)
	logger.Info("training finished", "output_file", outputFile)
	fmt.Printf("wrote %s\n", outputFile)
	return nil
}

func printSummary(model *trainer.Model) {
	logProbs := model.LogProbs()

	languages := make([]string, 0, len(logProbs))
	for language := range logProbs {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Language", "Distinct Tokens", "Total Tokens"})

	for _, language := range languages {
		tbl.AppendRow(table.Row{
			language,
			humanize.Comma(int64(len(logProbs[language]))),
			humanize.Comma(int64(model.TotalTokens(language))),
		})
	}

	tbl.Render()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(os.Stdout, "hyply-train "+version.String())
		},
	}
}
