// Package main provides the CLI entry point for simapro-go.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/simapro-go/internal/config"
	"github.com/ukaji3/simapro-go/internal/logging"
	"github.com/ukaji3/simapro-go/pkg/simapro"
	"github.com/ukaji3/simapro-go/pkg/simapro/models"
	"github.com/ukaji3/simapro-go/pkg/simapro/output"
)

var (
	logLevel    string
	logFormat   string
	sheet       string
	outputPath  string
	pretty      bool
	extensions  bool
	project     string
	toolVersion string
	override    string
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "simapro",
		Short: "Read SimaPro process exports and write SimaPro CSV import files",
		Long: `simapro-go reads SimaPro LCI exports (xlsx or CSV), prints them as JSON
and converts them into the SimaPro CSV import format.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(os.Stderr, logLevel, logFormat)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.Logging.Level, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", cfg.Logging.Format, "Log format: text, json")
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", cfg.Import.Sheet, "Workbook sheet to read (default: first sheet)")

	inspectCmd := &cobra.Command{
		Use:   "inspect [input]",
		Short: "Import a SimaPro export and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	convertCmd := &cobra.Command{
		Use:   "convert [input...]",
		Short: "Convert SimaPro exports into one SimaPro CSV import file",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output CSV file path (required)")
	convertCmd.Flags().BoolVar(&extensions, "extensions", cfg.Export.Extensions, "Embed extension fields into comments")
	convertCmd.Flags().StringVar(&project, "project", cfg.Export.Project, "Project name written to the preamble")
	convertCmd.Flags().StringVar(&toolVersion, "tool-version", cfg.Export.ToolVersion, "Tool marker written to the preamble")
	convertCmd.Flags().StringVar(&override, "override", "", "Process whose database and project parameters win conflicts")
	_ = convertCmd.MarkFlagRequired("output")

	conflictsCmd := &cobra.Command{
		Use:   "conflicts [input...]",
		Short: "List conflicting database and project parameter definitions across exports",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runConflicts,
	}

	rootCmd.AddCommand(inspectCmd, convertCmd, conflictsCmd)
	return rootCmd
}

func load(path string) (*models.Dataset, error) {
	slog.Debug("importing", "path", path, "sheet", sheet)
	ds, err := simapro.Import(path, simapro.ImportOptions{Sheet: sheet})
	if err != nil {
		return nil, fmt.Errorf("import failed: %w", err)
	}
	slog.Info("imported",
		"path", path,
		"processes", len(ds.Processes),
		"common_parameters", len(ds.CommonParameters),
		"converted_to_constants", ds.ConvertedToConstants)
	return ds, nil
}

// loadAll imports every path and concatenates their processes.
func loadAll(paths []string) ([]*models.Process, error) {
	var processes []*models.Process
	for _, path := range paths {
		ds, err := load(path)
		if err != nil {
			return nil, err
		}
		processes = append(processes, ds.Processes...)
	}
	return processes, nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	ds, err := load(args[0])
	if err != nil {
		return err
	}

	jsonData, err := output.ToJSON(ds, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	processes, err := loadAll(args)
	if err != nil {
		return err
	}

	opts := simapro.DefaultExportOptions()
	opts.IncludeExtensions = extensions
	opts.Project = project
	if toolVersion != "" {
		opts.ToolVersion = toolVersion
	}
	if override != "" {
		overrides, err := overridesFrom(processes, override)
		if err != nil {
			return err
		}
		opts.Overrides = overrides
	}

	if err := simapro.Export(outputPath, processes, opts); err != nil {
		var conflict *simapro.ParameterConflictError
		if errors.As(err, &conflict) {
			printConflicts(cmd, conflict)
		}
		return fmt.Errorf("export failed: %w", err)
	}
	slog.Info("exported", "path", outputPath, "processes", len(processes))
	return nil
}

func runConflicts(cmd *cobra.Command, args []string) error {
	processes, err := loadAll(args)
	if err != nil {
		return err
	}

	_, err = simapro.Reconcile(processes, nil)
	var conflict *simapro.ParameterConflictError
	switch {
	case errors.As(err, &conflict):
		printConflicts(cmd, conflict)
	case err != nil:
		return err
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "no conflicts")
	}
	return nil
}

// overridesFrom returns the database and project parameters of the named
// process.
func overridesFrom(processes []*models.Process, name string) ([]models.Parameter, error) {
	for _, p := range processes {
		if p.Name != name {
			continue
		}
		var params []models.Parameter
		for _, prm := range p.Parameters {
			if prm.Base().Level != models.LevelProcess {
				params = append(params, prm)
			}
		}
		return params, nil
	}
	return nil, fmt.Errorf("override process %q not found", name)
}

func printConflicts(cmd *cobra.Command, conflict *simapro.ParameterConflictError) {
	w := cmd.OutOrStdout()
	for _, group := range conflict.Conflicts {
		fmt.Fprintf(w, "%s (%s)\n", group[0].Base().Name, group[0].Base().Level)
		for _, prm := range group {
			fmt.Fprintf(w, "  - %s\n", describe(prm))
		}
	}
}

func describe(prm models.Parameter) string {
	switch p := prm.(type) {
	case *models.InputParameter:
		s := "input unset"
		if p.Value != nil {
			s = fmt.Sprintf("input %g", *p.Value)
		}
		if p.Uncertainty != nil {
			s += fmt.Sprintf(" %s", p.Uncertainty.Distribution)
		}
		return s
	case *models.CalculatedParameter:
		return fmt.Sprintf("calculated %s", p.Expression)
	}
	return "unknown"
}
