package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/export"
	"github.com/theirongolddev/nestplan/internal/model"
)

var (
	flagExportOut    string
	flagExportFormat string
	flagExportCheck  string
)

var errExportStale = errors.New("export is out of date")

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the projection as CSV or JSON",
	Long: "Write the projection as CSV (the default) or a JSON report.\n\n" +
		"With --check, compare against an existing file instead of writing and\n" +
		"exit non-zero with a diff when it no longer matches the plan.",
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file, or - for stdout (default: export dir)")
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "", "csv or json (default: from --out extension, else csv)")
	exportCmd.Flags().StringVar(&flagExportCheck, "check", "", "Compare against FILE instead of writing")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, p, err := loadPlan(cmd)
	if err != nil {
		return err
	}

	format, err := exportFormat(flagExportFormat, exportTarget(flagExportOut, flagExportCheck))
	if err != nil {
		return err
	}

	data, err := renderExport(p, format, time.Now())
	if err != nil {
		return err
	}

	if flagExportCheck != "" {
		return checkExport(flagExportCheck, data, format)
	}

	if flagExportOut == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	path := flagExportOut
	if path == "" {
		path = defaultExportPath(cfg, format)
	}
	if err := writeExportFile(path, data); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %s\n", path)
	}
	return nil
}

// exportTarget is the path whose extension picks the format: the --check
// file when comparing, otherwise --out.
func exportTarget(out, check string) string {
	if check != "" {
		return check
	}
	return out
}

// exportFormat resolves the explicit --format, falling back to the file
// extension and then to csv.
func exportFormat(explicit, path string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(explicit))
	if f == "" {
		if strings.EqualFold(filepath.Ext(path), ".json") {
			return "json", nil
		}
		return "csv", nil
	}
	if f != "csv" && f != "json" {
		return "", fmt.Errorf("unknown export format %q (want csv or json)", explicit)
	}
	return f, nil
}

func renderExport(p model.Plan, format string, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if format == "json" {
		err = export.WriteJSON(&buf, p, now)
	} else {
		err = export.WriteCSV(&buf, p)
	}
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

func defaultExportPath(cfg config.Config, format string) string {
	name := export.DefaultFileName
	if format == "json" {
		name = strings.TrimSuffix(name, ".csv") + ".json"
	}
	return filepath.Join(cfg.ExportDir(), name)
}

func writeExportFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	//nolint:gosec // exports are meant to be shared
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// checkExport diffs data against the file at path. JSON reports carry a
// generation timestamp, so that line is ignored.
func checkExport(path string, data []byte, format string) error {
	//nolint:gosec // path is supplied by the local user
	prev, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	old, cur := string(prev), string(data)
	if format == "json" {
		old, cur = stripGeneratedAt(old), stripGeneratedAt(cur)
	}

	diff := export.Diff(old, cur)
	if diff == "" {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  %s is up to date\n", path)
		}
		return nil
	}

	fmt.Print(diff)
	return fmt.Errorf("%w: %s", errExportStale, path)
}

func stripGeneratedAt(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, l := range lines {
		if strings.Contains(l, `"generated_at"`) {
			continue
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}
