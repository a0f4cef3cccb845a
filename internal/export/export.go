// internal/export/export.go
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/offerscope/offerscope/internal/scenario"
)

// Format represents the export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Options configures the export behavior
type Options struct {
	Format    Format
	OutputDir string
}

// ResultExporter writes scenario results to disk for the presentation
// layer (spreadsheets, charts) to pick up.
type ResultExporter struct {
	logger *zap.Logger
}

// NewResultExporter creates a new result exporter
func NewResultExporter(logger *zap.Logger) *ResultExporter {
	return &ResultExporter{
		logger: logger,
	}
}

// Export writes the result in the requested format and returns the
// output path.
func (re *ResultExporter) Export(res scenario.Result, options Options) (string, error) {
	if len(res.Yearly) == 0 {
		return "", fmt.Errorf("result has no yearly records to export")
	}

	filename := re.generateFilename(res, options)
	outputPath := filepath.Join(options.OutputDir, filename)

	if err := os.MkdirAll(options.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	var err error
	switch options.Format {
	case FormatCSV:
		err = re.exportToCSV(res, outputPath)
	case FormatJSON:
		err = re.exportToJSON(res, outputPath)
	default:
		err = fmt.Errorf("unsupported format: %s", options.Format)
	}

	if err != nil {
		return "", err
	}

	re.logger.Info("Scenario result exported",
		zap.String("file", outputPath),
		zap.Int("years", len(res.Yearly)),
		zap.String("format", string(options.Format)))

	return outputPath, nil
}

// generateFilename creates a filename from the scenario label and a
// timestamp.
func (re *ResultExporter) generateFilename(res scenario.Result, options Options) string {
	timestamp := time.Now().Format("20060102_150405")

	label := slugify(res.Input.Name)
	if label == "" {
		label = string(res.Input.Mode)
	}

	return fmt.Sprintf("scenario_%s_%s.%s", label, timestamp, options.Format)
}

// exportToCSV writes the yearly projection table.
func (re *ResultExporter) exportToCSV(res scenario.Result, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(scenario.CSVHeaders()); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, row := range res.Yearly {
		if err := writer.Write(row.ToCSV()); err != nil {
			return fmt.Errorf("failed to write year %d: %w", row.Year, err)
		}
	}

	return nil
}

// exportToJSON writes the full result with export metadata.
func (re *ResultExporter) exportToJSON(res scenario.Result, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	exportData := struct {
		ExportTime time.Time       `json:"export_time"`
		Summary    Summary         `json:"summary"`
		Result     scenario.Result `json:"result"`
	}{
		ExportTime: time.Now(),
		Summary:    Summarize(res),
		Result:     res,
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(exportData); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// Summary is the headline block included with JSON exports.
type Summary struct {
	Name                 string   `json:"name,omitempty"`
	Mode                 string   `json:"mode"`
	HorizonYears         int      `json:"horizon_years"`
	TotalPayout          float64  `json:"total_payout"`
	TotalOpportunityCost float64  `json:"total_opportunity_cost"`
	NetOutcome           float64  `json:"net_outcome"`
	NetPresentValue      float64  `json:"net_present_value"`
	IRR                  *float64 `json:"irr"`
	TotalDilutionPct     float64  `json:"total_dilution_pct"`
	ClearWin             bool     `json:"clear_win"`
}

// Summarize extracts the headline metrics from a result.
func Summarize(res scenario.Result) Summary {
	return Summary{
		Name:                 res.Input.Name,
		Mode:                 string(res.Input.Mode),
		HorizonYears:         res.Input.HorizonYears,
		TotalPayout:          res.TotalPayout,
		TotalOpportunityCost: res.TotalOpportunityCost,
		NetOutcome:           res.NetOutcome,
		NetPresentValue:      res.NetPresentValue,
		IRR:                  res.IRR,
		TotalDilutionPct:     res.TotalDilutionPct,
		ClearWin:             res.ClearWin,
	}
}

// slugify lowercases the label and collapses anything outside [a-z0-9]
// into single underscores.
func slugify(s string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
