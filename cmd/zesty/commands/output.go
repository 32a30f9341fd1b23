package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/zesty-client/internal/constants"
)

// outputFormat returns the configured output format.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString(keyOutput))

	switch format {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrUnsupportedOutputFormat, format)
	}
}

// render writes value as JSON or YAML, or hands the writer to table.
func render(cmd *cobra.Command, value interface{}, table func(out io.Writer) error) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		err = encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(constants.JSONIndentSize)

		err = encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}

		return encoder.Close()
	default:
		return table(out)
	}
}

// newTable creates a table whose headers are title-cased.
func newTable(out io.Writer, headers ...string) *tablewriter.Table {
	title := cases.Title(language.English)

	cells := make([]any, len(headers))
	for i, header := range headers {
		cells[i] = title.String(header)
	}

	table := tablewriter.NewWriter(out)
	table.Header(cells...)

	return table
}

func renderTable(table *tablewriter.Table) error {
	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderProperties renders name/value pairs as a two-column table.
func renderProperties(out io.Writer, rows [][]string) error {
	table := newTable(out, "property", "value")

	for _, row := range rows {
		_ = table.Append(row)
	}

	return renderTable(table)
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func formatBool(value bool) string {
	return strconv.FormatBool(value)
}
