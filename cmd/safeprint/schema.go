package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/safeprint/ansistyle"
	"go.jacobcolvin.com/safeprint/logfile"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the safeprint YAML config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(configSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling schema: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}
}

func configSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Schema:      "http://json-schema.org/draft-07/schema#",
		Title:       "safeprint configuration",
		Description: "Default print settings loaded via safeprint --config.",
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"child_process_label": {
				Type:        "string",
				Description: "Child process tag rendered as [Child <label> Process].",
			},
			"label_color": colorSchema("Color of the child process tag."),
			"prefix": {
				Type:        "string",
				Description: "Custom bracketed prefix label.",
			},
			"prefix_color": colorSchema("Color of the custom prefix label."),
			"text_color":   colorSchema("Foreground color of the main text."),
			"highlight": {
				Type:        "boolean",
				Description: "Highlight the text (dark on bright yellow).",
			},
			"secondary_highlight": {
				Type:        "boolean",
				Description: "Secondary highlight (bright yellow on black).",
			},
			"file": {
				Type:        "string",
				Description: "Log file path; newest line first. Empty disables logging.",
			},
			"file_lines_limit": {
				Type:        "integer",
				Description: fmt.Sprintf("Maximum lines kept in the log file (default %d).", logfile.DefaultMaxLines),
			},
			"show_time": {
				Type:        "boolean",
				Description: "Prefix output with the current time.",
			},
			"error": {
				Type:        "boolean",
				Description: "Render the text in the error color (red).",
			},
		},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

func colorSchema(desc string) *jsonschema.Schema {
	names := ansistyle.Names()

	enum := make([]any, 0, len(names))
	for _, name := range names {
		enum = append(enum, name)
	}

	return &jsonschema.Schema{
		Type:        "string",
		Description: desc,
		Enum:        enum,
	}
}
