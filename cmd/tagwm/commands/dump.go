package commands

import (
	"encoding/json"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/wmconfig"
)

var dumpFormat string

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "yaml",
		"output format: yaml, json, toml")
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the compiled configuration",
	Long: `Compile the configuration document and print the resulting runtime
state: every screen with its colors, font, layouts and tags, the window
placement rules, the key and pointer bindings, and the Num Lock mask.

Colors and fonts are resolved without a display connection, so pixel
values assume a 24-bit TrueColor visual.`,
	Example: `  # Print as YAML
  tagwm dump

  # Print as JSON and query it
  tagwm dump --format json | jq '.screens[0].tags'`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func runDump(cmd *cobra.Command, _ []string) error {
	rt, err := wmconfig.Compile(cmd.Context(), compileOptions(cmd.Context(), false))
	if err != nil {
		return err
	}
	return writeRuntime(cmd.OutOrStdout(), rt, dumpFormat)
}

func writeRuntime(w io.Writer, rt *wmconfig.Runtime, format string) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rt); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(rt), "encoding JSON")
	case "toml":
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return errors.Wrap(enc.Encode(rt), "encoding TOML")
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", format), "Use --format yaml, json or toml")
	}
}
