package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/tagwm/internal/diagnostic"
	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/paths"
	"github.com/thoreinstein/tagwm/internal/wmconfig"
)

var checkJSON bool

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the configuration document",
	Long: `Compile the configuration document and report every problem found.

The check is strict: a document that does not match the schema fails
instead of falling back to the built-in default. Values that compile
with a substitute (unknown commands, layouts, keys, buttons or
modifiers) are reported as warnings.

Exit codes:
  0 - The document compiles (warnings may be present)
  1 - The document is malformed or a screen has no layouts or tags
  2 - A color or font cannot be resolved`,
	Example: `  # Check ~/.tagwmrc
  tagwm check

  # Check another document for two screens, as JSON
  tagwm check --config ./rc.yaml --screens 2 --json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	opts := compileOptions(cmd.Context(), true)

	format := diagnostic.FormatText
	if checkJSON {
		format = diagnostic.FormatJSON
	}
	reporter := diagnostic.NewReporter(cmd.OutOrStdout(), format)

	rt, err := wmconfig.Compile(cmd.Context(), opts)
	if err != nil {
		var fe *wmconfig.FatalError
		if !errors.As(err, &fe) {
			return err
		}
		path, perr := paths.ConfigPath(opts.Path)
		if perr != nil {
			path = opts.Path
		}
		if rerr := reporter.Report(path, fe.Diagnostics); rerr != nil {
			return rerr
		}
		return err
	}

	return reporter.Report(rt.ConfigPath, rt.Diagnostics)
}
