package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/tagwm/internal/editor"
	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/paths"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the configuration document, then check it",
	Long: `Open the configuration document in $EDITOR (falling back to $VISUAL,
nano, then vi) and run 'tagwm check' on it once the editor exits.

A document that does not exist yet is created by the editor; start from
'tagwm default-config --install' to get the built-in default instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		explicit := configFlag
		if explicit == "" && current != nil {
			explicit = current.ConfigPath
		}
		path, err := paths.ConfigPath(explicit)
		if err != nil {
			return errors.NewSystemError(err, "Set HOME or pass --config")
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Location: %s\n", path)
		err = editor.Open(cmd.Context(), path, editor.Streams{
			In:  cmd.InOrStdin(),
			Out: cmd.OutOrStdout(),
			Err: cmd.ErrOrStderr(),
		})
		if errors.Is(err, editor.ErrNoEditor) {
			return errors.NewUserError(err, "Set $EDITOR")
		}
		if err != nil {
			return err
		}

		return runCheck(cmd, nil)
	},
}
