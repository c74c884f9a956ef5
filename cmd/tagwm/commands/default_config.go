package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/tagwm/internal/backup"
	"github.com/thoreinstein/tagwm/internal/document"
	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/paths"
	"github.com/thoreinstein/tagwm/pkg/fileutil"
)

var (
	defaultConfigInstall bool
	defaultConfigForce   bool
)

func init() {
	defaultConfigCmd.Flags().BoolVar(&defaultConfigInstall, "install", false,
		"write the default document to the configuration path")
	defaultConfigCmd.Flags().BoolVarP(&defaultConfigForce, "force", "f", false,
		"overwrite an existing document (with --install)")
	rootCmd.AddCommand(defaultConfigCmd)
}

var defaultConfigCmd = &cobra.Command{
	Use:   "default-config",
	Short: "Print the built-in default document",
	Long: `Print the configuration document the window manager falls back to
when ~/.tagwmrc is missing or malformed.

With --install the document is written to the configuration path instead
(--config, the settings config_path, or ~/.tagwmrc), as YAML when that
path ends in .yaml or .yml. An existing document
is left alone unless --force is given, in which case it is backed up
first (see 'tagwm backups').`,
	Example: `  # Inspect the default
  tagwm default-config

  # Start a new configuration from it
  tagwm default-config --install`,
	Args: cobra.NoArgs,
	RunE: runDefaultConfig,
}

func runDefaultConfig(cmd *cobra.Command, _ []string) error {
	if !defaultConfigInstall {
		_, err := cmd.OutOrStdout().Write(document.DefaultText())
		return err
	}

	explicit := configFlag
	if explicit == "" && current != nil {
		explicit = current.ConfigPath
	}
	path, err := paths.ConfigPath(explicit)
	if err != nil {
		return errors.NewSystemError(err, "Set HOME or pass --config")
	}

	text, err := document.DefaultTextFor(document.FormatFor(path))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating configuration directory")
	}

	if defaultConfigForce {
		mf, berr := backup.NewManager().Backup(path)
		if berr != nil {
			return errors.Wrap(berr, "backing up existing document")
		}
		if mf != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Backed up %s as %s\n", path, mf.ID)
		}
		err = fileutil.AtomicWriteFile(path, text, 0o644)
	} else {
		err = fileutil.WriteNew(path, text, 0o644)
	}
	if errors.Is(err, fileutil.ErrExists) {
		return errors.NewUserError(errors.Newf("%s already exists", path), "Use --force to overwrite it")
	}
	if err != nil {
		return errors.Wrap(err, "writing default document")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", color.GreenString("✓"), path)
	return nil
}
