package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/tagwm/internal/backup"
	"github.com/thoreinstein/tagwm/internal/errors"
)

func init() {
	backupsCmd.AddCommand(backupsRestoreCmd)
	rootCmd.AddCommand(backupsCmd)
}

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List configuration document backups",
	Long: `List the backups taken before 'tagwm default-config --install --force'
replaced a configuration document, newest first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		all, err := backup.NewManager().List()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if len(all) == 0 {
			fmt.Fprintln(w, "No backups found.")
			return nil
		}

		bold := color.New(color.Bold)
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("CREATED"), bold.Sprint("PATH"))
		for _, mf := range all {
			tbl.AddRow(mf.ID, mf.CreatedAt.Local().Format("2006-01-02 15:04:05"), mf.OriginalPath)
		}
		fmt.Fprintln(w, tbl)
		return nil
	},
}

var backupsRestoreCmd = &cobra.Command{
	Use:   "restore [id]",
	Short: "Restore a configuration document backup",
	Long: `Write a backed up document back to the path it was taken from.
Without an ID the newest backup is restored.`,
	Example: `  # Undo the last 'default-config --install --force'
  tagwm backups restore`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := backup.NewManager()

		id := ""
		if len(args) == 1 {
			id = args[0]
		} else {
			latest, err := m.Latest()
			if err != nil {
				if errors.Is(err, backup.ErrNoBackupsFound) {
					return errors.NewUserError(err, "Run: tagwm backups")
				}
				return err
			}
			id = latest.ID
		}

		mf, err := m.Restore(id)
		if err != nil {
			if errors.Is(err, backup.ErrNoBackupsFound) {
				return errors.NewUserError(err, "Run: tagwm backups")
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Restored %s from %s\n", color.GreenString("✓"), mf.OriginalPath, mf.ID)
		return nil
	},
}
