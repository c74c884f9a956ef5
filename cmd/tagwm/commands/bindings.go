package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/symbol"
	"github.com/thoreinstein/tagwm/internal/wmconfig"
)

var bindingsInteractive bool

func init() {
	bindingsCmd.Flags().BoolVarP(&bindingsInteractive, "interactive", "i", false,
		"browse bindings with a fuzzy finder")
	rootCmd.AddCommand(bindingsCmd)
}

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "List the compiled key and pointer bindings",
	Long: `Compile the configuration document and list every key binding and
every pointer binding (tag, layout, title, root and client clicks) in
declaration order.

Bindings whose command did not resolve are listed with command "?"; the
window manager keeps them but they do nothing.`,
	Example: `  # Print a table
  tagwm bindings

  # Search bindings interactively
  tagwm bindings -i`,
	Args: cobra.NoArgs,
	RunE: runBindings,
}

// binding is one row of the bindings listing.
type binding struct {
	Kind    string
	Chord   string
	Command string
	Arg     string
}

func runBindings(cmd *cobra.Command, _ []string) error {
	rt, err := wmconfig.Compile(cmd.Context(), compileOptions(cmd.Context(), false))
	if err != nil {
		return err
	}

	rows := collectBindings(rt)
	if bindingsInteractive {
		return browseBindings(cmd.OutOrStdout(), rows)
	}
	printBindings(cmd.OutOrStdout(), rows)
	return nil
}

func collectBindings(rt *wmconfig.Runtime) []binding {
	var rows []binding
	for _, k := range rt.Keys {
		rows = append(rows, binding{
			Kind:    "key",
			Chord:   chord(k.Modifiers, k.Name),
			Command: commandName(k.Command),
			Arg:     k.Arg,
		})
	}

	tables := []struct {
		kind    string
		buttons []*wmconfig.Button
	}{
		{"tag", rt.Buttons.Tag},
		{"layout", rt.Buttons.Layout},
		{"title", rt.Buttons.Title},
		{"root", rt.Buttons.Root},
		{"client", rt.Buttons.Client},
	}
	for _, t := range tables {
		for _, b := range t.buttons {
			rows = append(rows, binding{
				Kind:    t.kind,
				Chord:   chord(b.Modifiers, b.Button.String()),
				Command: commandName(b.Command),
				Arg:     b.Arg,
			})
		}
	}
	return rows
}

func chord(mods symbol.Modifier, trigger string) string {
	if mods == 0 {
		return trigger
	}
	return mods.String() + "+" + trigger
}

func commandName(c *symbol.Command) string {
	if c == nil {
		return "?"
	}
	return c.Name
}

func printBindings(w io.Writer, rows []binding) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No bindings configured.")
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50
	tbl.AddRow(bold.Sprint("KIND"), bold.Sprint("CHORD"), bold.Sprint("COMMAND"), bold.Sprint("ARG"))
	for _, r := range rows {
		tbl.AddRow(r.Kind, r.Chord, r.Command, r.Arg)
	}

	fmt.Fprintln(w, tbl)
}

func browseBindings(w io.Writer, rows []binding) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No bindings configured.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		rows,
		func(i int) string {
			return fmt.Sprintf("%s %s %s", rows[i].Kind, rows[i].Chord, rows[i].Command)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			r := rows[i]
			return fmt.Sprintf("Kind:    %s\nChord:   %s\nCommand: %s\nArg:     %s",
				r.Kind, r.Chord, r.Command, r.Arg)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive browse failed")
	}

	r := rows[idx]
	fmt.Fprintf(w, "%s: %s\n", r.Kind, strings.TrimSpace(r.Chord+" -> "+r.Command+" "+r.Arg))
	return nil
}
