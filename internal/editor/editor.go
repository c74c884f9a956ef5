// Package editor launches the user's editor on a configuration document.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/tagwm/internal/errors"
)

// ErrNoEditor is returned when no editor command can be determined.
var ErrNoEditor = errors.New("no editor found")

var lookupEnv = os.Getenv

// Streams are the terminal streams handed to the editor.
type Streams struct {
	In       io.Reader
	Out, Err io.Writer
}

// Open runs the user's editor on path and waits for it to exit.
// $EDITOR may carry arguments, e.g. "code --wait".
func Open(ctx context.Context, path string, s Streams) error {
	argv, err := Command(lookupEnv)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin = s.In
	cmd.Stdout = s.Out
	cmd.Stderr = s.Err

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

// Command returns the editor command line. The fallback chain is
// $EDITOR, $VISUAL, nano, then vi.
func Command(getenv func(string) string) ([]string, error) {
	for _, key := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(getenv(key)); len(fields) > 0 {
			return fields, nil
		}
	}
	for _, name := range []string{"nano", "vi"} {
		if _, err := exec.LookPath(name); err == nil {
			return []string{name}, nil
		}
	}
	return nil, ErrNoEditor
}
