package commands

import (
	"os"
	"strings"
	"testing"

	"github.com/thoreinstein/tagwm/internal/errors"
)

func TestBackups_ForceInstallThenRestore(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "rc.toml", "# mine\n")

	out, err := execute(t, "backups")
	if err != nil {
		t.Fatalf("backups failed: %v", err)
	}
	if !strings.Contains(out, "No backups found.") {
		t.Errorf("expected empty listing, got:\n%s", out)
	}

	out, err = execute(t, "default-config", "--install", "--force", "--config", path)
	if err != nil {
		t.Fatalf("--force install failed: %v", err)
	}
	if !strings.Contains(out, "Backed up "+path) {
		t.Errorf("expected backup notice, got:\n%s", out)
	}

	out, err = execute(t, "backups")
	if err != nil {
		t.Fatalf("backups failed: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("listing should name %s:\n%s", path, out)
	}

	if _, err := execute(t, "backups", "restore"); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "# mine\n" {
		t.Errorf("restored document = %q", data)
	}
}

func TestBackups_RestoreWithoutBackups(t *testing.T) {
	isolate(t)

	_, err := execute(t, "backups", "restore")
	if got := errors.ExitCode(err); got != errors.ExitUser {
		t.Errorf("ExitCode = %d, want %d (err %v)", got, errors.ExitUser, err)
	}
}
