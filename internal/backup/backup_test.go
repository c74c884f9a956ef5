package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thoreinstein/tagwm/internal/errors"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ".tagwmrc")
	if err := os.WriteFile(p, []byte(content), 0o640); err != nil {
		t.Fatal(err)
	}
	return p
}

// stepClock returns a clock that advances one second per call.
func stepClock() func() time.Time {
	t0 := time.Date(2026, 1, 23, 10, 7, 12, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Second)
	}
}

func newTestManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()
	m := NewManager(append([]Option{WithDir(t.TempDir())}, opts...)...)
	m.now = stepClock()
	return m
}

func TestBackup_RoundTrip(t *testing.T) {
	m := newTestManager(t)
	path := writeDoc(t, "original")

	mf, err := m.Backup(path)
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}
	if mf.OriginalPath != path {
		t.Errorf("OriginalPath = %q, want %q", mf.OriginalPath, path)
	}
	if mf.Mode != 0o640 {
		t.Errorf("Mode = %o, want 640", mf.Mode)
	}

	if err := os.WriteFile(path, []byte("replaced"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Restore(mf.ID); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "original" {
		t.Errorf("restored content = %q, want %q", data, "original")
	}
}

func TestBackup_MissingSource(t *testing.T) {
	m := newTestManager(t)

	mf, err := m.Backup(filepath.Join(t.TempDir(), "absent"))
	if err != nil || mf != nil {
		t.Errorf("Backup(absent) = %v, %v; want nil, nil", mf, err)
	}
	if _, err := m.Latest(); !errors.Is(err, ErrNoBackupsFound) {
		t.Errorf("Latest() error = %v, want ErrNoBackupsFound", err)
	}
}

func TestBackup_DistinctIDs(t *testing.T) {
	m := NewManager(WithDir(t.TempDir()))
	path := writeDoc(t, "x")

	first, err := m.Backup(path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.Backup(path)
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == second.ID {
		t.Errorf("backup IDs collided: %s", first.ID)
	}
}

func TestBackup_Retention(t *testing.T) {
	m := newTestManager(t, WithRetention(2))
	path := writeDoc(t, "x")

	var ids []string
	for range 4 {
		mf, err := m.Backup(path)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, mf.ID)
	}

	all, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("kept %d backups, want 2", len(all))
	}
	if all[0].ID != ids[3] || all[1].ID != ids[2] {
		t.Errorf("kept %s, %s; want newest first %s, %s", all[0].ID, all[1].ID, ids[3], ids[2])
	}

	latest, err := m.Latest()
	if err != nil {
		t.Fatal(err)
	}
	if latest.ID != ids[3] {
		t.Errorf("Latest() = %s, want %s", latest.ID, ids[3])
	}
}

func TestRestore_Corrupted(t *testing.T) {
	m := newTestManager(t)
	path := writeDoc(t, "original")

	mf, err := m.Backup(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(m.dir, mf.ID, documentName), []byte("tampered"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Restore(mf.ID); !errors.Is(err, ErrBackupCorrupted) {
		t.Errorf("Restore() error = %v, want ErrBackupCorrupted", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "original" {
		t.Error("a corrupted backup must not be written back")
	}
}

func TestGet_InvalidID(t *testing.T) {
	m := newTestManager(t)

	for _, id := range []string{"", "../etc", "a/b"} {
		if _, err := m.Get(id); err == nil {
			t.Errorf("Get(%q) should fail", id)
		}
	}
	if _, err := m.Get("20260101T000000.000000000"); !errors.Is(err, ErrNoBackupsFound) {
		t.Errorf("Get(unknown) error = %v, want ErrNoBackupsFound", err)
	}
}

func TestList_IgnoresForeignDirs(t *testing.T) {
	m := newTestManager(t)
	if err := os.MkdirAll(filepath.Join(m.dir, "stray"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Backup(writeDoc(t, "x")); err != nil {
		t.Fatal(err)
	}

	all, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("List() = %d entries, want 1", len(all))
	}
}
