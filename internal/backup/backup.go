package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/thoreinstein/tagwm/cmd"
	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/paths"
	"github.com/thoreinstein/tagwm/pkg/fileutil"
)

// Manager creates, lists, and restores document backups.
type Manager struct {
	dir       string
	retention int
	now       func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithDir sets the backup root directory.
func WithDir(dir string) Option {
	return func(m *Manager) {
		m.dir = dir
	}
}

// WithRetention sets how many backups are kept. Values below 1 are ignored.
func WithRetention(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retention = n
		}
	}
}

// Dir returns the default backup root.
func Dir() string {
	return filepath.Join(paths.StateDir(), "backups")
}

// NewManager creates a Manager with the given options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		dir:       Dir(),
		retention: DefaultRetention,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Backup copies the document at path into a new backup and prunes old
// ones. It returns nil and no error when path does not exist.
func (m *Manager) Backup(path string) (*Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	created := m.now().UTC()
	id := created.Format(idLayout)
	dir := filepath.Join(m.dir, id)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "creating backup directory")
	}

	if err := fileutil.AtomicWriteFile(filepath.Join(dir, documentName), data, 0o600); err != nil {
		return nil, errors.Wrap(err, "copying document")
	}

	manifest := &Manifest{
		Version:      ManifestVersion,
		CreatedAt:    created,
		OriginalPath: path,
		SHA256Hash:   hashOf(data),
		Mode:         info.Mode().Perm(),
		TagwmVersion: cmd.Version,
		ID:           id,
	}
	raw, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding manifest")
	}
	if err := fileutil.AtomicWriteFile(filepath.Join(dir, manifestName), raw, 0o600); err != nil {
		return nil, errors.Wrap(err, "writing manifest")
	}

	if err := m.Prune(m.retention); err != nil {
		return manifest, err
	}
	return manifest, nil
}

// List returns every backup, newest first.
func (m *Manager) List() ([]Manifest, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	var out []Manifest
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		mf, err := m.Get(e.Name())
		if err != nil {
			// Directories without a readable manifest are not ours.
			continue
		}
		out = append(out, *mf)
	}

	slices.SortFunc(out, func(a, b Manifest) int {
		return strings.Compare(b.ID, a.ID)
	})
	return out, nil
}

// Get loads the manifest of one backup.
func (m *Manager) Get(id string) (*Manifest, error) {
	if id == "" || id != filepath.Base(id) {
		return nil, errors.Newf("invalid backup ID %q", id)
	}
	raw, err := os.ReadFile(filepath.Join(m.dir, id, manifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoBackupsFound, "backup %s", id)
		}
		return nil, errors.Wrap(err, "reading manifest")
	}
	var mf Manifest
	if err := json.Unmarshal(raw, &mf); err != nil {
		return nil, errors.Wrapf(err, "parsing manifest of %s", id)
	}
	mf.ID = id
	return &mf, nil
}

// Latest returns the newest backup.
func (m *Manager) Latest() (*Manifest, error) {
	all, err := m.List()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, ErrNoBackupsFound
	}
	return &all[0], nil
}

// Restore writes the backed up document back to its original path after
// verifying its hash.
func (m *Manager) Restore(id string) (*Manifest, error) {
	mf, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(m.dir, id, documentName))
	if err != nil {
		return nil, errors.Wrapf(err, "reading backup %s", id)
	}
	if hashOf(data) != mf.SHA256Hash {
		return nil, errors.Wrapf(ErrBackupCorrupted, "backup %s", id)
	}

	if err := fileutil.AtomicWriteFile(mf.OriginalPath, data, mf.Mode); err != nil {
		return nil, errors.Wrapf(err, "restoring %s", mf.OriginalPath)
	}
	return mf, nil
}

// Prune removes all but the newest keep backups.
func (m *Manager) Prune(keep int) error {
	all, err := m.List()
	if err != nil {
		return err
	}
	if len(all) <= keep {
		return nil
	}
	for _, mf := range all[keep:] {
		if err := os.RemoveAll(filepath.Join(m.dir, mf.ID)); err != nil {
			return errors.Wrapf(err, "pruning backup %s", mf.ID)
		}
	}
	return nil
}

func hashOf(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
