package backup

import (
	"io/fs"
	"time"

	"github.com/thoreinstein/tagwm/internal/errors"
)

// ManifestVersion is the manifest format version.
const ManifestVersion = 1

// DefaultRetention is the number of backups kept by default.
const DefaultRetention = 5

const (
	manifestName = "manifest.json"
	documentName = "document"
	idLayout     = "20060102T150405.000000000"
)

var (
	// ErrNoBackupsFound indicates the backup root holds no backups.
	ErrNoBackupsFound = errors.New("no backups found")

	// ErrBackupCorrupted indicates a backed up document no longer matches
	// the hash in its manifest.
	ErrBackupCorrupted = errors.New("backup corrupted")
)

// Manifest describes one backup. It is stored as manifest.json in the
// backup directory.
type Manifest struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	// OriginalPath is where the document lived when it was backed up.
	OriginalPath string      `json:"original_path"`
	SHA256Hash   string      `json:"sha256_hash"`
	Mode         fs.FileMode `json:"mode"`
	// TagwmVersion is the version of tagwm that took the backup.
	TagwmVersion string `json:"tagwm_version"`

	// ID is the backup directory name. It is filled in when loading and
	// not stored.
	ID string `json:"-"`
}
