// Package backup keeps copies of configuration documents before tagwm
// replaces them.
//
// Each backup lives in its own directory under the backup root, named by
// its creation time:
//
//	$XDG_STATE_HOME/tagwm/backups/
//	└── 20260123T100712.000000000/
//	    ├── manifest.json
//	    └── document
//
// The manifest records the original path, the file mode, and a SHA256 hash
// that Restore verifies before writing anything back. Only the newest
// backups are retained; see WithRetention.
package backup
