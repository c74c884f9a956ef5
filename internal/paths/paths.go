package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"

	"github.com/thoreinstein/tagwm/internal/errors"
)

// AppName is used for XDG directory names.
const AppName = "tagwm"

// ConfigFileName is the document name looked up in the home directory.
const ConfigFileName = ".tagwmrc"

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// ResolveHome returns the user's home directory, honouring $HOME.
func ResolveHome() (string, error) {
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return "", errors.Wrapf(ErrHomeDirNotFound, "%v", err)
	}
	return home, nil
}

// ConfigPath returns the document path for an optional explicit argument.
// An explicit path wins and has a leading ~ expanded; otherwise the result
// is $HOME/.tagwmrc.
func ConfigPath(explicit string) (string, error) {
	if explicit != "" {
		p, err := homedir.Expand(explicit)
		if err != nil {
			return "", errors.Wrapf(err, "expanding %s", explicit)
		}
		return p, nil
	}

	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigFileName), nil
}

// SettingsDirEnv overrides the settings directory.
const SettingsDirEnv = "TAGWM_SETTINGS_DIR"

// SettingsDir returns the directory holding settings.yaml.
// On Linux: ~/.config/tagwm
func SettingsDir() string {
	if dir := os.Getenv(SettingsDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// StateDirEnv overrides the state directory.
const StateDirEnv = "TAGWM_STATE_DIR"

// StateDir returns the directory for the default log file and document
// backups.
// On Linux: ~/.local/state/tagwm
func StateDir() string {
	if dir := os.Getenv(StateDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppName)
}

// DefaultLogFile returns the log file used when --log-file is given without a path.
func DefaultLogFile() string {
	return filepath.Join(StateDir(), AppName+".log")
}
