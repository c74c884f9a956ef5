package settings

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/paths"
)

// FileName is the settings file name without extension.
const FileName = "settings"

// Settings represents the process settings.
type Settings struct {
	Version int `mapstructure:"version" yaml:"version" validate:"eq=1"`
	// ConfigPath is the configuration document used when --config is not
	// given. Empty means $HOME/.tagwmrc.
	ConfigPath string `mapstructure:"config_path" yaml:"config_path"`
	// Strict turns structural document errors into failures instead of
	// falling back to the built-in configuration.
	Strict    bool   `mapstructure:"strict" yaml:"strict"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" validate:"oneof=text json"`
	LogFile   string `mapstructure:"log_file" yaml:"log_file"`
	// Screens is the screen count of the headless display used by the
	// offline commands.
	Screens int `mapstructure:"screens" yaml:"screens" validate:"min=1,max=16"`
}

// Init initializes Viper with default settings.
// Call this once at application startup before accessing settings.
func Init() {
	// Reset so a previous explicit SetConfigFile does not stick.
	viper.Reset()

	viper.SetConfigName(FileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.SettingsDir())

	viper.SetEnvPrefix("TAGWM")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("config_path", "")
	viper.SetDefault("strict", false)
	viper.SetDefault("log_format", "text")
	viper.SetDefault("log_file", "")
	viper.SetDefault("screens", 1)
}

// Load reads the settings file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches the settings directory and falls back to
// defaults when no file exists.
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading settings file")
		}
		if path != "" {
			return nil, errors.Wrapf(err, "settings file not found at %s", path)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}

	if err := Validate(&s); err != nil {
		return nil, errors.Wrap(err, "validating settings")
	}

	return &s, nil
}

// FileUsed returns the settings file that was read, or "".
func FileUsed() string {
	return viper.ConfigFileUsed()
}
