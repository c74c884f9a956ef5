// Package settings manages tagwm's own process settings.
//
// Settings are distinct from the window manager configuration document:
// they decide where that document is read from, how strictly it is
// checked, and how the process logs. They are read with Viper from
// settings.yaml in the settings directory and from TAGWM_* environment
// variables, then validated.
package settings
