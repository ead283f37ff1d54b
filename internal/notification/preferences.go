package notification

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

const preferencesKey = "notificationpreferences"

type preferencesFile struct {
	NotificationPreferences Preferences `mapstructure:"notificationpreferences"`
}

// DefaultPreferences returns the preferences used when no file exists.
func DefaultPreferences() Preferences {
	return Preferences{
		Enabled:      true,
		Sound:        true,
		Tasks:        true,
		Appointments: true,
		Reminders:    true,
		FocusMode: FocusMode{
			Enabled:  false,
			DndStart: DefaultDndStart,
			DndEnd:   DefaultDndEnd,
		},
	}
}

// LoadPreferences reads the notificationPreferences object from a JSON file.
// A missing file yields the defaults; keys missing from the file keep theirs.
func LoadPreferences(path string) (Preferences, error) {
	v := viper.New()
	setPreferenceDefaults(v)

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			v.SetConfigFile(path)
			v.SetConfigType("json")
			if err := v.ReadInConfig(); err != nil {
				return DefaultPreferences(), fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return DefaultPreferences(), fmt.Errorf("stat preferences %q: %w", path, err)
		}
	}

	var file preferencesFile
	if err := v.Unmarshal(&file); err != nil {
		return DefaultPreferences(), fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}
	return file.NotificationPreferences, nil
}

func setPreferenceDefaults(v *viper.Viper) {
	d := DefaultPreferences()
	v.SetDefault(preferencesKey+".enabled", d.Enabled)
	v.SetDefault(preferencesKey+".sound", d.Sound)
	v.SetDefault(preferencesKey+".tasks", d.Tasks)
	v.SetDefault(preferencesKey+".appointments", d.Appointments)
	v.SetDefault(preferencesKey+".reminders", d.Reminders)
	v.SetDefault(preferencesKey+".focusmode.enabled", d.FocusMode.Enabled)
	v.SetDefault(preferencesKey+".focusmode.dndstart", d.FocusMode.DndStart)
	v.SetDefault(preferencesKey+".focusmode.dndend", d.FocusMode.DndEnd)
}
