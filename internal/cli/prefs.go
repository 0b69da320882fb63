package cli

import (
	"fmt"
	"strings"

	"github.com/habitflow/habitflow/internal/dateutil"
	"github.com/habitflow/habitflow/internal/theme"
)

type PrefsCmd struct {
	Show PrefsShowCmd `cmd:"" help:"Show current preferences."`
	Set  PrefsSetCmd  `cmd:"" help:"Update a preference."`
}

type PrefsShowCmd struct{}

func (c *PrefsShowCmd) Run(ctx *Context) error {
	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return err
	}

	fmt.Printf("theme.mode:   %s\n", prefs.ThemeMode)
	fmt.Printf("theme.accent: %s\n", prefs.ThemeAccent)
	fmt.Printf("currency:     %s\n", prefs.Currency)
	fmt.Printf("timezone:     %s\n", prefs.Timezone)
	fmt.Printf("onboarded:    %t\n", prefs.OnboardingCompleted)
	return nil
}

type PrefsSetCmd struct {
	Key   string `arg:"" help:"Preference key: theme.mode, theme.accent, currency, timezone, onboarded."`
	Value string `arg:"" help:"New value."`
}

func (c *PrefsSetCmd) Run(ctx *Context) error {
	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return err
	}

	switch c.Key {
	case "theme.mode":
		if c.Value != string(theme.ModeLight) && c.Value != string(theme.ModeDark) {
			return fmt.Errorf("invalid theme mode %q (expected light or dark)", c.Value)
		}
		prefs.ThemeMode = c.Value
	case "theme.accent":
		if theme.ParseAccent(c.Value) != theme.Accent(c.Value) {
			return fmt.Errorf("invalid theme accent %q (expected teal, violet or amber)", c.Value)
		}
		prefs.ThemeAccent = c.Value
	case "currency":
		code := strings.ToUpper(c.Value)
		if len(code) != 3 {
			return fmt.Errorf("invalid currency code %q (expected a 3-letter ISO code)", c.Value)
		}
		prefs.Currency = code
	case "timezone":
		if _, err := dateutil.LoadLocation(c.Value); err != nil {
			return fmt.Errorf("unknown timezone %q", c.Value)
		}
		prefs.Timezone = c.Value
	case "onboarded":
		switch c.Value {
		case "true":
			prefs.OnboardingCompleted = true
		case "false":
			prefs.OnboardingCompleted = false
		default:
			return fmt.Errorf("invalid value %q for onboarded (expected true or false)", c.Value)
		}
	default:
		return fmt.Errorf("unknown preference key %q", c.Key)
	}

	if err := ctx.Store.SavePreferences(prefs); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}
