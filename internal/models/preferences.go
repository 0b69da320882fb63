package models

// Preferences is the persisted user configuration record. It replaces the
// ambient per-device flags of earlier builds (onboarding markers and theme
// selection) with an explicit record loaded at startup and passed to the
// components that need it.
type Preferences struct {
	OnboardingCompleted bool   `json:"onboarding_completed"`
	ThemeMode           string `json:"theme_mode"`   // "light" or "dark"
	ThemeAccent         string `json:"theme_accent"` // "teal", "violet" or "amber"
	Currency            string `json:"currency"`     // ISO 4217 code, e.g. "USD"
	Timezone            string `json:"timezone"`     // IANA name, "Local" or empty for system
}
