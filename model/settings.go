package model

type Theme string
type View string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	ViewDashboard View = "dashboard"
	ViewDaily     View = "daily"
	ViewMonthly   View = "monthly"
	ViewReports   View = "reports"
	ViewRewards   View = "rewards"
	ViewNotes     View = "notes"
	ViewSettings  View = "settings"
)

const DefaultTheme = ThemeLight

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewDaily, ViewMonthly, ViewReports, ViewRewards, ViewNotes, ViewSettings:
		return true
	}
	return false
}

type Settings struct {
	Theme  Theme  `json:"theme"`
	APIKey string `json:"apiKey"`
}
