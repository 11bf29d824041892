package model

// SettingsRowID is the fixed primary key of the single settings row.
const SettingsRowID = 0

// Settings is the single-row record of user display preferences. It is
// created lazily with defaults on first read and replaced wholesale on
// every save.
type Settings struct {
	ID           int64  `json:"id" db:"id"`
	ThemeName    string `json:"themeName" db:"theme_name"`
	IsGridView   bool   `json:"isGridView" db:"is_grid_view"`
	ShowCategory bool   `json:"showCategory" db:"show_category"`
	ShowDateTime bool   `json:"showDateTime" db:"show_date_time"`
}

// DefaultSettings returns the settings readers see before the first
// explicit save.
func DefaultSettings() Settings {
	return Settings{
		ID:           SettingsRowID,
		ThemeName:    "Onyx",
		IsGridView:   true,
		ShowCategory: true,
		ShowDateTime: true,
	}
}
