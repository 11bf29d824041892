package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amethyst/enscribe/internal/model"
)

// GetSettings returns the settings row. When no row has been saved yet,
// it returns model.DefaultSettings with no error.
func (s *SQLiteStore) GetSettings(ctx context.Context) (model.Settings, error) {
	var out model.Settings
	var gridInt, categoryInt, dateTimeInt int

	err := s.db.QueryRowxContext(ctx,
		"SELECT id, theme_name, is_grid_view, show_category, show_date_time FROM settings WHERE id = ?",
		model.SettingsRowID,
	).Scan(&out.ID, &out.ThemeName, &gridInt, &categoryInt, &dateTimeInt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("getting settings: %w", err)
	}

	out.IsGridView = gridInt != 0
	out.ShowCategory = categoryInt != 0
	out.ShowDateTime = dateTimeInt != 0
	return out, nil
}

// SaveSettings upserts the single settings row. The id is forced to the
// fixed row id so every save replaces the whole record.
func (s *SQLiteStore) SaveSettings(ctx context.Context, settings model.Settings) error {
	settings.ID = model.SettingsRowID

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO settings (
			id, theme_name, is_grid_view, show_category, show_date_time
		) VALUES (?, ?, ?, ?, ?)`,
		settings.ID, settings.ThemeName,
		boolToInt(settings.IsGridView),
		boolToInt(settings.ShowCategory),
		boolToInt(settings.ShowDateTime),
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
