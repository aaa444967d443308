package db

import "database/sql"

// Default settings
var defaultSettings = map[string]string{
	"log_level":      "info",
	"snooze_minutes": "5",
}

// GetSetting retrieves a setting by key, falling back to defaults
func (d *DB) GetSetting(key string) (string, error) {
	var value string
	err := d.sql.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		if defaultValue, ok := defaultSettings[key]; ok {
			return defaultValue, nil
		}
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetSetting updates or creates a setting
func (d *DB) SetSetting(key, value string) error {
	_, err := d.sql.Exec(`
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, nowMs())
	return err
}

// GetAllSettings retrieves all settings merged over defaults
func (d *DB) GetAllSettings() (map[string]string, error) {
	settings := make(map[string]string)
	for k, v := range defaultSettings {
		settings[k] = v
	}

	rows, err := d.sql.Query("SELECT key, value FROM settings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}
	return settings, rows.Err()
}
