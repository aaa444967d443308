package db

// ListSnoozes returns the persisted snooze registry (item ID -> "HH:MM")
func (d *DB) ListSnoozes() (map[string]string, error) {
	rows, err := d.sql.Query("SELECT item_id, until FROM snoozes")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snoozes := make(map[string]string)
	for rows.Next() {
		var id, until string
		if err := rows.Scan(&id, &until); err != nil {
			return nil, err
		}
		snoozes[id] = until
	}
	return snoozes, rows.Err()
}

// SetSnooze writes an item's deferred trigger time, replacing any previous one
func (d *DB) SetSnooze(itemID, until string) error {
	_, err := d.sql.Exec(`
		INSERT INTO snoozes (item_id, until, created_at) VALUES (?, ?, ?)
		ON CONFLICT(item_id) DO UPDATE SET
			until = excluded.until,
			created_at = excluded.created_at
	`, itemID, until, nowMs())
	return err
}

// DeleteSnooze removes an item's snooze entry, if any
func (d *DB) DeleteSnooze(itemID string) error {
	_, err := d.sql.Exec("DELETE FROM snoozes WHERE item_id = ?", itemID)
	return err
}
