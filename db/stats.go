package db

import "github.com/zenith-app/zenith/models"

// GetStudyStats returns the accumulated focus session stats
func (d *DB) GetStudyStats() (models.StudyStats, error) {
	var s models.StudyStats
	err := d.sql.QueryRow(`
		SELECT total_minutes, last_session FROM study_stats WHERE id = 1
	`).Scan(&s.TotalMinutes, &s.LastSession)
	return s, err
}

// AddStudyMinutes adds a completed focus session to the running total and
// stamps the last session time.
func (d *DB) AddStudyMinutes(minutes int, lastSession string) error {
	_, err := d.sql.Exec(`
		UPDATE study_stats SET total_minutes = total_minutes + ?, last_session = ? WHERE id = 1
	`, minutes, lastSession)
	return err
}
