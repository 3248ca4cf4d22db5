package state

import (
	"database/sql"
	"time"
)

// GetLastSource returns the description of the last played source, or
// "" when nothing was saved yet.
func (m *Manager) GetLastSource() (string, error) {
	return getLastSource(m.db)
}

// SaveLastSource persists the description of the source being played.
func (m *Manager) SaveLastSource(desc string) error {
	return saveLastSource(m.db, desc)
}

func getLastSource(db *sql.DB) (string, error) {
	var desc sql.NullString
	row := db.QueryRow(`SELECT last_source FROM player_state WHERE id = 1`)
	err := row.Scan(&desc)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return desc.String, nil
}

func saveLastSource(db *sql.DB, desc string) error {
	_, err := db.Exec(`
		INSERT INTO player_state (id, last_source, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_source = excluded.last_source,
			updated_at = excluded.updated_at
	`, desc, time.Now().Unix())
	return err
}
