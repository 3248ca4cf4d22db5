package state

import (
	"database/sql"
	"time"
)

// GetVolume returns the saved volume level, defaulting to 1.0 when
// nothing was saved yet.
func (m *Manager) GetVolume() (float64, error) {
	return getVolume(m.db)
}

// SaveVolume persists the volume level.
func (m *Manager) SaveVolume(volume float64) error {
	return saveVolume(m.db, volume)
}

func getVolume(db *sql.DB) (float64, error) {
	var volume float64
	row := db.QueryRow(`SELECT volume FROM player_state WHERE id = 1`)
	err := row.Scan(&volume)
	if err == sql.ErrNoRows {
		return 1.0, nil
	}
	if err != nil {
		return 0, err
	}
	return volume, nil
}

func saveVolume(db *sql.DB, volume float64) error {
	_, err := db.Exec(`
		INSERT INTO player_state (id, volume, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			updated_at = excluded.updated_at
	`, volume, time.Now().Unix())
	return err
}
