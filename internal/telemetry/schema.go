package telemetry

import (
	"database/sql"

	"codeberg.org/mutker/motormon/internal/errors"
)

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS telemetry (
            timestamp INTEGER PRIMARY KEY,
            rms REAL,
            kurtosis REAL,
            temp REAL,
            fan_speed INTEGER,
            status TEXT,
            status_code INTEGER,
            recommendation TEXT,
            mode TEXT
        )
    `)
	if err != nil {
		return errors.New().Wrap(ErrSchemaInit, err)
	}

	return nil
}
