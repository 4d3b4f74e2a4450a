package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upInit, downInit)
}

func upInit(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			telegram_id BIGINT,
			vk_id BIGINT,
			gender VARCHAR,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS posters (
			id SERIAL PRIMARY KEY,
			file_id VARCHAR NOT NULL,
			caption TEXT,
			ticket_url VARCHAR,
			venue_map_file_id VARCHAR,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
			is_active BOOLEAN NOT NULL DEFAULT true
		);

		CREATE TABLE IF NOT EXISTS stories (
			id SERIAL PRIMARY KEY,
			file_id VARCHAR NOT NULL,
			caption TEXT,
			slot_number INTEGER,
			order_num INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
			is_active BOOLEAN NOT NULL DEFAULT true
		);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downInit(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.Exec(`
		DROP TABLE stories;
		DROP TABLE posters;
		DROP TABLE users;
	`)
	if err != nil {
		return err
	}
	return nil
}
