package migrator

import (
	"database/sql"
	"io/fs"

	"github.com/pressly/goose/v3"
)

type Migrator struct {
	db            *sql.DB
	fsys          fs.FS
	migrationsDir string
}

// NewEmbeddedMigrator reads migrations from dir inside fsys.
func NewEmbeddedMigrator(db *sql.DB, fsys fs.FS, dir string) *Migrator {
	return &Migrator{
		db:            db,
		fsys:          fsys,
		migrationsDir: dir,
	}
}

func (m *Migrator) Up() error {
	goose.SetBaseFS(m.fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(m.db, m.migrationsDir); err != nil {
		return err
	}
	return nil
}

func (m *Migrator) Close() error {
	return m.db.Close()
}
