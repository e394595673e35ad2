package postgres

import (
	"context"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/samber/lo"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
)

const migrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Migration is one forward schema change read from a *.up.sql file
type Migration struct {
	Version string
	SQL     string
}

// LoadMigrations reads the *.up.sql files of dir in version order
func LoadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.up.sql"))
	if err != nil {
		return nil, ierr.WithError(err).WithMessage("list migrations").Mark(ierr.ErrSystem)
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, ierr.WithError(err).WithMessagef("read migration %s", name).Mark(ierr.ErrSystem)
		}
		migrations = append(migrations, Migration{
			Version: strings.TrimSuffix(path.Base(name), ".up.sql"),
			SQL:     string(body),
		})
	}
	return migrations, nil
}

// Migrate applies the pending migrations, each in its own transaction, and
// returns the versions it applied.
func (db *DB) Migrate(ctx context.Context, migrations []Migration) ([]string, error) {
	if _, err := db.ExecContext(ctx, migrationsTable); err != nil {
		return nil, ierr.WithError(err).WithMessage("create schema_migrations").Mark(ierr.ErrDatabase)
	}

	var applied []string
	if err := db.SelectContext(ctx, &applied, `SELECT version FROM schema_migrations`); err != nil {
		return nil, ierr.WithError(err).WithMessage("read schema_migrations").Mark(ierr.ErrDatabase)
	}

	pending := lo.Filter(migrations, func(m Migration, _ int) bool {
		return !lo.Contains(applied, m.Version)
	})

	done := make([]string, 0, len(pending))
	for _, m := range pending {
		err := db.WithTx(ctx, func(ctx context.Context) error {
			q := db.GetQuerier(ctx)
			if _, err := q.ExecContext(ctx, m.SQL); err != nil {
				return ierr.WithError(err).WithMessagef("apply migration %s", m.Version).Mark(ierr.ErrDatabase)
			}
			if _, err := q.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.Version); err != nil {
				return ierr.WithError(err).WithMessagef("record migration %s", m.Version).Mark(ierr.ErrDatabase)
			}
			return nil
		})
		if err != nil {
			return done, err
		}
		db.logger.Infow("applied migration", "version", m.Version)
		done = append(done, m.Version)
	}
	return done, nil
}
