package postgres

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	return Wrap(sqlx.NewDb(mockDB, "postgres"), logger.NewNoopLogger()), mock
}

func TestWithTxCommits(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM contacts").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.WithTx(context.Background(), func(ctx context.Context) error {
		_, inTx := GetTx(ctx)
		assert.True(t, inTx)
		_, err := db.GetQuerier(ctx).ExecContext(ctx, "DELETE FROM contacts WHERE id = $1", "cont_1")
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := db.WithTx(context.Background(), func(ctx context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNestedWithTxUsesSavepoints(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("SAVEPOINT sp_1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("ROLLBACK TO SAVEPOINT sp_1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := db.WithTx(context.Background(), func(ctx context.Context) error {
		inner := db.WithTx(ctx, func(ctx context.Context) error {
			return errors.New("inner failure")
		})
		assert.Error(t, inner)
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitWithoutTx(t *testing.T) {
	db, _ := newMockDB(t)
	err := db.CommitTx(context.Background())
	assert.True(t, ierr.IsSystem(err))
}

func TestIsUniqueViolation(t *testing.T) {
	err := ierr.WithError(&pq.Error{Code: "23505", Constraint: "idx_contacts_group_user_mobile"}).
		WithMessage("insert contact").
		Mark(ierr.ErrDatabase)

	assert.True(t, IsUniqueViolation(err))
	assert.Equal(t, "idx_contacts_group_user_mobile", ConstraintName(err))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
}

func TestMigrateAppliesPendingOnly(t *testing.T) {
	db, mock := newMockDB(t)

	fsys := fstest.MapFS{
		"postgres/0001_init.up.sql":   {Data: []byte("CREATE TABLE users (id TEXT)")},
		"postgres/0001_init.down.sql": {Data: []byte("DROP TABLE users")},
		"postgres/0002_groups.up.sql": {Data: []byte("CREATE TABLE groups (id TEXT)")},
	}
	migrations, err := LoadMigrations(fsys, "postgres")
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "0001_init", migrations[0].Version)
	assert.Equal(t, "0002_groups", migrations[1].Version)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0001_init"))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE groups").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("0002_groups").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := db.Migrate(context.Background(), migrations)
	require.NoError(t, err)
	assert.Equal(t, []string{"0002_groups"}, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}
