package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/smsdesk/smsdesk/internal/domain/contact"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/postgres"
	"github.com/stretchr/testify/suite"
)

type ContactRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	mock sqlmock.Sqlmock
	raw  *sql.DB
	db   *postgres.DB
	repo contact.Repository
}

func TestContactRepository(t *testing.T) {
	suite.Run(t, new(ContactRepositorySuite))
}

func (s *ContactRepositorySuite) SetupTest() {
	raw, mock, err := sqlmock.New()
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.raw = raw
	s.mock = mock
	s.db = postgres.Wrap(sqlx.NewDb(raw, "postgres"), logger.NewNoopLogger())
	s.repo = NewContactRepository(s.db, logger.NewNoopLogger())
}

func (s *ContactRepositorySuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	_ = s.raw.Close()
}

var contactOwnerColumns = []string{
	"id", "name", "mobile", "user_id", "group_id", "created_at", "updated_at", "owner_name", "owner_email",
}

func (s *ContactRepositorySuite) TestListForUserNewestFirst() {
	now := time.Now().UTC()
	rows := sqlmock.NewRows(contactOwnerColumns).
		AddRow("cont_2", "Bob", "+254722000111", "user_1", "grp_1", now, now, "Alice", "alice@example.com").
		AddRow("cont_1", "Carol", "+254712345678", "user_1", "grp_2", now.Add(-time.Hour), now, "Alice", "alice@example.com")

	s.mock.ExpectQuery(regexp.QuoteMeta("WHERE c.user_id = $1 ORDER BY c.created_at DESC")).
		WithArgs("user_1").
		WillReturnRows(rows)

	got, err := s.repo.ListForUser(s.ctx, "user_1")
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("cont_2", got[0].ID)
	s.Equal("Alice", got[0].OwnerName)
	s.Equal("alice@example.com", got[1].OwnerEmail)
	s.Equal("grp_2", got[1].GroupID)
}

func (s *ContactRepositorySuite) TestListAll() {
	s.mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = c.user_id ORDER BY c.created_at DESC")).
		WillReturnRows(sqlmock.NewRows(contactOwnerColumns))

	got, err := s.repo.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *ContactRepositorySuite) TestListFailureIsDatabaseError() {
	s.mock.ExpectQuery("FROM contacts").WillReturnError(sql.ErrConnDone)

	_, err := s.repo.ListAll(s.ctx)
	s.True(ierr.IsDatabase(err))
}

func (s *ContactRepositorySuite) TestExistsWithMobile() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM contacts WHERE group_id = $1 AND user_id = $2 AND mobile = $3")).
		WithArgs("grp_1", "user_1", "+254712345678").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := s.repo.ExistsWithMobile(s.ctx, "grp_1", "user_1", "+254712345678")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *ContactRepositorySuite) TestGetNotFound() {
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM contacts WHERE id = $1")).
		WithArgs("cont_missing").
		WillReturnError(sql.ErrNoRows)

	_, err := s.repo.Get(s.ctx, "cont_missing")
	s.True(ierr.IsNotFound(err))
}

func (s *ContactRepositorySuite) TestCreate() {
	c := contact.New("user_1", "grp_1", "Alice", "+254712345678")

	s.mock.ExpectExec("INSERT INTO contacts").
		WithArgs(c.ID, "Alice", "+254712345678", "user_1", "grp_1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.NoError(s.repo.Create(s.ctx, c))
}

func (s *ContactRepositorySuite) TestCreateUniqueViolation() {
	c := contact.New("user_1", "grp_1", "Alice", "+254712345678")

	s.mock.ExpectExec("INSERT INTO contacts").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "idx_contacts_group_user_mobile"})

	err := s.repo.Create(s.ctx, c)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *ContactRepositorySuite) TestUpdateMissingRow() {
	c := contact.New("user_1", "grp_1", "Alice", "+254712345678")

	s.mock.ExpectExec("UPDATE contacts SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.repo.Update(s.ctx, c)
	s.True(ierr.IsNotFound(err))
}

func (s *ContactRepositorySuite) TestDelete() {
	s.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contacts WHERE id = $1")).
		WithArgs("cont_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.NoError(s.repo.Delete(s.ctx, "cont_1"))
}

func (s *ContactRepositorySuite) TestDeleteByIDs() {
	s.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contacts WHERE id = ANY($1)")).
		WithArgs(pq.Array([]string{"cont_1", "cont_2"})).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := s.repo.DeleteByIDs(s.ctx, []string{"cont_1", "cont_2"})
	s.Require().NoError(err)
	s.Equal(int64(2), n)
}

func (s *ContactRepositorySuite) TestDeleteByIDsEmptyIsNoop() {
	n, err := s.repo.DeleteByIDs(s.ctx, nil)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *ContactRepositorySuite) TestDeleteByIDsForUser() {
	s.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contacts WHERE id = ANY($1) AND user_id = $2")).
		WithArgs(pq.Array([]string{"cont_1"}), "user_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := s.repo.DeleteByIDsForUser(s.ctx, []string{"cont_1"}, "user_1")
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func (s *ContactRepositorySuite) TestQueriesJoinTransaction() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("DELETE FROM contacts").WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	err := s.db.WithTx(s.ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, "cont_1")
	})
	s.NoError(err)
}
