package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"poisepms/internal/database"
	"poisepms/internal/domain"
	"poisepms/internal/pkg/sqlset"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Connect(fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func date(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newProject(name string, deadline string) *domain.Project {
	return &domain.Project{
		Name:         name,
		BuildingType: "Office",
		Address:      "1 Main Rd",
		ERFNumber:    "ERF-1",
		TotalFee:     1000,
		AmountPaid:   250,
		Deadline:     date(deadline),
		Description:  "test",
		EngineerID:   1,
		ManagerID:    2,
		ArchitectID:  3,
		CustomerID:   4,
	}
}

func TestPartyRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPartyRepository(db)
	ctx := context.Background()

	empty, err := repo.ListSummaries(ctx, domain.CategoryEngineer)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first := &domain.Party{Name: "Ada Lovelace", Phone: "555-1", Email: "ada@example.com", Address: "London"}
	require.NoError(t, repo.Create(ctx, domain.CategoryEngineer, first))
	second := &domain.Party{}
	require.NoError(t, repo.Create(ctx, domain.CategoryEngineer, second))

	assert.Greater(t, first.ID, int64(0))
	assert.Greater(t, second.ID, first.ID)

	summaries, err := repo.ListSummaries(ctx, domain.CategoryEngineer)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, domain.PartySummary{ID: first.ID, Name: "Ada Lovelace"}, summaries[0])

	full, err := repo.List(ctx, domain.CategoryEngineer)
	require.NoError(t, err)
	require.Len(t, full, 2)
	assert.Equal(t, *first, full[0])

	others, err := repo.ListSummaries(ctx, domain.CategoryManager)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestPartyRepository_GetName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPartyRepository(db)
	ctx := context.Background()

	c := &domain.Party{Name: "Jane Doe"}
	require.NoError(t, repo.Create(ctx, domain.CategoryCustomer, c))

	name, ok, err := repo.GetName(ctx, domain.CategoryCustomer, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", name)

	_, ok, err = repo.GetName(ctx, domain.CategoryCustomer, c.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPartyRepository_UnknownCategory(t *testing.T) {
	repo := NewPartyRepository(setupTestDB(t))

	_, err := repo.ListSummaries(context.Background(), domain.Category("Plumbers"))
	assert.True(t, errors.Is(err, domain.ErrUnknownCategory))

	err = repo.Create(context.Background(), domain.Category("Plumbers"), &domain.Party{})
	assert.True(t, errors.Is(err, domain.ErrUnknownCategory))
}

func TestPartyRepository_StoreErrorIsTagged(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Exec("DROP TABLE architects").Error)

	_, err := NewPartyRepository(db).ListSummaries(context.Background(), domain.CategoryArchitect)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStore))
}

func TestProjectRepository_CreateGetFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := newProject("Office Doe", "2026-12-01")
	p.IsFinalized = true
	affected, err := repo.Create(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	require.Greater(t, p.ID, int64(0))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Office Doe", got.Name)
	assert.Equal(t, "2026-12-01", domain.FormatDate(got.Deadline))
	assert.False(t, got.IsFinalized, "new projects start unfinalized")
	assert.Nil(t, got.CompletionDate)
	assert.Equal(t, int64(4), got.CustomerID)

	byName, err := repo.GetByName(ctx, "Office Doe")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byName.ID)

	_, err = repo.GetByName(ctx, "office doe")
	assert.True(t, errors.Is(err, domain.ErrProjectNotFound))

	_, err = repo.GetByID(ctx, p.ID+1)
	assert.True(t, errors.Is(err, domain.ErrProjectNotFound))
}

func TestProjectRepository_OverdueAndUncompleted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()
	today := date("2026-10-19")

	late := newProject("Late", "2026-10-18")
	due := newProject("Due today", "2026-10-19")
	done := newProject("Done", "2026-01-01")
	for _, p := range []*domain.Project{late, due, done} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}
	_, err := repo.Finalize(ctx, done.ID, date("2026-02-01"))
	require.NoError(t, err)

	overdue, err := repo.ListOverdue(ctx, today)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, late.ID, overdue[0].ID)

	open, err := repo.ListUncompleted(ctx)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, late.ID, open[0].ID)
	assert.Equal(t, due.ID, open[1].ID)

	_, err = repo.Finalize(ctx, late.ID, today)
	require.NoError(t, err)
	overdue, err = repo.ListOverdue(ctx, today)
	require.NoError(t, err)
	assert.Empty(t, overdue)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestProjectRepository_FinalizeTwice(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := newProject("Twice", "2026-05-01")
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)

	n, err := repo.Finalize(ctx, p.ID, date("2026-06-01"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Finalize(ctx, p.ID, date("2026-07-15"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsFinalized)
	require.NotNil(t, got.CompletionDate)
	assert.Equal(t, "2026-07-15", domain.FormatDate(*got.CompletionDate))

	n, err = repo.Finalize(ctx, p.ID+50, date("2026-07-15"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProjectRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := newProject("Gone", "2026-05-01")
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)

	n, err := repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProjectRepository_UpdateFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := newProject("Before", "2026-05-01")
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)

	set := sqlset.New().Set("project_name", "After").Set("total_fee", 100.0).Set("deadline", date("2027-01-31"))
	n, err := repo.UpdateFields(ctx, p.ID, set)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.Equal(t, 100.0, got.TotalFee)
	assert.Equal(t, 250.0, got.AmountPaid)
	assert.Equal(t, "2027-01-31", domain.FormatDate(got.Deadline))

	n, err = repo.UpdateFields(ctx, p.ID+9, sqlset.New().Set("project_name", "Nobody"))
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = repo.UpdateFields(ctx, p.ID, sqlset.New())
	assert.True(t, errors.Is(err, sqlset.ErrEmpty))
}

func TestProjectRepository_UpdateFieldsStatementShape(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE projects SET "project_name"=$1,"total_fee"=$2 WHERE project_id = $3`)).
		WithArgs("X", 100.0, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	set := sqlset.New().SetIfNotEmpty("project_name", "X").Set("total_fee", 100.0)
	n, err := NewProjectRepository(db).UpdateFields(context.Background(), 7, set)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_UpdateFieldsFollowsInsertionOrder(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE projects SET "total_fee"=$1,"project_name"=$2,"description"=$3 WHERE project_id = $4`)).
		WithArgs(100.0, "X", "Renovation", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	set := sqlset.New().Set("total_fee", 100.0).Set("project_name", "X").Set("description", "Renovation")
	_, err = NewProjectRepository(db).UpdateFields(context.Background(), 7, set)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_EmptyUpdateExecutesNothing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	_, err = NewProjectRepository(db).UpdateFields(context.Background(), 7, sqlset.New())
	assert.True(t, errors.Is(err, sqlset.ErrEmpty))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreErr(t *testing.T) {
	assert.NoError(t, storeErr("noop", nil))

	plain := storeErr("insert project", errors.New("disk I/O error"))
	assert.True(t, errors.Is(plain, domain.ErrStore))
	assert.Equal(t, "store error: insert project: disk I/O error", plain.Error())

	pgErr := &pgconn.PgError{Code: "23503", Message: "violates foreign key", ConstraintName: "fk_projects_customer"}
	wrapped := storeErr("insert project", fmt.Errorf("exec: %w", pgErr))
	assert.True(t, errors.Is(wrapped, domain.ErrStore))
	assert.Contains(t, wrapped.Error(), "(sqlstate 23503, constraint fk_projects_customer)")

	var got *pgconn.PgError
	require.True(t, errors.As(wrapped, &got))
	assert.Equal(t, "23503", got.Code)
}
