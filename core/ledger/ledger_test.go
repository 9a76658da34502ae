package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestRecorder_Record(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	rec := NewRecorder(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `runs`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := rec.Record(context.Background(), &Run{
		ID:          "11111111-2222-3333-4444-555555555555",
		Command:     "fetch",
		Platform:    "tiktok",
		Units:       3,
		Discovered:  42,
		NewAccounts: 7,
		Kept:        40,
		Status:      StatusSucceeded,
		StartedAt:   time.Now().UTC(),
		FinishedAt:  time.Now().UTC(),
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecorder_Recent(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	rec := NewRecorder(gormDB)

	rows := sqlmock.NewRows([]string{"id", "command", "platform", "status", "kept"}).
		AddRow("run-2", "fetch", "youtube", StatusSucceeded, 120).
		AddRow("run-1", "unify", "", StatusFailed, 0)
	mock.ExpectQuery("SELECT \\* FROM `runs` ORDER BY started_at DESC").WillReturnRows(rows)

	runs, err := rec.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-2", runs[0].ID)
	assert.Equal(t, "unify", runs[1].Command)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMysqlDSN(t *testing.T) {
	dsn := mysqlDSN(Config{
		User:     "scout",
		Password: "p@ss/word",
		Host:     "db.internal",
		Port:     3306,
		Name:     "influencers",
	})

	assert.Contains(t, dsn, "scout:p%40ss%2Fword@tcp(db.internal:3306)/influencers")
	assert.Contains(t, dsn, "parseTime=True")
	assert.Contains(t, dsn, "timeout=30s", "zero timeout falls back to the default")
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(Config{Driver: "postgres"})
	assert.Error(t, err)
}
