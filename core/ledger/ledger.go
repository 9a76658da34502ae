package ledger

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Run is one recorded pipeline execution.
type Run struct {
	// ID is the run's UUID, shared with the log correlation field.
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// Command is the pipeline stage: fetch or unify.
	Command string `gorm:"size:16;index" json:"command"`
	// Platform is empty for unify runs.
	Platform    string    `gorm:"size:16;index" json:"platform"`
	Units       int       `json:"units"`
	UnitsFailed int       `json:"units_failed"`
	Discovered  int       `json:"discovered"`
	NewAccounts int       `json:"new_accounts"`
	Kept        int       `json:"kept"`
	Status      string    `gorm:"size:16" json:"status"`
	Error       string    `json:"error"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}

// TableName sets the ledger table name.
func (Run) TableName() string { return "runs" }

// Run statuses.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Connect opens the ledger database and migrates the runs table. Callers
// treat failures as non-fatal: a broken ledger must never block a fetch.
func Connect(cfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var db *gorm.DB
	var err error
	switch cfg.Driver {
	case "mysql":
		db, err = gorm.Open(mysql.Open(mysqlDSN(cfg)), gormConfig)
	case "sqlite", "":
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
				return nil, fmt.Errorf("create ledger dir: %w", mkErr)
			}
		}
		db, err = gorm.Open(sqlite.Open(cfg.Path), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported ledger driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("migrate ledger schema: %w", err)
	}
	return db, nil
}

// mysqlDSN builds the MySQL DSN. Special characters in the password are
// URL encoded per the driver's documentation.
func mysqlDSN(cfg Config) string {
	userInfo := url.UserPassword(cfg.User, cfg.Password).String()
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)
}

// Recorder persists and queries runs.
type Recorder struct {
	db *gorm.DB
}

// NewRecorder wraps an open ledger database.
func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

// Record inserts one finished run.
func (r *Recorder) Record(ctx context.Context, run *Run) error {
	return r.db.WithContext(ctx).Create(run).Error
}

// Recent returns the most recent runs, newest first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]Run, error) {
	var runs []Run
	err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	return runs, err
}
