package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"model-compare/core/reconcile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrUnavailable is returned when no database connection was configured.
var ErrUnavailable = errors.New("history database is not available")

// DefaultLimit is the number of runs List returns when no limit is given.
const DefaultLimit = 20

// Run is one recorded comparison.
type Run struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	FirstSource  string    `gorm:"size:1024;not null" json:"first_source"`
	SecondSource string    `gorm:"size:1024;not null" json:"second_source"`
	OutputPath   string    `gorm:"size:1024" json:"output_path"`
	TotalFirst   int       `json:"total_nodes_file1"`
	TotalSecond  int       `json:"total_nodes_file2"`
	OnlyInFirst  int       `json:"only_in_file1_count"`
	OnlyInSecond int       `json:"only_in_file2_count"`
	Common       int       `json:"common_nodes_count"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

// TableName overrides the default table name.
func (Run) TableName() string {
	return "compare_runs"
}

// Store persists comparison runs.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// NewStore creates a store. A nil db makes every operation return ErrUnavailable.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Migrate creates or updates the runs table.
func (s *Store) Migrate(ctx context.Context) error {
	if s.db == nil {
		return ErrUnavailable
	}
	if err := s.db.WithContext(ctx).AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("failed to migrate history: %w", err)
	}
	return nil
}

// Record stores the summary of one comparison.
func (s *Store) Record(ctx context.Context, first, second, output string, summary reconcile.Summary) (*Run, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	run := &Run{
		ID:           uuid.NewString(),
		FirstSource:  first,
		SecondSource: second,
		OutputPath:   output,
		TotalFirst:   summary.TotalFirst,
		TotalSecond:  summary.TotalSecond,
		OnlyInFirst:  summary.OnlyInFirst,
		OnlyInSecond: summary.OnlyInSecond,
		Common:       summary.Common,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var runs []Run
	if err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
