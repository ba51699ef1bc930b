package learnlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=db_repository.go -destination=../mocks/learnlog/mock_record_repository.go -package=mock_learnlog RecordRepository

// RecordRepository defines operations for managing records in a database.
type RecordRepository interface {
	FindAll(ctx context.Context) ([]Record, error)
	FindByKey(ctx context.Context, category Category, recordedAt, text string) (*Record, error)
	Create(ctx context.Context, record Record) (int64, error)
}

// recordRow maps a Record onto the learnflow_records table.
type recordRow struct {
	ID         int64  `db:"id"`
	Category   string `db:"category"`
	Kind       string `db:"kind"`
	Text       string `db:"text"`
	RecordedAt string `db:"recorded_at"`
	Mood       string `db:"mood"`
	Status     string `db:"status"`
}

func (row recordRow) toRecord() Record {
	return Record{
		Category:  Category(row.Category),
		Kind:      Kind(row.Kind),
		Text:      row.Text,
		Timestamp: row.RecordedAt,
		Mood:      row.Mood,
		Status:    row.Status,
	}
}

// DBRecordRepository implements RecordRepository using MySQL.
type DBRecordRepository struct {
	db *sqlx.DB
}

// NewDBRecordRepository creates a new DBRecordRepository.
func NewDBRecordRepository(db *sqlx.DB) *DBRecordRepository {
	return &DBRecordRepository{db: db}
}

// FindAll returns all records in insertion order.
func (r *DBRecordRepository) FindAll(ctx context.Context) ([]Record, error) {
	var rows []recordRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM learnflow_records ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(learnflow_records) > %w", err)
	}
	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = row.toRecord()
	}
	return records, nil
}

// FindByKey returns the record matching category, timestamp and text,
// or nil when no such record exists.
func (r *DBRecordRepository) FindByKey(ctx context.Context, category Category, recordedAt, text string) (*Record, error) {
	var row recordRow
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM learnflow_records WHERE category = ? AND recorded_at = ? AND `text` = ? LIMIT 1",
		string(category), recordedAt, text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(learnflow_record) > %w", err)
	}
	record := row.toRecord()
	return &record, nil
}

// Create inserts a record and returns its generated ID.
func (r *DBRecordRepository) Create(ctx context.Context, record Record) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO learnflow_records (category, kind, `text`, recorded_at, mood, status) VALUES (?, ?, ?, ?, ?, ?)",
		string(record.Category), string(record.Kind), record.Text, record.Timestamp, record.Mood, record.Status)
	if err != nil {
		return 0, fmt.Errorf("db.ExecContext(insert learnflow_record) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("result.LastInsertId() > %w", err)
	}
	return id, nil
}
