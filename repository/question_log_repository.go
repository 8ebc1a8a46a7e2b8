package repository

import (
	"context"
	"fmt"

	"legalease-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// QuestionLogRepository handles database operations for the question log
type QuestionLogRepository struct {
	db *pgxpool.Pool
}

// NewQuestionLogRepository creates a new question log repository
func NewQuestionLogRepository(db *pgxpool.Pool) *QuestionLogRepository {
	return &QuestionLogRepository{db: db}
}

// Create inserts a question log row
func (r *QuestionLogRepository) Create(ctx context.Context, entry *models.QuestionLog) error {
	query := `
		INSERT INTO question_logs (id, query, level, category, urgency, origin, fallback, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`

	_, err := r.db.Exec(ctx, query,
		entry.ID,
		entry.Query,
		string(entry.Level),
		entry.Category,
		string(entry.Urgency),
		string(entry.Origin),
		entry.Fallback,
	)
	if err != nil {
		return fmt.Errorf("failed to insert question log: %w", err)
	}
	return nil
}

// Recent returns the most recent question log rows, newest first
func (r *QuestionLogRepository) Recent(ctx context.Context, limit int) ([]models.QuestionLog, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, query, level, category, urgency, origin, fallback, created_at
		FROM question_logs
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query question logs: %w", err)
	}
	defer rows.Close()

	var logs []models.QuestionLog
	for rows.Next() {
		var l models.QuestionLog
		var level, urgency, origin string
		if err := rows.Scan(&l.ID, &l.Query, &level, &l.Category, &urgency, &origin, &l.Fallback, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan question log: %w", err)
		}
		l.Level = models.Level(level)
		l.Urgency = models.Urgency(urgency)
		l.Origin = models.AnswerOrigin(origin)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read question logs: %w", err)
	}
	return logs, nil
}
