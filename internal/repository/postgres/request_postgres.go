package postgres

import (
	"context"
	"database/sql"
	"strings"

	"quickcal/internal/model"
	"quickcal/internal/repository"
)

// RequestPostgres is a PostgreSQL implementation of repository.RequestRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type RequestPostgres struct {
	db *sql.DB
}

// NewRequestPostgres creates a new RequestPostgres repository.
func NewRequestPostgres(db *sql.DB) *RequestPostgres {
	return &RequestPostgres{db: db}
}

var _ repository.RequestRepository = (*RequestPostgres)(nil)

const listColumns = `id, request_id, created_at, user_email, session_id, selected_text, text_length, text_words,
		client_date, user_timezone, source_url, source_ip, user_agent, status, raw_response,
		result_title, result_location, result_start, result_end, result_missing, error_message,
		gemini_ms, processing_ms, completed_at`

const saveRequestQuery = `
	INSERT INTO extraction_requests (
		id, request_id, created_at, user_email, session_id, selected_text, text_length, text_words,
		client_date, user_timezone, source_url, source_ip, user_agent, status, prompt, raw_response,
		result_title, result_location, result_start, result_end, result_missing, error_message,
		gemini_ms, processing_ms, completed_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	ON CONFLICT (id) DO UPDATE SET
		status          = EXCLUDED.status,
		prompt          = EXCLUDED.prompt,
		raw_response    = EXCLUDED.raw_response,
		result_title    = EXCLUDED.result_title,
		result_location = EXCLUDED.result_location,
		result_start    = EXCLUDED.result_start,
		result_end      = EXCLUDED.result_end,
		result_missing  = EXCLUDED.result_missing,
		error_message   = EXCLUDED.error_message,
		gemini_ms       = EXCLUDED.gemini_ms,
		processing_ms   = EXCLUDED.processing_ms,
		completed_at    = EXCLUDED.completed_at
`

// Save upserts the record keyed by its server-generated id. Only the fields
// that change while a request runs are updated on conflict; the request_id
// column is a client correlation value and is never a key.
func (r *RequestPostgres) Save(ctx context.Context, rec *model.RequestRecord) error {
	var completed sql.NullTime
	if rec.CompletedAt != nil {
		completed = sql.NullTime{Time: *rec.CompletedAt, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, saveRequestQuery,
		rec.ID,
		rec.RequestID,
		rec.CreatedAt,
		rec.UserEmail,
		rec.SessionID,
		rec.SelectedText,
		rec.TextLength,
		rec.TextWords,
		rec.CurrentDate,
		rec.Timezone,
		rec.SourceURL,
		rec.SourceIP,
		rec.UserAgent,
		rec.Status,
		rec.Prompt,
		rec.RawResponse,
		rec.ResultTitle,
		rec.ResultLocation,
		rec.ResultStart,
		rec.ResultEnd,
		strings.Join(rec.ResultMissing, ","),
		rec.ErrorMessage,
		rec.GeminiMS,
		rec.ProcessingMS,
		completed,
	)
	return err
}

// List returns records using LIMIT/OFFSET pagination and a total count.
func (r *RequestPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.RequestRecord], error) {
	const qCount = `SELECT COUNT(*) FROM extraction_requests`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + listColumns + `
		FROM extraction_requests
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.RequestRecord, 0)
	for rows.Next() {
		var (
			rec       model.RequestRecord
			missing   string
			completed sql.NullTime
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.RequestID,
			&rec.CreatedAt,
			&rec.UserEmail,
			&rec.SessionID,
			&rec.SelectedText,
			&rec.TextLength,
			&rec.TextWords,
			&rec.CurrentDate,
			&rec.Timezone,
			&rec.SourceURL,
			&rec.SourceIP,
			&rec.UserAgent,
			&rec.Status,
			&rec.RawResponse,
			&rec.ResultTitle,
			&rec.ResultLocation,
			&rec.ResultStart,
			&rec.ResultEnd,
			&missing,
			&rec.ErrorMessage,
			&rec.GeminiMS,
			&rec.ProcessingMS,
			&completed,
		); err != nil {
			return nil, err
		}
		if missing != "" {
			rec.ResultMissing = strings.Split(missing, ",")
		}
		if completed.Valid {
			t := completed.Time
			rec.CompletedAt = &t
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.RequestRecord]{
		Items: items,
		Total: total,
	}, nil
}
