package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RequestEntry captures the data for a single LLM request.
type RequestEntry struct {
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// StoredRequest is a logged request with its row id.
type StoredRequest struct {
	ID int64
	RequestEntry
}

// ModelUsage aggregates token counts for one provider/model pair.
type ModelUsage struct {
	Provider     string
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// RequestLog provides append and summary access to the LLM request log.
type RequestLog interface {
	// Append records an LLM API call.
	Append(ctx context.Context, entry RequestEntry) error

	// Summary returns aggregate counts over the whole log.
	Summary(ctx context.Context) (*RequestSummary, error)

	// Recent returns the newest entries, most recent first.
	Recent(ctx context.Context, limit int) ([]StoredRequest, error)

	// UsageByModel aggregates token usage per provider and model.
	UsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// RequestSummary aggregates the request log for the stats report.
type RequestSummary struct {
	TotalRequests int
	Failures      int
	InputTokens   int
	OutputTokens  int
}

type requestLogRepo struct {
	db *sql.DB
}

func (r *requestLogRepo) Append(ctx context.Context, entry RequestEntry) error {
	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_requests
		 (timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ts.Format(time.RFC3339), entry.Provider, entry.Model, entry.Purpose,
		entry.InputTokens, entry.OutputTokens, entry.LatencyMs, entry.Success, entry.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append request log: %w", err)
	}
	return nil
}

func (r *requestLogRepo) Summary(ctx context.Context) (*RequestSummary, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(input_tokens), 0),
		        COALESCE(SUM(output_tokens), 0)
		 FROM llm_requests`,
	)
	var s RequestSummary
	if err := row.Scan(&s.TotalRequests, &s.Failures, &s.InputTokens, &s.OutputTokens); err != nil {
		return nil, fmt.Errorf("request log summary: %w", err)
	}
	return &s, nil
}

func (r *requestLogRepo) Recent(ctx context.Context, limit int) ([]StoredRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message
		 FROM llm_requests ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query request log: %w", err)
	}
	defer rows.Close()

	var out []StoredRequest
	for rows.Next() {
		var sr StoredRequest
		var ts string
		if err := rows.Scan(&sr.ID, &ts, &sr.Provider, &sr.Model, &sr.Purpose,
			&sr.InputTokens, &sr.OutputTokens, &sr.LatencyMs, &sr.Success, &sr.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan request log: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			sr.Timestamp = t
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

func (r *requestLogRepo) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT provider, model, COUNT(*),
		        COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		 FROM llm_requests GROUP BY provider, model ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("query model usage: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Provider, &u.Model, &u.Requests, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
