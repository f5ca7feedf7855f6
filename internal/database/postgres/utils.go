package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// parseProfileUUID parses a profile ID string with a consistent error message
func parseProfileUUID(profileID string) (uuid.UUID, error) {
	u, err := uuid.Parse(profileID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid profile id: %w", err)
	}
	return u, nil
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// queryDocuments decodes the single JSONB column of every row into T
func queryDocuments[T any](ctx context.Context, q querier, sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		var (
			raw []byte
			doc T
		)
		if err := row.Scan(&raw); err != nil {
			return doc, err
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return doc, fmt.Errorf("failed to decode document: %w", err)
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}
