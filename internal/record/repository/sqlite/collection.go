package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

const (
	queryList   = `SELECT body FROM records WHERE collection = ? ORDER BY rowid`
	queryInsert = `INSERT INTO records (collection, id, body) VALUES (?, ?, ?)`
)

func listCollection[T any](ctx context.Context, db *sql.DB, collection string) ([]T, error) {
	rows, err := db.QueryContext(ctx, queryList, collection)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer rows.Close()

	records := []T{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		var rec T
		if err := json.Unmarshal([]byte(body), &rec); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", collection, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}

	return records, nil
}

func insertRecord(ctx context.Context, db *sql.DB, collection string, id int64, rec any) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", collection, err)
	}
	if _, err := db.ExecContext(ctx, queryInsert, collection, id, string(body)); err != nil {
		return fmt.Errorf("insert %s record %d: %w", collection, id, err)
	}
	return nil
}
