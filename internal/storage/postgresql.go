// Package storage реализует хранилище документов на PostgreSQL: каждая
// запись коллекции хранится как JSONB-документ с id, владельцем и
// порядковым номером первой вставки.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/cobusiness02/forgefyt/internal/collection"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New открывает подключение к PostgreSQL и проверяет его.
func New(ctx context.Context, storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Storage{DB: db}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// Documents реализует collection.Store для одной коллекции.
type Documents[T any, P collection.Entity[T]] struct {
	db         *sql.DB
	collection string
}

// NewDocuments возвращает хранилище документов коллекции name.
func NewDocuments[T any, P collection.Entity[T]](s *Storage, name string) *Documents[T, P] {
	return &Documents[T, P]{db: s.DB, collection: name}
}

// List возвращает документы коллекции в порядке первой вставки.
func (d *Documents[T, P]) List(ctx context.Context) ([]T, error) {
	const op = "storage.Documents.List"

	rows, err := d.db.QueryContext(ctx,
		`SELECT body FROM documents WHERE collection = $1 ORDER BY seq`, d.collection)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		var item T
		if err := json.Unmarshal(body, &item); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// Get возвращает документ по id или collection.ErrNotFound.
func (d *Documents[T, P]) Get(ctx context.Context, id string) (T, error) {
	const op = "storage.Documents.Get"
	var item T

	var body []byte
	err := d.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = $1 AND id = $2`, d.collection, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return item, fmt.Errorf("%s: %w", op, collection.ErrNotFound)
	}
	if err != nil {
		return item, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(body, &item); err != nil {
		return item, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

// Put вставляет документ или заменяет существующий, сохраняя его порядковый номер.
func (d *Documents[T, P]) Put(ctx context.Context, item T) error {
	const op = "storage.Documents.Put"

	meta := P(&item).Meta()
	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	_, err = d.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, owner_id, body)
		VALUES ($1, $2, $3, $4::jsonb)
		ON CONFLICT (collection, id)
		DO UPDATE SET owner_id = EXCLUDED.owner_id, body = EXCLUDED.body, updated_at = now()`,
		d.collection, meta.ID, meta.OwnerID, string(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Delete удаляет документ. Отсутствие документа не ошибка.
func (d *Documents[T, P]) Delete(ctx context.Context, id string) error {
	const op = "storage.Documents.Delete"

	_, err := d.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`, d.collection, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
