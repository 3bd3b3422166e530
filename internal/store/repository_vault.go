// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/alebedev/passvault/internal/logger"
	"github.com/alebedev/passvault/models"
	"github.com/google/uuid"
)

// vaultItemColumns lists the columns every vault query works with, in scan
// order.
var vaultItemColumns = []string{"id", "user_id", "title", "username", "password", "url", "notes", "created_at", "updated_at"}

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. Queries are built with squirrel; all of them carry a
// user_id predicate so a record can never cross its owner boundary.
type vaultRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewVaultRepository constructs a [VaultRepository] backed by the provided
// database connection and logger.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ListItems returns every vault item owned by userID, newest first.
func (r *vaultRepository) ListItems(ctx context.Context, userID int64) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(vaultItemColumns...).
		From("vault_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.ListItems").Msg("error listing vault items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0)
	for rows.Next() {
		var item models.VaultItem
		if err := scanVaultItem(rows, &item); err != nil {
			log.Err(err).Str("func", "*vaultRepository.ListItems").Msg("error scanning vault item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// CreateItem persists a new vault item and returns it with server-assigned
// fields (ID, CreatedAt, UpdatedAt) populated from the RETURNING clause.
func (r *vaultRepository) CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("vault_items").
		Columns("id", "user_id", "title", "username", "password", "url", "notes").
		Values(uuid.New(), item.UserID, item.Title, item.Username, item.Password, item.URL, item.Notes).
		Suffix("RETURNING " + joinColumns(vaultItemColumns)).
		ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.VaultItem
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanVaultItem(row, &created); err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateItem").Msg("error creating vault item")
		return models.VaultItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// UpdateItem overwrites the mutable fields of an existing item. The WHERE
// clause filters by both id and user_id, so updating someone else's item
// yields [ErrVaultItemNotFound], never a cross-owner write.
func (r *vaultRepository) UpdateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update("vault_items").
		SetMap(map[string]any{
			"title":      item.Title,
			"username":   item.Username,
			"password":   item.Password,
			"url":        item.URL,
			"notes":      item.Notes,
			"updated_at": sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": item.ID, "user_id": item.UserID}).
		Suffix("RETURNING " + joinColumns(vaultItemColumns)).
		ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.VaultItem
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanVaultItem(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultItem{}, ErrVaultItemNotFound
		}

		log.Err(err).Str("func", "*vaultRepository.UpdateItem").Msg("error updating vault item")
		return models.VaultItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteItem removes an item owned by userID. Deleting a missing or
// foreign item yields [ErrVaultItemNotFound].
func (r *vaultRepository) DeleteItem(ctx context.Context, userID int64, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete("vault_items").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.DeleteItem").Msg("error deleting vault item")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if deleted == 0 {
		return ErrVaultItemNotFound
	}

	return nil
}

// rowScanner is the subset of *sql.Row / *sql.Rows needed to scan one item.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVaultItem(row rowScanner, item *models.VaultItem) error {
	return row.Scan(
		&item.ID,
		&item.UserID,
		&item.Title,
		&item.Username,
		&item.Password,
		&item.URL,
		&item.Notes,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
