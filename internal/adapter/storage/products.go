package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/sportshop/internal/core/domain"
	"github.com/niksmo/sportshop/internal/core/port"
)

var _ port.ProductsStorage = (*CatalogRepository)(nil)

// A CatalogRepository persists the last loaded product snapshot, so
// the service can start while the catalog provider is down.
type CatalogRepository struct {
	sqldb sqldb
}

func NewCatalogRepository(sqldb sqldb) CatalogRepository {
	return CatalogRepository{sqldb}
}

// StoreProducts replaces the cached snapshot with vs, keeping the
// source order in the position column.
func (r CatalogRepository) StoreProducts(
	ctx context.Context, vs []domain.Product,
) (storeErr error) {
	const op = "CatalogRepository.StoreProducts"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if storeErr == nil {
			if err := tx.Commit(); err != nil {
				storeErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM products;`); err != nil {
		return fmt.Errorf("%s: failed to clear snapshot: %w", op, err)
	}

	query := `
		INSERT INTO products (
			position, id, name, category, price,
			image_url, description, featured, popular
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare stmt: %w", op, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for i, v := range vs {
		_, err := stmt.ExecContext(ctx,
			i, v.ID, v.Name, v.Category, v.Price,
			v.ImageURL, v.Description, v.Featured, v.Popular,
		)
		if err != nil {
			return fmt.Errorf("%s: failed to exec: %w", op, err)
		}
	}

	return nil
}

// ReadProducts returns the cached snapshot in its original order.
func (r CatalogRepository) ReadProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "CatalogRepository.ReadProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, name, category, price,
			image_url, description, featured, popular
		FROM products
		ORDER BY position ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var vs []domain.Product
	for rows.Next() {
		var v domain.Product
		err := rows.Scan(
			&v.ID, &v.Name, &v.Category, &v.Price,
			&v.ImageURL, &v.Description, &v.Featured, &v.Popular,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		vs = append(vs, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(vs) == 0 {
		return nil, fmt.Errorf("%s: empty snapshot: %w", op, domain.ErrNotFound)
	}
	return vs, nil
}
