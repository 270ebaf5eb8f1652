package product

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/repository"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/inventory"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	query := `
		INSERT INTO products (id, seller_id, name, price, stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, seller_id, name, price::float8, stock, created_at, updated_at
	`

	var productDB ProductDB
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		productModify.SellerID,
		pointer.Get(productModify.Name),
		pointer.Get(productModify.Price),
		pointer.Get(productModify.Stock),
	).Scan(
		&productDB.ID,
		&productDB.SellerID,
		&productDB.Name,
		&productDB.Price,
		&productDB.Stock,
		&productDB.CreatedAt,
		&productDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("seller does not exist: %w", inventory.ErrForbidden)
		}
		return nil, fmt.Errorf("unexpected product repository create error: %w", err)
	}

	return ToDomain(&productDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Product, error) {
	query := `
		SELECT id, seller_id, name, price::float8, stock, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var productDB ProductDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&productDB.ID,
		&productDB.SellerID,
		&productDB.Name,
		&productDB.Price,
		&productDB.Stock,
		&productDB.CreatedAt,
		&productDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, inventory.ErrProductNotFound
		}
		return nil, fmt.Errorf("unexpected product repository getbyid error: %w", err)
	}

	return ToDomain(&productDB), nil
}

// DecrementStock безусловно уменьшает остаток и возвращает новое значение.
func (r *Repository) DecrementStock(ctx context.Context, id string, quantity int) (int, error) {
	query := `
		UPDATE products
		SET stock = stock - $2,
			updated_at = NOW()
		WHERE id = $1
		RETURNING stock
	`

	var stock int
	err := r.querier.QueryRow(ctx, query, id, quantity).Scan(&stock)
	if err != nil {
		if repository.IsNotFound(err) {
			return 0, inventory.ErrProductNotFound
		}
		return 0, fmt.Errorf("unexpected product repository decrement stock error: %w", err)
	}

	return stock, nil
}
