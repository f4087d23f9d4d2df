package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"go-produtos-api/internal/model"
)

const productTable = "produto"

var productColumns = []string{"id", "descricao", "valor", "marca"}

type ProductRepository struct {
	db Querier
}

func NewProductRepository(db Querier) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	query, args, err := psql.Select(productColumns...).From(productTable).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list products: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Descricao, &p.Valor, &p.Marca); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	query, args, err := psql.Select(productColumns...).From(productTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.Product{}, fmt.Errorf("build find product: %w", err)
	}

	var p model.Product
	err = r.db.QueryRow(ctx, query, args...).Scan(&p.ID, &p.Descricao, &p.Valor, &p.Marca)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Product{}, model.ErrProductNotFound
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("find product by id: %w", err)
	}

	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, in model.ProductInput) (int64, error) {
	query, args, err := psql.Insert(productTable).
		Columns("descricao", "valor", "marca").
		Values(in.Descricao, in.Valor, in.Marca).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build create product: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}

	return id, nil
}

func (r *ProductRepository) Update(ctx context.Context, id int64, in model.ProductInput) error {
	query, args, err := psql.Update(productTable).
		Set("descricao", in.Descricao).
		Set("valor", in.Valor).
		Set("marca", in.Marca).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update product: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(productTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete product: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}
