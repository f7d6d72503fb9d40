package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo читает каталог из PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{
		pool: pool,
	}
}

// ListProducts возвращает неархивные товары в порядке отображения.
func (p *ProductRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, description, price::text, category, image_ref, stock
		FROM products
		WHERE NOT is_archived
		ORDER BY position, id
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var m converter.ProductModel
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.ImageRef, &m.Stock); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	products, err := converter.ToArrEntity(models)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, nil
}
