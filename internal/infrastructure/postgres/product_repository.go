package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/conectta/retaguarda/internal/domain/entity"
	"github.com/conectta/retaguarda/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, barcode, name, description, category, supplier,
	cost_price, sale_price, stock_quantity, minimum_stock, unit_measure, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y deja el ID generado en la entidad.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (barcode, name, description, category, supplier, cost_price, sale_price, stock_quantity, minimum_stock, unit_measure, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Barcode, product.Name, product.Description, product.Category, product.Supplier,
		product.CostPrice, product.SalePrice, product.StockQuantity, product.MinimumStock,
		product.UnitMeasure, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Barcode, &p.Name, &p.Description, &p.Category, &p.Supplier,
		&p.CostPrice, &p.SalePrice, &p.StockQuantity, &p.MinimumStock,
		&p.UnitMeasure, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetByID obtiene un producto por ID. Devuelve nil sin error si no existe.
func (r *ProductRepo) GetByID(id int) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción: serializa los escritores
// concurrentes de stock_quantity sobre el mismo producto.
func (r *ProductRepo) GetForUpdate(id int) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Barcode, &p.Name, &p.Description, &p.Category, &p.Supplier,
			&p.CostPrice, &p.SalePrice, &p.StockQuantity, &p.MinimumStock,
			&p.UnitMeasure, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los campos de catálogo. No toca stock_quantity: la
// cantidad solo cambia vía UpdateStock desde el motor de inventario.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET barcode = $2, name = $3, description = $4, category = $5, supplier = $6,
			cost_price = $7, sale_price = $8, minimum_stock = $9, unit_measure = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Barcode, product.Name, product.Description, product.Category,
		product.Supplier, product.CostPrice, product.SalePrice, product.MinimumStock,
		product.UnitMeasure, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock fija la cantidad en stock (uso exclusivo del motor de inventario,
// dentro de una tx con la fila ya bloqueada).
func (r *ProductRepo) UpdateStock(id int, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// UpdatePrices sobreescribe precio de costo y/o de venta (nil = no tocar).
func (r *ProductRepo) UpdatePrices(id int, costPrice, salePrice *decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET cost_price = COALESCE($2, cost_price), sale_price = COALESCE($3, sale_price), updated_at = now() WHERE id = $1`,
		id, costPrice, salePrice,
	)
	if err != nil {
		return fmt.Errorf("update product prices: %w", err)
	}
	return nil
}

// ExistsByID verifica existencia por ID.
func (r *ProductRepo) ExistsByID(id int) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product exists: %w", err)
	}
	return exists, nil
}

// IsReferenced verifica si líneas de venta o movimientos apuntan al producto.
func (r *ProductRepo) IsReferenced(id int) (bool, error) {
	var referenced bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS(SELECT 1 FROM sale_items WHERE product_id = $1)
		    OR EXISTS(SELECT 1 FROM stock_movements WHERE product_id = $1)`, id,
	).Scan(&referenced)
	if err != nil {
		return false, fmt.Errorf("product referenced: %w", err)
	}
	return referenced, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
