package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/conectta/retaguarda/internal/domain/entity"
	"github.com/conectta/retaguarda/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del agregado de venta sobre PostgreSQL (usable con
// pool o tx). Cabecera en sales, líneas en sale_items con FK ON DELETE CASCADE.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste cabecera y líneas como un solo agregado, en la transacción
// del caller, y deja los IDs generados en la entidad.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	ctx := context.Background()
	err := r.q.QueryRow(ctx, `
		INSERT INTO sales (sale_date, total_amount, payment_method, buyer_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		sale.Date, sale.TotalAmount, sale.PaymentMethod, sale.BuyerID,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	for i := range sale.Lines {
		line := &sale.Lines[i]
		line.SaleID = sale.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			line.SaleID, line.ProductID, line.Quantity, line.UnitPrice, line.Subtotal,
		).Scan(&line.ID)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID carga el agregado completo: cabecera + líneas en orden de inserción.
// Devuelve nil sin error si la venta no existe.
func (r *SaleRepo) GetByID(id int) (*entity.Sale, error) {
	ctx := context.Background()
	var s entity.Sale
	err := r.q.QueryRow(ctx, `
		SELECT id, sale_date, total_amount, payment_method, buyer_id
		FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.Date, &s.TotalAmount, &s.PaymentMethod, &s.BuyerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, sale_id, product_id, quantity, unit_price, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY id ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.SaleLine
		if err := rows.Scan(&line.ID, &line.SaleID, &line.ProductID, &line.Quantity,
			&line.UnitPrice, &line.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		s.Lines = append(s.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}
