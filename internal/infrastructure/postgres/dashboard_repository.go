package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/conectta/retaguarda/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el panel. Siempre sobre el
// pool: nunca participa en transacciones del motor.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

func (r *DashboardRepo) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountProducts total de productos del catálogo.
func (r *DashboardRepo) CountProducts(ctx context.Context) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM products`)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountProducts: %w", err)
	}
	return n, nil
}

// CountLowStock productos con stock bajo: 0 < cantidad <= mínimo.
func (r *DashboardRepo) CountLowStock(ctx context.Context) (int64, error) {
	n, err := r.count(ctx,
		`SELECT COUNT(*) FROM products WHERE stock_quantity > 0 AND stock_quantity <= minimum_stock`)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountLowStock: %w", err)
	}
	return n, nil
}

// CountOutOfStock productos con cantidad en cero.
func (r *DashboardRepo) CountOutOfStock(ctx context.Context) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM products WHERE stock_quantity = 0`)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountOutOfStock: %w", err)
	}
	return n, nil
}

// CountUsers total de usuarios registrados.
func (r *DashboardRepo) CountUsers(ctx context.Context) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountUsers: %w", err)
	}
	return n, nil
}

// SalesStats número de ventas y facturación en [from, to).
// COALESCE devuelve cero en períodos sin ventas.
func (r *DashboardRepo) SalesStats(ctx context.Context, from, to time.Time) (int64, decimal.Decimal, error) {
	const query = `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM sales WHERE sale_date >= $1 AND sale_date < $2`
	var (
		count   int64
		revenue decimal.Decimal
	)
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&count, &revenue); err != nil {
		return 0, decimal.Zero, fmt.Errorf("dashboard.SalesStats: %w", err)
	}
	return count, revenue, nil
}

// TopProducts productos más vendidos por unidades acumuladas, con la
// facturación de cada uno. El LEFT JOIN conserva líneas cuyo producto fue
// borrado del catálogo (referencia débil).
func (r *DashboardRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	const query = `
		SELECT si.product_id,
		       COALESCE(p.name, ''),
		       COALESCE(p.category, ''),
		       SUM(si.quantity)   AS units_sold,
		       SUM(si.subtotal)   AS revenue
		FROM sale_items si
		LEFT JOIN products p ON p.id = si.product_id
		GROUP BY si.product_id, p.name, p.category
		ORDER BY units_sold DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.TopProducts: %w", err)
	}
	defer rows.Close()
	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Category, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("dashboard.TopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
