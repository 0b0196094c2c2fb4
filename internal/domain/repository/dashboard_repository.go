package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult fila de la consulta de más vendidos: unidades y facturación
// acumuladas por producto sobre las líneas de venta.
type TopProductResult struct {
	ProductID int
	Name      string
	Category  string
	UnitsSold int64
	Revenue   decimal.Decimal
}

// DashboardRepository consultas de solo lectura para el dashboard.
// Nunca muta estado; composición pura de agregaciones SQL.
type DashboardRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	CountOutOfStock(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	SalesStats(ctx context.Context, from, to time.Time) (count int64, revenue decimal.Decimal, err error)
	TopProducts(ctx context.Context, limit int) ([]TopProductResult, error)
}
