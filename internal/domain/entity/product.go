package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo minorista.
// StockQuantity es la cantidad disponible (bodega única) y solo la muta el
// motor de inventario; el CRUD de catálogo actualiza el resto de campos.
type Product struct {
	ID            int
	Barcode       string // código de barras (opcional, no único en la práctica)
	Name          string
	Description   string
	Category      string
	Supplier      string
	CostPrice     decimal.Decimal // precio de costo
	SalePrice     decimal.Decimal // precio de venta
	StockQuantity int             // invariante: >= 0 tras cada transacción
	MinimumStock  int             // umbral de alerta de stock bajo
	UnitMeasure   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
