package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es el agregado de venta: cabecera + líneas. Inmutable una vez
// persistido; las líneas no existen fuera de su venta (cascade delete).
// Invariante: TotalAmount == Σ Lines[i].Subtotal.
type Sale struct {
	ID            int
	Date          time.Time
	TotalAmount   decimal.Decimal
	PaymentMethod string
	BuyerID       int // usuario operador de la venta
	Lines         []SaleLine
}

// SaleLine captura el snapshot de precio al momento de la venta:
// UnitPrice es el que envió el caller, independiente del precio vigente del
// producto. Subtotal == Quantity × UnitPrice, aritmética decimal exacta.
type SaleLine struct {
	ID        int
	SaleID    int
	ProductID int // referencia débil, el historial de precios sobrevive al producto
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
