package entity

import "time"

// Tipos de movimiento de stock (value object conceptual).
const (
	MovementPurchaseIn          = "PURCHASE_IN"          // entrada por compra
	MovementSaleOut             = "SALE_OUT"             // salida por venta
	MovementLossWriteOff        = "LOSS_WRITE_OFF"       // baja por pérdida
	MovementInventoryAdjustment = "INVENTORY_ADJUSTMENT" // ajuste de inventario
)

// StockMovement es un registro inmutable del ledger de stock: una creación
// por cada cambio de cantidad, nunca update ni delete. ProductID es
// referencia débil (lookup por ID); el historial sobrevive al producto.
type StockMovement struct {
	ID            int
	BatchID       string // agrupa los movimientos escritos por una misma operación del motor
	ProductID     int
	Kind          string // PURCHASE_IN, SALE_OUT, LOSS_WRITE_OFF, INVENTORY_ADJUSTMENT
	Quantity      int    // magnitud siempre positiva; el signo lo implica Kind
	ActorID       int    // usuario que ejecutó la operación
	Justification string // obligatoria en movimientos manuales
	CreatedAt     time.Time
}
