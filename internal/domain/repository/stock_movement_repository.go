package repository

import "github.com/conectta/retaguarda/internal/domain/entity"

// StockMovementRepository puerto del ledger de movimientos: append-only.
// No expone update ni delete; el historial es inmutable.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID int, limit, offset int) ([]*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
}
