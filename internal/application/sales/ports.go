package sales

import (
	"context"

	"github.com/conectta/retaguarda/internal/domain/entity"
	"github.com/conectta/retaguarda/internal/domain/repository"
)

// SaleTxRunner ejecuta el procesamiento de venta dentro de una transacción,
// con los cuatro repositorios que la venta toca atados a esa tx: producto,
// ledger, venta y usuario. Commit total o rollback total.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		userRepo repository.UserRepository,
	) error) error
}

// ReceiptPDFGenerator renderiza el recibo de una venta persistida.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, buyer *entity.User, products map[int]*entity.Product) ([]byte, error)
}
