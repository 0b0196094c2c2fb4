package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/conectta/retaguarda/internal/domain"
	"github.com/conectta/retaguarda/internal/domain/entity"
	"github.com/conectta/retaguarda/internal/domain/repository"
)

// ProcessSaleUseCase procesa una venta como unidad de trabajo atómica:
// por cada línea bloquea la fila del producto, verifica que no haya oversell,
// da de baja el stock y registra la línea con snapshot de precio; al final
// persiste el agregado de venta y un movimiento SALE_OUT por línea.
// Cualquier fallo revierte todo lo escrito en la llamada.
type ProcessSaleUseCase struct {
	txRunner SaleTxRunner
}

// NewProcessSaleUseCase construye el caso de uso.
func NewProcessSaleUseCase(txRunner SaleTxRunner) *ProcessSaleUseCase {
	return &ProcessSaleUseCase{txRunner: txRunner}
}

// SaleInput entrada para ProcessSale.
type SaleInput struct {
	BuyerID       int
	PaymentMethod string
	Lines         []SaleLineInput
}

// SaleLineInput una línea solicitada. UnitPrice lo fija el caller (permite
// precios promocionales); no se rederiva del precio vigente del producto.
type SaleLineInput struct {
	ProductID int
	Quantity  int
	UnitPrice decimal.Decimal
}

// ProcessSale ejecuta la venta completa. Devuelve el agregado persistido con
// los IDs generados. Reglas:
//   - comprador inexistente → NotFoundError("usuario")
//   - producto inexistente → NotFoundError("produto"), aborta toda la venta
//   - stock insuficiente en cualquier línea → InsufficientStockError, aborta
//     toda la venta sin commit parcial
//   - subtotal = precoUnitario × quantidade con aritmética decimal exacta
func (uc *ProcessSaleUseCase) ProcessSale(ctx context.Context, input SaleInput) (*entity.Sale, error) {
	if input.BuyerID <= 0 || input.PaymentMethod == "" {
		return nil, domain.ErrInvalidInput
	}
	// Venta sin líneas rechazada en validación, antes de abrir la transacción.
	if len(input.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range input.Lines {
		if line.ProductID <= 0 || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	batchID := uuid.New().String()

	var sale *entity.Sale
	err := uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		userRepo repository.UserRepository,
	) error {
		buyer, err := userRepo.GetByID(input.BuyerID)
		if err != nil {
			return err
		}
		if buyer == nil {
			return &domain.NotFoundError{Resource: "usuario", ID: input.BuyerID}
		}

		total := decimal.Zero
		lines := make([]entity.SaleLine, 0, len(input.Lines))
		for _, in := range input.Lines {
			// Bloquea la fila del producto: dos ventas concurrentes sobre el
			// mismo producto se serializan y el chequeo de oversell nunca lee
			// una cantidad obsoleta.
			product, err := productRepo.GetForUpdate(in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.NotFoundError{Resource: "produto", ID: in.ProductID}
			}
			if product.StockQuantity < in.Quantity {
				return &domain.InsufficientStockError{
					ProductID: in.ProductID,
					Available: product.StockQuantity,
					Requested: in.Quantity,
				}
			}

			if err := productRepo.UpdateStock(in.ProductID, product.StockQuantity-in.Quantity); err != nil {
				return err
			}

			subtotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
			lines = append(lines, entity.SaleLine{
				ProductID: in.ProductID,
				Quantity:  in.Quantity,
				UnitPrice: in.UnitPrice,
				Subtotal:  subtotal,
			})
			total = total.Add(subtotal)
		}

		// La venta se persiste antes que los movimientos para que la
		// justificación del ledger referencie un ID real.
		sale = &entity.Sale{
			Date:          now,
			TotalAmount:   total,
			PaymentMethod: input.PaymentMethod,
			BuyerID:       input.BuyerID,
			Lines:         lines,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		for _, line := range sale.Lines {
			movement := &entity.StockMovement{
				BatchID:       batchID,
				ProductID:     line.ProductID,
				Kind:          entity.MovementSaleOut,
				Quantity:      line.Quantity,
				ActorID:       input.BuyerID,
				Justification: fmt.Sprintf("Venda #%d", sale.ID),
				CreatedAt:     now,
			}
			if err := movementRepo.Create(movement); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}
