package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/conectta/retaguarda/internal/domain"
	"github.com/conectta/retaguarda/internal/domain/entity"
	"github.com/conectta/retaguarda/internal/domain/repository"
)

// StockEntryUseCase registra entradas de stock de forma transaccional:
// bloqueo de fila por producto (SELECT FOR UPDATE), suma de cantidad,
// sobreescritura opcional de precios y un movimiento PURCHASE_IN por ítem.
// Es, junto con ProcessSaleUseCase, el único escritor de StockQuantity.
type StockEntryUseCase struct {
	txRunner TxRunner
}

// NewStockEntryUseCase construye el caso de uso.
func NewStockEntryUseCase(txRunner TxRunner) *StockEntryUseCase {
	return &StockEntryUseCase{txRunner: txRunner}
}

// EntryInput entrada para RegisterEntry. ActorID viene del contexto de
// autenticación del request layer, nunca de una constante.
type EntryInput struct {
	ActorID       int
	Justificativa string // compartida por todos los ítems del lote
	Items         []EntryItem
}

// EntryItem un producto del lote. Los precios nuevos son pass-through: si
// vienen, sobreescriben el campo correspondiente sin validar positividad.
type EntryItem struct {
	ProductID    int
	Quantity     int
	NewCostPrice *decimal.Decimal
	NewSalePrice *decimal.Decimal
}

// RegisterEntry aplica el lote completo dentro de una transacción, en el
// orden de la lista. Si algún producto no existe la operación entera aborta
// sin aplicación parcial. Las entradas solo aumentan stock, no hay chequeo
// de oversell.
func (uc *StockEntryUseCase) RegisterEntry(ctx context.Context, input EntryInput) error {
	if input.ActorID <= 0 {
		return domain.ErrInvalidInput
	}
	// Lote vacío rechazado en validación, antes de abrir la transacción.
	if len(input.Items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range input.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	}

	now := time.Now()
	batchID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		for _, item := range input.Items {
			// Bloquea la fila del producto para serializar entradas
			// concurrentes sobre el mismo ID (evita lost updates).
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.NotFoundError{Resource: "produto", ID: item.ProductID}
			}

			if err := productRepo.UpdateStock(item.ProductID, product.StockQuantity+item.Quantity); err != nil {
				return err
			}
			if item.NewCostPrice != nil || item.NewSalePrice != nil {
				if err := productRepo.UpdatePrices(item.ProductID, item.NewCostPrice, item.NewSalePrice); err != nil {
					return err
				}
			}

			movement := &entity.StockMovement{
				BatchID:       batchID,
				ProductID:     item.ProductID,
				Kind:          entity.MovementPurchaseIn,
				Quantity:      item.Quantity,
				ActorID:       input.ActorID,
				Justification: input.Justificativa,
				CreatedAt:     now,
			}
			if err := movementRepo.Create(movement); err != nil {
				return err
			}
		}
		return nil
	})
}
