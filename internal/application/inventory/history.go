package inventory

import (
	"github.com/conectta/retaguarda/internal/application/dto"
	"github.com/conectta/retaguarda/internal/domain/entity"
	"github.com/conectta/retaguarda/internal/domain/repository"
)

// MovementHistoryUseCase lectura del ledger de movimientos (solo consulta,
// fuera de transacción; el ledger nunca se edita).
type MovementHistoryUseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewMovementHistoryUseCase construye el caso de uso.
func NewMovementHistoryUseCase(movementRepo repository.StockMovementRepository) *MovementHistoryUseCase {
	return &MovementHistoryUseCase{movementRepo: movementRepo}
}

// List devuelve movimientos paginados, opcionalmente filtrados por producto
// (productID <= 0 lista todos).
func (uc *MovementHistoryUseCase) List(productID, limit, offset int) ([]dto.MovimentacaoResponse, error) {
	var (
		movements []*entity.StockMovement
		err       error
	)
	if productID > 0 {
		movements, err = uc.movementRepo.ListByProduct(productID, limit, offset)
	} else {
		movements, err = uc.movementRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimentacaoResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovimentacaoResponse{
			ID:            m.ID,
			ProdutoID:     m.ProductID,
			Tipo:          m.Kind,
			Quantidade:    m.Quantity,
			UsuarioID:     m.ActorID,
			Justificativa: m.Justification,
			Data:          m.CreatedAt,
		})
	}
	return out, nil
}
