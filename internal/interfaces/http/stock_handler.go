package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/conectta/retaguarda/internal/application/dto"
	"github.com/conectta/retaguarda/internal/application/inventory"
	"github.com/conectta/retaguarda/internal/domain"
)

// StockHandler maneja entradas de stock e historial de movimientos (protegido).
type StockHandler struct {
	entry   *inventory.StockEntryUseCase
	history *inventory.MovementHistoryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(entry *inventory.StockEntryUseCase, history *inventory.MovementHistoryUseCase) *StockHandler {
	return &StockHandler{entry: entry, history: history}
}

// RegisterEntry godoc
// @Summary      Registrar entrada de estoque
// @Description  Aplica un lote de entradas dentro de una transacción: suma
//               cantidades, sobreescribe precios si vienen y registra un
//               movimiento PURCHASE_IN por ítem. Todo o nada.
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntradaEstoqueRequest  true  "justificativa, produtos[{produtoId, quantidade, novoPrecoCusto?, novoPrecoVenda?}]"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/estoque/entradas [post]
func (h *StockHandler) RegisterEntry(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID <= 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.EntradaEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := inventory.EntryInput{
		ActorID:       actorID,
		Justificativa: in.Justificativa,
		Items:         make([]inventory.EntryItem, 0, len(in.Produtos)),
	}
	for _, p := range in.Produtos {
		input.Items = append(input.Items, inventory.EntryItem{
			ProductID:    p.ProdutoID,
			Quantity:     p.Quantidade,
			NewCostPrice: p.NovoPrecoCusto,
			NewSalePrice: p.NovoPrecoVenda,
		})
	}

	if err := h.entry.RegisterEntry(c.Context(), input); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lote vacío o cantidades no positivas"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "entrada registrada"})
}

// ListMovements godoc
// @Summary      Historial de movimentações
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        produtoId  query  int  false  "Filtrar por producto"
// @Param        limit      query  int  false  "Límite"  default(50)
// @Param        offset     query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.MovimentacaoResponse
// @Router       /api/estoque/movimentacoes [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	productID := c.QueryInt("produtoId", 0)
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.history.List(productID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
