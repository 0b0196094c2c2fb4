package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/conectta/retaguarda/internal/application/dto"
	"github.com/conectta/retaguarda/internal/application/sales"
	"github.com/conectta/retaguarda/internal/domain"
	"github.com/conectta/retaguarda/internal/domain/entity"
)

// SaleHandler maneja el procesamiento de ventas y el recibo PDF (protegido).
type SaleHandler struct {
	process *sales.ProcessSaleUseCase
	receipt *sales.ReceiptUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(process *sales.ProcessSaleUseCase, receipt *sales.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{process: process, receipt: receipt}
}

// Create godoc
// @Summary      Procesar venta
// @Description  Da de baja el stock de todas las líneas, persiste la venta y
//               registra un movimiento SALE_OUT por línea, todo en una
//               transacción. Stock insuficiente en cualquier línea aborta la
//               venta completa con 409.
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VendaRequest  true  "metodoPagamento, usuarioId, itens[{produtoId, quantidade, precoUnitario}]"
// @Success      201   {object}  dto.VendaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.VendaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := sales.SaleInput{
		BuyerID:       in.UsuarioID,
		PaymentMethod: in.MetodoPagamento,
		Lines:         make([]sales.SaleLineInput, 0, len(in.Itens)),
	}
	for _, item := range in.Itens {
		input.Lines = append(input.Lines, sales.SaleLineInput{
			ProductID: item.ProdutoID,
			Quantity:  item.Quantidade,
			UnitPrice: item.PrecoUnitario,
		})
	}

	sale, err := h.process.ProcessSale(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "venta sin líneas o con datos inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toVendaResponse(sale))
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.VendaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	sale, err := h.receipt.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if sale == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(toVendaResponse(sale))
}

// DownloadReceipt godoc
// @Summary      Descargar recibo de venta en PDF
// @Tags         vendas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id}/recibo [get]
func (h *SaleHandler) DownloadReceipt(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	pdfBytes, filename, err := h.receipt.DownloadReceiptPDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

func toVendaResponse(sale *entity.Sale) dto.VendaResponse {
	out := dto.VendaResponse{
		ID:              sale.ID,
		DataVenda:       sale.Date,
		ValorTotal:      sale.TotalAmount,
		MetodoPagamento: sale.PaymentMethod,
		UsuarioID:       sale.BuyerID,
		Itens:           make([]dto.ItemVendaResponse, 0, len(sale.Lines)),
	}
	for _, line := range sale.Lines {
		out.Itens = append(out.Itens, dto.ItemVendaResponse{
			ID:            line.ID,
			ProdutoID:     line.ProductID,
			Quantidade:    line.Quantity,
			PrecoUnitario: line.UnitPrice,
			Subtotal:      line.Subtotal,
		})
	}
	return out
}
