package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendaRequest body para POST /api/vendas.
type VendaRequest struct {
	MetodoPagamento string             `json:"metodoPagamento"`
	UsuarioID       int                `json:"usuarioId"`
	Itens           []ItemVendaRequest `json:"itens"`
}

// ItemVendaRequest una línea de la venta. PrecoUnitario lo fija el caller
// (permite promociones); no se rederiva del precio vigente del producto.
type ItemVendaRequest struct {
	ProdutoID     int             `json:"produtoId"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario"`
}

// VendaResponse la venta persistida con IDs generados y subtotales calculados.
type VendaResponse struct {
	ID              int                 `json:"id"`
	DataVenda       time.Time           `json:"dataVenda"`
	ValorTotal      decimal.Decimal     `json:"valorTotal"`
	MetodoPagamento string              `json:"metodoPagamento"`
	UsuarioID       int                 `json:"usuarioId"`
	Itens           []ItemVendaResponse `json:"itens"`
}

// ItemVendaResponse una línea persistida.
type ItemVendaResponse struct {
	ID            int             `json:"id"`
	ProdutoID     int             `json:"produtoId"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}
