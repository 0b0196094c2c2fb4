package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntradaEstoqueRequest body para POST /api/estoque/entradas.
// Los nombres de campo siguen el contrato del frontend (camelCase portugués).
type EntradaEstoqueRequest struct {
	Justificativa string        `json:"justificativa"`
	Produtos      []ItemEntrada `json:"produtos"`
}

// ItemEntrada un producto dentro del lote de entrada. Los precios nuevos son
// opcionales: si vienen, sobreescriben el precio vigente sin validación.
type ItemEntrada struct {
	ProdutoID      int              `json:"produtoId"`
	Quantidade     int              `json:"quantidade"`
	NovoPrecoCusto *decimal.Decimal `json:"novoPrecoCusto,omitempty"`
	NovoPrecoVenda *decimal.Decimal `json:"novoPrecoVenda,omitempty"`
}

// MovimentacaoResponse un registro del ledger en respuestas de historial.
type MovimentacaoResponse struct {
	ID            int       `json:"id"`
	ProdutoID     int       `json:"produtoId"`
	Tipo          string    `json:"tipoMovimentacao"`
	Quantidade    int       `json:"quantidade"`
	UsuarioID     int       `json:"usuarioId"`
	Justificativa string    `json:"justificativa"`
	Data          time.Time `json:"dataMovimentacao"`
}
