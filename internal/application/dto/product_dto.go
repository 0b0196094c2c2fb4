package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProdutoRequest body para POST /api/produtos.
// quantidadeEstoque inicial se acepta en el alta; después solo la muta el
// motor de inventario.
type CreateProdutoRequest struct {
	CodigoBarras      string          `json:"codigoBarras"`
	Nome              string          `json:"nome"`
	Descricao         string          `json:"descricao"`
	Categoria         string          `json:"categoria"`
	Fornecedor        string          `json:"fornecedor"`
	PrecoCusto        decimal.Decimal `json:"precoCusto"`
	PrecoVenda        decimal.Decimal `json:"precoVenda"`
	QuantidadeEstoque int             `json:"quantidadeEstoque"`
	EstoqueMinimo     int             `json:"estoqueMinimo"`
	UnidadeMedida     string          `json:"unidadeMedida"`
}

// UpdateProdutoRequest body para PUT /api/produtos/:id. Campos en nil no se
// tocan. No incluye quantidadeEstoque: el stock solo cambia vía movimientos.
type UpdateProdutoRequest struct {
	CodigoBarras  *string          `json:"codigoBarras,omitempty"`
	Nome          *string          `json:"nome,omitempty"`
	Descricao     *string          `json:"descricao,omitempty"`
	Categoria     *string          `json:"categoria,omitempty"`
	Fornecedor    *string          `json:"fornecedor,omitempty"`
	PrecoCusto    *decimal.Decimal `json:"precoCusto,omitempty"`
	PrecoVenda    *decimal.Decimal `json:"precoVenda,omitempty"`
	EstoqueMinimo *int             `json:"estoqueMinimo,omitempty"`
	UnidadeMedida *string          `json:"unidadeMedida,omitempty"`
}

// ProdutoResponse representación de un producto en respuestas.
type ProdutoResponse struct {
	ID                int             `json:"id"`
	CodigoBarras      string          `json:"codigoBarras"`
	Nome              string          `json:"nome"`
	Descricao         string          `json:"descricao"`
	Categoria         string          `json:"categoria"`
	Fornecedor        string          `json:"fornecedor"`
	PrecoCusto        decimal.Decimal `json:"precoCusto"`
	PrecoVenda        decimal.Decimal `json:"precoVenda"`
	QuantidadeEstoque int             `json:"quantidadeEstoque"`
	EstoqueMinimo     int             `json:"estoqueMinimo"`
	UnidadeMedida     string          `json:"unidadeMedida"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
