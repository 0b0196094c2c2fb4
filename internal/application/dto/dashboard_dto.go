package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO totales generales del panel (cards superiores).
type DashboardStatsDTO struct {
	TotalProdutos        int64 `json:"totalProdutos"`
	ProdutosEstoqueBaixo int64 `json:"produtosEstoqueBaixo"`
	ProdutosForaEstoque  int64 `json:"produtosForaDeEstoque"`
	TotalUsuarios        int64 `json:"totalUsuarios"`
	UsuariosAtivos       int64 `json:"usuariosAtivos"`
}

// VendaStatsDTO ventas y facturación de un día calendario.
type VendaStatsDTO struct {
	Vendas      int64           `json:"vendas"`
	Faturamento decimal.Decimal `json:"faturamento"`
	Transacoes  int64           `json:"transacoes"`
}

// TopProdutoDTO un producto del top-5 por unidades vendidas.
type TopProdutoDTO struct {
	ID               int             `json:"id"`
	Nome             string          `json:"nome"`
	Categoria        string          `json:"categoria"`
	UnidadesVendidas int64           `json:"unidadesVendidas"`
	Receita          decimal.Decimal `json:"receita"`
}
