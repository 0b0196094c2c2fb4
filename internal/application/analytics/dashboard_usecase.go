// Package analytics contiene los casos de uso de reportes del dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/conectta/retaguarda/internal/application/dto"
	"github.com/conectta/retaguarda/internal/domain/repository"
)

const dashboardTopProducts = 5 // número de productos en el widget de más vendidos

// DashboardUseCase compone los números del panel sobre consultas read-only.
// No accede directamente a las tablas; delega todo en DashboardRepository y
// nunca muta estado.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetStats devuelve los totales generales (cards superiores del panel).
//
// Cuatro consultas en paralelo: total de productos, stock bajo
// (0 < cantidad <= mínimo), fuera de stock (cantidad == 0) y usuarios.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type countResult struct {
		n   int64
		err error
	}

	productsCh := make(chan countResult, 1)
	lowCh := make(chan countResult, 1)
	outCh := make(chan countResult, 1)
	usersCh := make(chan countResult, 1)

	go func() {
		n, err := uc.dashboardRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountLowStock(ctx)
		lowCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountOutOfStock(ctx)
		outCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountUsers(ctx)
		usersCh <- countResult{n, err}
	}()

	products := <-productsCh
	low := <-lowCh
	out := <-outCh
	users := <-usersCh

	for _, r := range []countResult{products, low, out, users} {
		if r.err != nil {
			return nil, fmt.Errorf("dashboard: stats: %w", r.err)
		}
	}

	// "Usuarios activos" sigue siendo una simulación heredada del sistema
	// original: no hay campo de sesión/estado del cual derivarlo.
	active := users.n
	if active > 0 {
		active--
	}

	return &dto.DashboardStatsDTO{
		TotalProdutos:        products.n,
		ProdutosEstoqueBaixo: low.n,
		ProdutosForaEstoque:  out.n,
		TotalUsuarios:        users.n,
		UsuariosAtivos:       active,
	}, nil
}

// GetSalesStats calcula las ventas de un día calendario: límites de
// medianoche local a medianoche local.
func (uc *DashboardUseCase) GetSalesStats(ctx context.Context, day time.Time) (*dto.VendaStatsDTO, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	count, revenue, err := uc.dashboardRepo.SalesStats(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ventas del día: %w", err)
	}
	// El número de transacciones se considera igual al de ventas.
	return &dto.VendaStatsDTO{
		Vendas:      count,
		Faturamento: revenue,
		Transacoes:  count,
	}, nil
}

// GetTopProducts devuelve los 5 productos más vendidos por unidades.
func (uc *DashboardUseCase) GetTopProducts(ctx context.Context) ([]dto.TopProdutoDTO, error) {
	rows, err := uc.dashboardRepo.TopProducts(ctx, dashboardTopProducts)
	if err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", err)
	}
	out := make([]dto.TopProdutoDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProdutoDTO{
			ID:               r.ProductID,
			Nome:             r.Name,
			Categoria:        r.Category,
			UnidadesVendidas: r.UnitsSold,
			Receita:          r.Revenue,
		})
	}
	return out, nil
}
