package sales_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectta/retaguarda/internal/application/sales"
	"github.com/conectta/retaguarda/internal/domain"
	"github.com/conectta/retaguarda/internal/domain/entity"
	"github.com/conectta/retaguarda/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: estado compartido + runner transaccional con rollback
// ──────────────────────────────────────────────────────────────────────────────

type saleStore struct {
	mu         sync.Mutex
	products   map[int]*entity.Product
	users      map[int]*entity.User
	sales      map[int]*entity.Sale
	movements  []*entity.StockMovement
	nextSaleID int
	nextLineID int
	nextMovID  int
}

func newSaleStore() *saleStore {
	return &saleStore{
		products:   make(map[int]*entity.Product),
		users:      make(map[int]*entity.User),
		sales:      make(map[int]*entity.Sale),
		nextSaleID: 1,
		nextLineID: 1,
		nextMovID:  1,
	}
}

func (s *saleStore) addProduct(p *entity.Product) { cp := *p; s.products[p.ID] = &cp }
func (s *saleStore) addUser(u *entity.User)       { cp := *u; s.users[u.ID] = &cp }

func (s *saleStore) product(id int) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id]
}

type saleProductRepo struct{ s *saleStore }

func (r *saleProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *saleProductRepo) GetByID(id int) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *saleProductRepo) GetForUpdate(id int) (*entity.Product, error) { return r.GetByID(id) }
func (r *saleProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *saleProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *saleProductRepo) UpdateStock(id int, quantity int) error {
	p, ok := r.s.products[id]
	if !ok {
		return &domain.NotFoundError{Resource: "produto", ID: id}
	}
	p.StockQuantity = quantity
	return nil
}
func (r *saleProductRepo) UpdatePrices(id int, costPrice, salePrice *decimal.Decimal) error {
	return nil
}
func (r *saleProductRepo) ExistsByID(id int) (bool, error) {
	_, ok := r.s.products[id]
	return ok, nil
}
func (r *saleProductRepo) Delete(id int) error               { delete(r.s.products, id); return nil }
func (r *saleProductRepo) IsReferenced(id int) (bool, error) { return false, nil }

type saleMovementRepo struct{ s *saleStore }

func (r *saleMovementRepo) Create(m *entity.StockMovement) error {
	m.ID = r.s.nextMovID
	r.s.nextMovID++
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r *saleMovementRepo) ListByProduct(productID int, limit, offset int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *saleMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	return r.s.movements, nil
}

type saleSaleRepo struct{ s *saleStore }

func (r *saleSaleRepo) Create(sale *entity.Sale) error {
	sale.ID = r.s.nextSaleID
	r.s.nextSaleID++
	for i := range sale.Lines {
		sale.Lines[i].ID = r.s.nextLineID
		sale.Lines[i].SaleID = sale.ID
		r.s.nextLineID++
	}
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}
func (r *saleSaleRepo) GetByID(id int) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

type saleUserRepo struct{ s *saleStore }

func (r *saleUserRepo) Create(u *entity.User) error { r.s.users[u.ID] = u; return nil }
func (r *saleUserRepo) GetByID(id int) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *saleUserRepo) GetByLogin(login string) (*entity.User, error) { return nil, nil }
func (r *saleUserRepo) List() ([]*entity.User, error)                 { return nil, nil }
func (r *saleUserRepo) Update(u *entity.User) error                   { return nil }
func (r *saleUserRepo) ExistsByID(id int) (bool, error) {
	_, ok := r.s.users[id]
	return ok, nil
}
func (r *saleUserRepo) Delete(id int) error   { delete(r.s.users, id); return nil }
func (r *saleUserRepo) Count() (int64, error) { return int64(len(r.s.users)), nil }

// saleTxRunner serializa con mutex y restaura un snapshot si fn falla,
// imitando commit/rollback de la transacción real.
type saleTxRunner struct{ s *saleStore }

func (t *saleTxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
	userRepo repository.UserRepository,
) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	snapProducts := make(map[int]*entity.Product, len(t.s.products))
	for id, p := range t.s.products {
		cp := *p
		snapProducts[id] = &cp
	}
	snapSales := make(map[int]*entity.Sale, len(t.s.sales))
	for id, sl := range t.s.sales {
		cp := *sl
		snapSales[id] = &cp
	}
	snapMovements := make([]*entity.StockMovement, len(t.s.movements))
	copy(snapMovements, t.s.movements)
	snapSaleID, snapLineID, snapMovID := t.s.nextSaleID, t.s.nextLineID, t.s.nextMovID

	err := fn(&saleProductRepo{s: t.s}, &saleMovementRepo{s: t.s}, &saleSaleRepo{s: t.s}, &saleUserRepo{s: t.s})
	if err != nil {
		t.s.products = snapProducts
		t.s.sales = snapSales
		t.s.movements = snapMovements
		t.s.nextSaleID, t.s.nextLineID, t.s.nextMovID = snapSaleID, snapLineID, snapMovID
	}
	return err
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildStore() *saleStore {
	store := newSaleStore()
	store.addUser(&entity.User{ID: 5, Login: "vendedor", Role: entity.RoleVendedor})
	store.addProduct(&entity.Product{ID: 1, Name: "Café 500g", SalePrice: dec("9.99"), StockQuantity: 10})
	store.addProduct(&entity.Product{ID: 2, Name: "Açúcar 1kg", SalePrice: dec("4.50"), StockQuantity: 5})
	return store
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProcessSale
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessSale_DescuentaStockYPersisteVenta(t *testing.T) {
	store := buildStore()
	uc := sales.NewProcessSaleUseCase(&saleTxRunner{s: store})

	sale, err := uc.ProcessSale(context.Background(), sales.SaleInput{
		BuyerID:       5,
		PaymentMethod: "PIX",
		Lines: []sales.SaleLineInput{
			{ProductID: 1, Quantity: 3, UnitPrice: dec("9.99")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.Equal(t, 1, sale.ID, "la venta debe salir con ID generado")
	assert.True(t, sale.TotalAmount.Equal(dec("29.97")), "3 × 9.99 = 29.97 exacto, total fue %s", sale.TotalAmount)
	require.Len(t, sale.Lines, 1)
	assert.True(t, sale.Lines[0].Subtotal.Equal(dec("29.97")))
	assert.Equal(t, sale.ID, sale.Lines[0].SaleID)

	assert.Equal(t, 7, store.product(1).StockQuantity, "el stock debe bajar de 10 a 7")

	require.Len(t, store.movements, 1)
	m := store.movements[0]
	assert.Equal(t, entity.MovementSaleOut, m.Kind)
	assert.Equal(t, 3, m.Quantity)
	assert.Equal(t, 5, m.ActorID)
	assert.Equal(t, fmt.Sprintf("Venda #%d", sale.ID), m.Justification,
		"la justificación debe referenciar el ID real de la venta")
}

func TestProcessSale_StockInsuficiente_RechazaVentaCompleta(t *testing.T) {
	store := buildStore()
	uc := sales.NewProcessSaleUseCase(&saleTxRunner{s: store})

	// Producto 2 tiene 5 unidades; pedir 6 debe fallar.
	sale, err := uc.ProcessSale(context.Background(), sales.SaleInput{
		BuyerID:       5,
		PaymentMethod: "DINHEIRO",
		Lines: []sales.SaleLineInput{
			{ProductID: 2, Quantity: 6, UnitPrice: dec("4.50")},
		},
	})
	require.Error(t, err)
	assert.Nil(t, sale)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var ise *domain.InsufficientStockError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, 2, ise.ProductID)
	assert.Equal(t, 5, ise.Available)
	assert.Equal(t, 6, ise.Requested)

	assert.Equal(t, 5, store.product(2).StockQuantity, "el stock no debe tocarse")
	assert.Empty(t, store.sales, "no debe persistirse ninguna venta")
	assert.Empty(t, store.movements, "no debe registrarse ningún movimiento")
}

func TestProcessSale_FallaEnSegundaLinea_RevierteTodo(t *testing.T) {
	store := buildStore()
	uc := sales.NewProcessSaleUseCase(&saleTxRunner{s: store})

	// Línea 1 válida, línea 2 excede el stock: la primera también debe revertirse.
	sale, err := uc.ProcessSale(context.Background(), sales.SaleInput{
		BuyerID:       5,
		PaymentMethod: "CARTAO",
		Lines: []sales.SaleLineInput{
			{ProductID: 1, Quantity: 2, UnitPrice: dec("9.99")},
			{ProductID: 2, Quantity: 99, UnitPrice: dec("4.50")},
		},
	})
	require.Error(t, err)
	assert.Nil(t, sale)

	assert.Equal(t, 10, store.product(1).StockQuantity,
		"la baja de la primera línea debe revertirse: sin commit parcial")
	assert.Equal(t, 5, store.product(2).StockQuantity)
	assert.Empty(t, store.sales)
	assert.Empty(t, store.movements)
}

func TestProcessSale_ProductoInexistente_AbortaVenta(t *testing.T) {
	store := buildStore()
	uc := sales.NewProcessSaleUseCase(&saleTxRunner{s: store})

	_, err := uc.ProcessSale(context.Background(), sales.SaleInput{
		BuyerID:       5,
		PaymentMethod: "PIX",
		Lines: []sales.SaleLineInput{
			{ProductID: 404, Quantity: 1, UnitPrice: dec("1.00")},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProcessSale_CompradorInexistente(t *testing.T) {
	store := buildStore()
	uc := sales.NewProcessSaleUseCase(&saleTxRunner{s: store})

	_, err := uc.ProcessSale(context.Background(), sales.SaleInput{
		BuyerID:       404,
		PaymentMethod: "PIX",
		Lines: []sales.SaleLineInput{
			{ProductID: 1, Quantity: 1, UnitPrice: dec("9.99")},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var nfe *domain.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "usuario", nfe.Resource)
}

func TestProcessSale_SinLineas_Rechazada(t *testing.T) {
	store := buildStore()
	uc := sales.NewProcessSaleUseCase(&saleTxRunner{s: store})

	_, err := uc.ProcessSale(context.Background(), sales.SaleInput{
		BuyerID:       5,
		PaymentMethod: "PIX",
		Lines:         nil,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.movements)
}

func TestProcessSale_MultiplesLineas_TotalDecimalExacto(t *testing.T) {
	store := buildStore()
	uc := sales.NewProcessSaleUseCase(&saleTxRunner{s: store})

	sale, err := uc.ProcessSale(context.Background(), sales.SaleInput{
		BuyerID:       5,
		PaymentMethod: "CARTAO",
		Lines: []sales.SaleLineInput{
			{ProductID: 1, Quantity: 2, UnitPrice: dec("9.99")},
			{ProductID: 2, Quantity: 3, UnitPrice: dec("4.50")},
		},
	})
	require.NoError(t, err)

	// 2×9.99 + 3×4.50 = 19.98 + 13.50 = 33.48
	assert.True(t, sale.TotalAmount.Equal(dec("33.48")), "total fue %s", sale.TotalAmount)
	assert.Equal(t, 8, store.product(1).StockQuantity)
	assert.Equal(t, 2, store.product(2).StockQuantity)

	// Un movimiento SALE_OUT por línea, todos con la misma venta en la justificación.
	require.Len(t, store.movements, 2)
	for _, m := range store.movements {
		assert.Equal(t, entity.MovementSaleOut, m.Kind)
		assert.Equal(t, fmt.Sprintf("Venda #%d", sale.ID), m.Justification)
	}
	assert.Equal(t, store.movements[0].BatchID, store.movements[1].BatchID)
}

func TestProcessSale_VentasConcurrentes_SoloUnaConsumeElStock(t *testing.T) {
	store := buildStore() // producto 1: 10 unidades
	uc := sales.NewProcessSaleUseCase(&saleTxRunner{s: store})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.ProcessSale(context.Background(), sales.SaleInput{
				BuyerID:       5,
				PaymentMethod: "PIX",
				Lines: []sales.SaleLineInput{
					{ProductID: 1, Quantity: 6, UnitPrice: dec("9.99")},
				},
			})
		}(i)
	}
	wg.Wait()

	// 6+6 > 10: exactamente una debe fallar por stock insuficiente.
	failures := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			failures++
		}
	}
	assert.Equal(t, 1, failures, "exactamente una venta debe rechazarse")
	assert.Equal(t, 4, store.product(1).StockQuantity, "el stock final debe ser 10-6=4, nunca negativo")
	assert.Len(t, store.movements, 1)
	assert.Len(t, store.sales, 1)
}
