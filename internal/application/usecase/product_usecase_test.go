package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectta/retaguarda/internal/application/dto"
	"github.com/conectta/retaguarda/internal/application/usecase"
	"github.com/conectta/retaguarda/internal/domain"
	"github.com/conectta/retaguarda/internal/domain/entity"
)

// fakeProductRepo repositorio de productos en memoria para los tests del CRUD.
type fakeProductRepo struct {
	products   map[int]*entity.Product
	nextID     int
	referenced map[int]bool
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:   make(map[int]*entity.Product),
		nextID:     1,
		referenced: make(map[int]bool),
	}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id int) (*entity.Product, error) { return r.GetByID(id) }

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(id int, quantity int) error {
	r.products[id].StockQuantity = quantity
	return nil
}

func (r *fakeProductRepo) UpdatePrices(id int, costPrice, salePrice *decimal.Decimal) error {
	return nil
}

func (r *fakeProductRepo) ExistsByID(id int) (bool, error) {
	_, ok := r.products[id]
	return ok, nil
}

func (r *fakeProductRepo) Delete(id int) error { delete(r.products, id); return nil }

func (r *fakeProductRepo) IsReferenced(id int) (bool, error) { return r.referenced[id], nil }

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestProductCreate_AceptaStockInicial(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProdutoRequest{
		Nome:              "Café 500g",
		PrecoCusto:        price("5.00"),
		PrecoVenda:        price("9.99"),
		QuantidadeEstoque: 15,
		EstoqueMinimo:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.ID)
	assert.Equal(t, 15, out.QuantidadeEstoque, "el alta acepta stock inicial")
}

func TestProductCreate_Invalido(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(dto.CreateProdutoRequest{Nome: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nome vacío debe rechazarse")

	_, err = uc.Create(dto.CreateProdutoRequest{Nome: "x", QuantidadeEstoque: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock inicial negativo debe rechazarse")
}

func TestProductUpdate_NoTocaStock(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProdutoRequest{Nome: "Café", QuantidadeEstoque: 10})
	require.NoError(t, err)

	newName := "Café Premium"
	newPrice := price("12.90")
	out, err := uc.Update(created.ID, dto.UpdateProdutoRequest{Nome: &newName, PrecoVenda: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "Café Premium", out.Nome)
	assert.True(t, out.PrecoVenda.Equal(price("12.90")))
	assert.Equal(t, 10, out.QuantidadeEstoque,
		"el update de catálogo nunca modifica la cantidad en stock")
}

func TestProductUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	nome := "x"
	out, err := uc.Update(99, dto.UpdateProdutoRequest{Nome: &nome})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductDelete_BloqueadoSiReferenciado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProdutoRequest{Nome: "Café"})
	require.NoError(t, err)

	repo.referenced[created.ID] = true
	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"producto con ventas o movimientos no puede borrarse")

	repo.referenced[created.ID] = false
	require.NoError(t, uc.Delete(created.ID))

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "segundo delete debe dar not found")
}
