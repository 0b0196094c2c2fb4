package usecase

import (
	"time"

	"github.com/conectta/retaguarda/internal/application/dto"
	"github.com/conectta/retaguarda/internal/domain"
	"github.com/conectta/retaguarda/internal/domain/entity"
	"github.com/conectta/retaguarda/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo de productos.
// La cantidad en stock solo la muta el motor de inventario: el alta acepta un
// stock inicial, pero el update de catálogo no lo toca.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create da de alta un producto en el catálogo.
func (uc *ProductUseCase) Create(in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantidadeEstoque < 0 || in.EstoqueMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Barcode:       in.CodigoBarras,
		Name:          in.Nome,
		Description:   in.Descricao,
		Category:      in.Categoria,
		Supplier:      in.Fornecedor,
		CostPrice:     in.PrecoCusto,
		SalePrice:     in.PrecoVenda,
		StockQuantity: in.QuantidadeEstoque,
		MinimumStock:  in.EstoqueMinimo,
		UnitMeasure:   in.UnidadeMedida,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProdutoResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int) (*dto.ProdutoResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProdutoResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProdutoResponse, error) {
	products, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProdutoResponse(p))
	}
	return out, nil
}

// Update actualiza campos de catálogo. No permite modificar la cantidad en
// stock (se maneja vía movimientos).
func (uc *ProductUseCase) Update(id int, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.CodigoBarras != nil {
		product.Barcode = *in.CodigoBarras
	}
	if in.Nome != nil {
		product.Name = *in.Nome
	}
	if in.Descricao != nil {
		product.Description = *in.Descricao
	}
	if in.Categoria != nil {
		product.Category = *in.Categoria
	}
	if in.Fornecedor != nil {
		product.Supplier = *in.Fornecedor
	}
	if in.PrecoCusto != nil {
		product.CostPrice = *in.PrecoCusto
	}
	if in.PrecoVenda != nil {
		product.SalePrice = *in.PrecoVenda
	}
	if in.EstoqueMinimo != nil {
		if *in.EstoqueMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinimumStock = *in.EstoqueMinimo
	}
	if in.UnidadeMedida != nil {
		product.UnitMeasure = *in.UnidadeMedida
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProdutoResponse(product), nil
}

// Delete elimina un producto. Bloqueado con ErrConflict mientras líneas de
// venta o movimientos lo referencien: el historial nunca queda huérfano.
func (uc *ProductUseCase) Delete(id int) error {
	exists, err := uc.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return &domain.NotFoundError{Resource: "produto", ID: id}
	}
	referenced, err := uc.repo.IsReferenced(id)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toProdutoResponse(p *entity.Product) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:                p.ID,
		CodigoBarras:      p.Barcode,
		Nome:              p.Name,
		Descricao:         p.Description,
		Categoria:         p.Category,
		Fornecedor:        p.Supplier,
		PrecoCusto:        p.CostPrice,
		PrecoVenda:        p.SalePrice,
		QuantidadeEstoque: p.StockQuantity,
		EstoqueMinimo:     p.MinimumStock,
		UnidadeMedida:     p.UnitMeasure,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
