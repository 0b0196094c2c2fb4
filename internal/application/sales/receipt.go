package sales

import (
	"context"
	"fmt"

	"github.com/conectta/retaguarda/internal/domain"
	"github.com/conectta/retaguarda/internal/domain/entity"
	"github.com/conectta/retaguarda/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de una venta ya persistida.
// Lectura pura: venta, comprador y productos referenciados por las líneas.
type ReceiptUseCase struct {
	saleRepo    repository.SaleRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	generator   ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:    saleRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		generator:   generator,
	}
}

// DownloadReceiptPDF carga el agregado de venta y renderiza el recibo.
// Retorna (pdfBytes, filename, nil) o domain.ErrNotFound si la venta no existe.
// Un producto borrado después de la venta no impide el recibo: la línea
// conserva su snapshot de precio y el nombre cae a un fallback.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, saleID int) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", &domain.NotFoundError{Resource: "venda", ID: saleID}
	}

	buyer, err := uc.userRepo.GetByID(sale.BuyerID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener usuario: %w", err)
	}

	products := make(map[int]*entity.Product, len(sale.Lines))
	for _, line := range sale.Lines {
		if _, ok := products[line.ProductID]; ok {
			continue
		}
		product, pErr := uc.productRepo.GetByID(line.ProductID)
		if pErr == nil && product != nil {
			products[line.ProductID] = product
		}
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, sale, buyer, products)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("recibo-venda-%d.pdf", sale.ID), nil
}

// GetByID devuelve la venta persistida (para GET /api/vendas/:id).
func (uc *ReceiptUseCase) GetByID(saleID int) (*entity.Sale, error) {
	return uc.saleRepo.GetByID(saleID)
}
