package repository

import "github.com/conectta/retaguarda/internal/domain/entity"

// SaleRepository puerto de persistencia del agregado de venta.
// Create escribe cabecera y líneas en la transacción del caller y deja los
// IDs generados en el agregado. No hay update: una venta confirmada es
// inmutable.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id int) (*entity.Sale, error)
}
