package repository

import (
	"github.com/shopspring/decimal"

	"github.com/conectta/retaguarda/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene sentido dentro
// de una transacción del motor de inventario. UpdateStock y UpdatePrices son
// de uso exclusivo del motor: el CRUD de catálogo no toca la cantidad.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int) (*entity.Product, error)
	GetForUpdate(id int) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id int, quantity int) error
	UpdatePrices(id int, costPrice, salePrice *decimal.Decimal) error
	ExistsByID(id int) (bool, error)
	Delete(id int) error
	IsReferenced(id int) (bool, error)
}
