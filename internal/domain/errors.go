package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrLoginAlreadyExists = errors.New("el login ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// NotFoundError identifica el recurso y el ID inexistentes. Los handlers y
// tests siguen usando errors.Is(err, ErrNotFound).
type NotFoundError struct {
	Resource string // "produto", "usuario", "venda"
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Resource, e.ID, ErrNotFound.Error())
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InsufficientStockError lleva el producto y las cantidades en conflicto,
// para que el caller pueda reintentar con cantidades ajustadas.
type InsufficientStockError struct {
	ProductID int
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("producto %d: %s (disponible %d, solicitado %d)",
		e.ProductID, ErrInsufficientStock.Error(), e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
