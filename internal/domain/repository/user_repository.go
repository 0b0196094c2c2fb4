package repository

import "github.com/conectta/retaguarda/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int) (*entity.User, error)
	GetByLogin(login string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	ExistsByID(id int) (bool, error)
	Delete(id int) error
	Count() (int64, error)
}
