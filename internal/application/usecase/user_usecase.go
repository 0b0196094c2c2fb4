package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/conectta/retaguarda/internal/application/dto"
	"github.com/conectta/retaguarda/internal/domain"
	"github.com/conectta/retaguarda/internal/domain/entity"
	"github.com/conectta/retaguarda/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. La senha se hashea con bcrypt
// al persistir y nunca vuelve en respuestas.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdministrador, entity.RoleVendedor, entity.RoleEstoquista:
		return true
	}
	return false
}

// Create crea un usuario con senha hasheada.
func (uc *UserUseCase) Create(in dto.CreateUsuarioRequest) (*dto.UserResponse, error) {
	if in.Login == "" || in.Senha == "" || !validRole(in.Cargo) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByLogin(in.Login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrLoginAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Login:        in.Login,
		PasswordHash: string(hash),
		Role:         in.Cargo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id int) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// List lista todos los usuarios.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Update actualiza login y cargo; si viene senha nueva, se re-hashea.
func (uc *UserUseCase) Update(id int, in dto.UpdateUsuarioRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Login != "" {
		user.Login = in.Login
	}
	if in.Cargo != "" {
		if !validRole(in.Cargo) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = in.Cargo
	}
	if in.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(id int) error {
	exists, err := uc.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return &domain.NotFoundError{Resource: "usuario", ID: id}
	}
	return uc.repo.Delete(id)
}

// EnsureDefaultUsers siembra admin/vendedor/estoquista si la tabla está
// vacía (arranque de entorno nuevo). La senha compartida es temporal y debe
// cambiarse tras el primer login.
func (uc *UserUseCase) EnsureDefaultUsers(defaultPassword string) error {
	count, err := uc.repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	defaults := []struct {
		login string
		role  string
	}{
		{"admin", entity.RoleAdministrador},
		{"vendedor", entity.RoleVendedor},
		{"estoquista", entity.RoleEstoquista},
	}
	for _, d := range defaults {
		if _, err := uc.Create(dto.CreateUsuarioRequest{Login: d.login, Senha: defaultPassword, Cargo: d.role}); err != nil {
			return err
		}
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Login:     u.Login,
		Cargo:     u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
