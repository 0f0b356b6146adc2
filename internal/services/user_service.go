package services

import (
	"context"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
)

// UserService contém a lógica de negócio da administração de usuários
type UserService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	uow      ports.UnitOfWork
	logger   ports.Logger
	limits   repositories.PageLimits
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	uow ports.UnitOfWork,
	logger ports.Logger,
	limits repositories.PageLimits,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
		uow:      uow,
		logger:   logger,
		limits:   limits,
	}
}

// UpdateUserInput contém os campos editáveis por um admin; nil mantém o valor atual
type UpdateUserInput struct {
	Name    *string
	Email   *string
	Phone   *string
	CPF     *string
	IsAdmin *bool
}

// AdminSeed descreve o administrador inicial
type AdminSeed struct {
	Name     string
	Email    string
	Password string
	Phone    string
	CPF      string
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários com busca por nome ou email
func (s *UserService) ListUsers(ctx context.Context, query repositories.ListQuery) (*Page[*entities.User], error) {
	query = query.Normalize(s.limits)

	result, err := s.userRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	return newPage(result, query), nil
}

// UpdateUser aplica a edição com as mesmas regras do cadastro
func (s *UserService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error) {
	var updated *entities.User

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		current, err := s.userRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if current == nil {
			s.logger.Warn("update of nonexistent user", "user_id", id)
			return errors.ErrUserNotFound
		}

		name, email, phone, cpf := current.Name, current.Email.String(), current.Phone, current.CPF.String()
		if input.Name != nil {
			name = *input.Name
		}
		if input.Email != nil {
			email = *input.Email
		}
		if input.Phone != nil {
			phone = *input.Phone
		}
		if input.CPF != nil {
			cpf = *input.CPF
		}

		user, verr := newUserFromInput(name, email, phone, cpf)
		if err := verr.OrNil(); err != nil {
			return err
		}
		user.ID = current.ID
		user.PasswordHash = current.PasswordHash
		user.CreatedAt = current.CreatedAt
		user.LastLoginAt = current.LastLoginAt
		user.IsAdmin = current.IsAdmin
		if input.IsAdmin != nil {
			user.IsAdmin = *input.IsAdmin
		}

		exists, err := s.userRepo.ExistsByEmailOrCPF(txCtx, user.Email.String(), user.CPF.String(), user.ID)
		if err != nil {
			return err
		}
		if exists {
			return errors.ErrUserAlreadyExists
		}

		if err := s.userRepo.Update(txCtx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user updated by admin", "user_id", updated.ID, "email", updated.Email.String())
	return updated, nil
}

// DeleteUser remove o usuário; id inexistente é ErrUserNotFound
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		s.logger.Warn("delete of nonexistent user", "user_id", id)
		return errors.ErrUserNotFound
	}

	s.logger.Info("user deleted by admin", "user_id", id)
	return nil
}

// EnsureAdmin cria o administrador inicial se o email ainda não existir.
// Retorna true quando um usuário foi criado.
func (s *UserService) EnsureAdmin(ctx context.Context, seed AdminSeed) (bool, error) {
	user, verr := newUserFromInput(seed.Name, seed.Email, seed.Phone, seed.CPF)
	if len(seed.Password) < entities.MinPasswordLength {
		verr.Add("senha", errors.ErrPasswordTooShort)
	}
	if err := verr.OrNil(); err != nil {
		return false, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, user.Email.String())
	if err != nil {
		return false, err
	}
	if existing != nil {
		s.logger.Info("admin already exists", "email", existing.Email.String())
		return false, nil
	}

	user.PasswordHash, err = s.hasher.Hash(seed.Password)
	if err != nil {
		return false, err
	}
	user.IsAdmin = true

	if err := s.userRepo.Create(ctx, user); err != nil {
		return false, err
	}

	s.logger.Info("admin user created", "email", user.Email.String())
	return true, nil
}
