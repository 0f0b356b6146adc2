package services

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"
	"time"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
	"github.com/rafabene/loja-backend/internal/domain/valueobjects"
)

// AuthService cuida de cadastro, login, logout e da resolução de tokens
type AuthService struct {
	userRepo       repositories.UserRepository
	hasher         ports.PasswordHasher
	tokens         ports.TokenIssuer
	denylist       ports.TokenDenylist
	events         ports.EventPublisher
	metrics        ports.Metrics
	logger         ports.Logger
	revokeOnLogout bool

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	denylist ports.TokenDenylist,
	events ports.EventPublisher,
	metrics ports.Metrics,
	logger ports.Logger,
	revokeOnLogout bool,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		hasher:         hasher,
		tokens:         tokens,
		denylist:       denylist,
		events:         events,
		metrics:        metrics,
		logger:         logger,
		revokeOnLogout: revokeOnLogout,
	}
}

// RegisterInput representa os dados de cadastro
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	CPF      string
}

// AuthResult é o token emitido e o usuário autenticado
type AuthResult struct {
	Token string
	User  *entities.User
}

// newUserFromInput valida os campos de perfil comuns a cadastro e edição
func newUserFromInput(name, email, phone, cpf string) (*entities.User, *errors.ValidationError) {
	verr := &errors.ValidationError{}
	user := &entities.User{
		Name:  strings.TrimSpace(name),
		Phone: strings.TrimSpace(phone),
	}

	if user.Name == "" {
		verr.Add("nome", errors.ErrRequiredField)
	}
	if e, err := valueobjects.NewEmail(email); err != nil {
		verr.Add("email", err)
	} else {
		user.Email = e
	}
	if user.Phone == "" {
		verr.Add("telefone", errors.ErrRequiredField)
	}
	if c, err := valueobjects.NewCPF(cpf); err != nil {
		verr.Add("cpf", err)
	} else {
		user.CPF = c
	}

	return user, verr
}

// Register cria um usuário comum e emite o primeiro token
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	user, verr := newUserFromInput(input.Name, input.Email, input.Phone, input.CPF)
	if len(input.Password) < entities.MinPasswordLength {
		verr.Add("senha", errors.ErrPasswordTooShort)
	}
	if err := verr.OrNil(); err != nil {
		s.logger.Warn("registration with invalid data", "fields", len(verr.Fields))
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmailOrCPF(ctx, user.Email.String(), user.CPF.String(), "")
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn("registration with existing email or cpf", "email", user.Email.String())
		s.metrics.ObserveAuth("register", false)
		return nil, errors.ErrUserAlreadyExists
	}

	user.PasswordHash, err = s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if stderrors.Is(err, errors.ErrUserAlreadyExists) {
			s.metrics.ObserveAuth("register", false)
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email.String())
	s.metrics.ObserveAuth("register", true)
	s.publish(ctx, ports.EventUserRegistered, map[string]any{
		"id":    user.ID,
		"nome":  user.Name,
		"email": user.Email.String(),
	})

	return &AuthResult{Token: token, User: user}, nil
}

// Login verifica credenciais. Email desconhecido e senha errada geram o mesmo erro.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var user *entities.User
	if normalized, err := valueobjects.NewEmail(email); err == nil {
		user, err = s.userRepo.FindByEmail(ctx, normalized.String())
		if err != nil {
			return nil, err
		}
	}

	if user == nil {
		// compara com um hash descartável para igualar o tempo de resposta
		_ = s.hasher.Compare(s.dummyPasswordHash(), password)
		s.logger.Warn("login with unknown email", "email", email)
		s.metrics.ObserveAuth("login", false)
		return nil, errors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if stderrors.Is(err, errors.ErrInvalidCredentials) {
			s.logger.Warn("login with wrong password", "email", user.Email.String())
			s.metrics.ObserveAuth("login", false)
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.RecordLogin(now)

	token, err := s.tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login succeeded", "email", user.Email.String())
	s.metrics.ObserveAuth("login", true)

	return &AuthResult{Token: token, User: user}, nil
}

// Authenticate resolve o token para o usuário atual.
// Token revogado conta como inválido; usuário removido vira ErrUserNotFound.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entities.User, *ports.TokenClaims, error) {
	if token == "" {
		return nil, nil, errors.ErrNoToken
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, nil, err
	}

	if claims.TokenID != "" {
		revoked, err := s.denylist.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			return nil, nil, err
		}
		if revoked {
			return nil, nil, errors.ErrInvalidToken
		}
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, errors.ErrUserNotFound
	}

	return user, claims, nil
}

// Logout revoga o token até sua expiração natural, se habilitado
func (s *AuthService) Logout(ctx context.Context, user *entities.User, claims *ports.TokenClaims) error {
	if s.revokeOnLogout && claims != nil && claims.TokenID != "" {
		if err := s.denylist.Revoke(ctx, claims.TokenID, claims.Remaining(time.Now())); err != nil {
			return err
		}
	}

	s.logger.Info("logout", "email", user.Email.String(), "revoked", s.revokeOnLogout)
	s.metrics.ObserveAuth("logout", true)
	return nil
}

func (s *AuthService) dummyPasswordHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("loja-dummy-password")
		if err != nil {
			s.logger.Error("failed to build dummy hash", "error", err)
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

func (s *AuthService) publish(ctx context.Context, eventType string, payload any) {
	publishEvent(ctx, s.events, s.logger, eventType, payload)
}
