package dto

import (
	"time"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/services"
)

// UpdateUserRequest representa a edição administrativa de um usuário
type UpdateUserRequest struct {
	Nome     *string `json:"nome" binding:"omitempty,min=1,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Telefone *string `json:"telefone" binding:"omitempty,min=1,max=30"`
	CPF      *string `json:"cpf" binding:"omitempty,cpf"`
	IsAdmin  *bool   `json:"isAdmin"`
}

// ToInput converte a requisição para o formato do serviço
func (r UpdateUserRequest) ToInput() services.UpdateUserInput {
	return services.UpdateUserInput{
		Name:    r.Nome,
		Email:   r.Email,
		Phone:   r.Telefone,
		CPF:     r.CPF,
		IsAdmin: r.IsAdmin,
	}
}

// UserResponse representa a resposta de um usuário; o hash da senha nunca sai
type UserResponse struct {
	ID          string     `json:"id"`
	Nome        string     `json:"nome"`
	Email       string     `json:"email"`
	Telefone    string     `json:"telefone"`
	CPF         string     `json:"cpf"`
	IsAdmin     bool       `json:"isAdmin"`
	DataCriacao time.Time  `json:"dataCriacao"`
	UltimoLogin *time.Time `json:"ultimoLogin,omitempty"`
}

// UserListResponse é uma página de usuários
type UserListResponse struct {
	Usuarios     []UserResponse `json:"usuarios"`
	TotalPaginas int            `json:"totalPaginas"`
	PaginaAtual  int            `json:"paginaAtual"`
	Total        int64          `json:"total"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Nome:        user.Name,
		Email:       user.Email.String(),
		Telefone:    user.Phone,
		CPF:         user.CPF.String(),
		IsAdmin:     user.IsAdmin,
		DataCriacao: user.CreatedAt,
		UltimoLogin: user.LastLoginAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// ToUserListResponse monta a página de usuários
func ToUserListResponse(page *services.Page[*entities.User]) UserListResponse {
	return UserListResponse{
		Usuarios:     ToUserResponses(page.Items),
		TotalPaginas: page.TotalPages,
		PaginaAtual:  page.CurrentPage,
		Total:        page.Total,
	}
}
