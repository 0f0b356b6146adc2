package dto

import (
	"time"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/services"
)

// CreateMessageRequest é o formulário público de contato
type CreateMessageRequest struct {
	Nome     string `json:"nome" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Mensagem string `json:"mensagem" binding:"required,max=5000"`
}

// ToInput converte a requisição para o formato do serviço
func (r CreateMessageRequest) ToInput() services.ContactInput {
	return services.ContactInput{
		Name:    r.Nome,
		Email:   r.Email,
		Message: r.Mensagem,
	}
}

// MarkResolvedRequest marca a mensagem; sem corpo vale respondida=true
type MarkResolvedRequest struct {
	Respondida *bool `json:"respondida"`
}

// Resolved retorna o valor pedido, true por padrão
func (r MarkResolvedRequest) Resolved() bool {
	return r.Respondida == nil || *r.Respondida
}

// ContactMessageResponse representa uma mensagem da caixa de contato
type ContactMessageResponse struct {
	ID         string    `json:"id"`
	Nome       string    `json:"nome"`
	Email      string    `json:"email"`
	Mensagem   string    `json:"mensagem"`
	DataEnvio  time.Time `json:"dataEnvio"`
	Respondida bool      `json:"respondida"`
}

// MessageListResponse é uma página de mensagens
type MessageListResponse struct {
	Mensagens    []ContactMessageResponse `json:"mensagens"`
	TotalPaginas int                      `json:"totalPaginas"`
	PaginaAtual  int                      `json:"paginaAtual"`
	Total        int64                    `json:"total"`
}

// ToContactMessageResponse converte uma entidade ContactMessage
func ToContactMessageResponse(message *entities.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:         message.ID,
		Nome:       message.Name,
		Email:      message.Email.String(),
		Mensagem:   message.Message,
		DataEnvio:  message.SentAt,
		Respondida: message.Resolved,
	}
}

// ToMessageListResponse monta a página de mensagens
func ToMessageListResponse(page *services.Page[*entities.ContactMessage]) MessageListResponse {
	mensagens := make([]ContactMessageResponse, len(page.Items))
	for i, m := range page.Items {
		mensagens[i] = ToContactMessageResponse(m)
	}

	return MessageListResponse{
		Mensagens:    mensagens,
		TotalPaginas: page.TotalPages,
		PaginaAtual:  page.CurrentPage,
		Total:        page.Total,
	}
}
