package dto

import "github.com/rafabene/loja-backend/internal/domain/repositories"

// ListQueryParams são os parâmetros de paginação comuns às listagens
type ListQueryParams struct {
	Pagina         int    `form:"pagina" binding:"omitempty,gte=0"`
	ItensPorPagina int    `form:"itensPorPagina" binding:"omitempty,gte=0"`
	Busca          string `form:"busca" binding:"max=200"`
	Ordenacao      string `form:"ordenacao" binding:"max=50"`
}

// ToListQuery converte os parâmetros para o formato dos repositórios
func (p ListQueryParams) ToListQuery() repositories.ListQuery {
	return repositories.ListQuery{
		Page:     p.Pagina,
		PageSize: p.ItensPorPagina,
		Search:   p.Busca,
		Sort:     p.Ordenacao,
	}
}

// MessageQueryParams adiciona o filtro de respondida
type MessageQueryParams struct {
	ListQueryParams
	Respondida *bool `form:"respondida"`
}

// OrderQueryParams adiciona o filtro de status
type OrderQueryParams struct {
	ListQueryParams
	Status string `form:"status" binding:"max=50"`
}
