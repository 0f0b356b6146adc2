package services

import "github.com/rafabene/loja-backend/internal/domain/repositories"

// Page é uma página de listagem pronta para a resposta HTTP
type Page[T any] struct {
	Items       []T
	Total       int64
	TotalPages  int
	CurrentPage int
	PageSize    int
}

func newPage[T any](result *repositories.ListResult[T], query repositories.ListQuery) *Page[T] {
	return &Page[T]{
		Items:       result.Items,
		Total:       result.Total,
		TotalPages:  result.TotalPages(query.PageSize),
		CurrentPage: query.Page,
		PageSize:    query.PageSize,
	}
}
