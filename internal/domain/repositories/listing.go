package repositories

import "math"

// ListQuery contém paginação, busca e ordenação comuns às listagens
type ListQuery struct {
	Page     int    // Página (começa em 1)
	PageSize int    // Itens por página
	Search   string // Busca textual, sem diferenciar maiúsculas
	Sort     string // Chave de ordenação; prefixo "-" para decrescente
}

// PageLimits define tamanho padrão e máximo de página
type PageLimits struct {
	Default int
	Max     int
}

// DefaultPageLimits segue o padrão da loja: 10 itens, máximo 100
var DefaultPageLimits = PageLimits{Default: 10, Max: 100}

// Normalize aplica os valores padrão e os limites
func (q ListQuery) Normalize(limits PageLimits) ListQuery {
	if limits.Default < 1 {
		limits = DefaultPageLimits
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = limits.Default
	}
	if limits.Max > 0 && q.PageSize > limits.Max {
		q.PageSize = limits.Max
	}
	// páginas cujo offset não cabe em int ficam presas à última representável,
	// que continua além do fim de qualquer tabela
	if q.Page-1 > math.MaxInt/q.PageSize {
		q.Page = math.MaxInt/q.PageSize + 1
	}
	return q
}

// Offset retorna quantos registros pular
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// ListResult traz a página pedida e o total de registros do filtro
type ListResult[T any] struct {
	Items []T
	Total int64
}

// TotalPages calcula ceil(total / pageSize)
func (r ListResult[T]) TotalPages(pageSize int) int {
	if pageSize < 1 || r.Total == 0 {
		return 0
	}
	return int((r.Total + int64(pageSize) - 1) / int64(pageSize))
}
