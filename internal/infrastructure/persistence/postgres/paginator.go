package postgres

import (
	"strings"

	"gorm.io/gorm"

	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
)

// listSpec descreve como um recurso pode ser buscado e ordenado.
// sortColumns mapeia a chave da API para a coluna; nada fora dele chega ao SQL.
type listSpec struct {
	searchColumns []string
	sortColumns   map[string]string
	defaultSort   string
	preloads      []string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// orderClause traduz "chave" ou "-chave" em ORDER BY, com desempate por id
func (s listSpec) orderClause(sort string) (string, error) {
	if sort == "" {
		sort = s.defaultSort
	}

	direction := "ASC"
	key := sort
	if strings.HasPrefix(sort, "-") {
		direction = "DESC"
		key = sort[1:]
	}

	column, ok := s.sortColumns[key]
	if !ok {
		return "", errors.NewValidationError("ordenacao", errors.ErrInvalidSortKey)
	}

	return column + " " + direction + ", id " + direction, nil
}

// applySearch adiciona busca sem diferenciar maiúsculas em todas as colunas
func (s listSpec) applySearch(query *gorm.DB, search string) *gorm.DB {
	search = strings.TrimSpace(search)
	if search == "" || len(s.searchColumns) == 0 {
		return query
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
	conditions := make([]string, len(s.searchColumns))
	args := make([]any, len(s.searchColumns))
	for i, column := range s.searchColumns {
		conditions[i] = "LOWER(" + column + `) LIKE ? ESCAPE '\'`
		args[i] = pattern
	}

	return query.Where("("+strings.Join(conditions, " OR ")+")", args...)
}

// paginate conta o total do filtro e carrega a página pedida
func paginate[M any](query *gorm.DB, spec listSpec, q repositories.ListQuery) ([]M, int64, error) {
	order, err := spec.orderClause(q.Sort)
	if err != nil {
		return nil, 0, err
	}

	query = spec.applySearch(query, q.Search).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := query
	for _, association := range spec.preloads {
		page = page.Preload(association)
	}

	var models []M
	if err := page.Order(order).Limit(q.PageSize).Offset(q.Offset()).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	return models, total, nil
}
