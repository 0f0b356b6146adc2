package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestProductCatalog(t *testing.T) {
	s := newServer(t)
	admin := s.adminToken()
	customer := s.register("Maria", "maria@example.com", "12345678901")

	id := s.createProduct(admin, "Brigadeiro", 10)
	s.createProduct(admin, "Beijinho", 5.5)
	s.createProduct(admin, "Bolo de cenoura", 42)

	t.Run("lista pública ordenada por nome", func(t *testing.T) {
		w := s.request(http.MethodGet, "/api/produtos", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Equal(t, int64(3), gjson.Get(body, "total").Int())
		assert.Equal(t, int64(1), gjson.Get(body, "totalPaginas").Int())
		assert.Equal(t, int64(1), gjson.Get(body, "paginaAtual").Int())
		assert.Equal(t, []string{"Beijinho", "Bolo de cenoura", "Brigadeiro"}, stringsAt(body, "produtos.#.nome"))
	})

	t.Run("busca, ordenação e paginação", func(t *testing.T) {
		w := s.request(http.MethodGet, "/api/produtos?busca=BRI", nil, "")
		assert.Equal(t, []string{"Brigadeiro"}, stringsAt(w.Body.String(), "produtos.#.nome"))

		w = s.request(http.MethodGet, "/api/produtos?ordenacao=-preco", nil, "")
		assert.Equal(t, []string{"Bolo de cenoura", "Brigadeiro", "Beijinho"}, stringsAt(w.Body.String(), "produtos.#.nome"))

		w = s.request(http.MethodGet, "/api/produtos?pagina=2&itensPorPagina=2", nil, "")
		body := w.Body.String()
		assert.Equal(t, int64(2), gjson.Get(body, "totalPaginas").Int())
		assert.Equal(t, int64(2), gjson.Get(body, "paginaAtual").Int())
		assert.Len(t, gjson.Get(body, "produtos").Array(), 1)
	})

	t.Run("ordenação desconhecida", func(t *testing.T) {
		w := s.request(http.MethodGet, "/api/produtos?ordenacao=senha", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ordenacao", gjson.Get(w.Body.String(), "errors.0.field").String())
	})

	t.Run("busca por id", func(t *testing.T) {
		w := s.request(http.MethodGet, "/api/produtos/"+id, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Brigadeiro", gjson.Get(w.Body.String(), "nome").String())
		assert.Equal(t, 10.0, gjson.Get(w.Body.String(), "preco").Float())

		w = s.request(http.MethodGet, "/api/produtos/nao-existe", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Produto não encontrado", gjson.Get(w.Body.String(), "message").String())
	})

	t.Run("escrita exige admin", func(t *testing.T) {
		body := map[string]any{"nome": "X", "preco": 1, "descricao": "d", "imagem": "i.png"}

		w := s.request(http.MethodPost, "/api/produtos", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = s.request(http.MethodPost, "/api/produtos", body, customer)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Acesso negado. Permissão de administrador necessária.", gjson.Get(w.Body.String(), "message").String())
	})

	t.Run("preço deve ser positivo", func(t *testing.T) {
		w := s.request(http.MethodPost, "/api/produtos", map[string]any{
			"nome": "Grátis", "preco": 0, "descricao": "d", "imagem": "i.png",
		}, admin)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "preco", gjson.Get(w.Body.String(), "errors.0.field").String())
		assert.Equal(t, "O preço deve ser maior que zero", gjson.Get(w.Body.String(), "errors.0.message").String())
	})

	t.Run("preço fora do formato da coluna", func(t *testing.T) {
		w := s.request(http.MethodPost, "/api/produtos", map[string]any{
			"nome": "Fração", "preco": 0.001, "descricao": "d", "imagem": "i.png",
		}, admin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "preco", gjson.Get(w.Body.String(), "errors.0.field").String())
		assert.Equal(t, "O preço deve ter no máximo duas casas decimais", gjson.Get(w.Body.String(), "errors.0.message").String())

		w = s.request(http.MethodPut, "/api/produtos/"+id, map[string]any{"preco": 1e10}, admin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "O preço deve ser menor que 10.000.000.000", gjson.Get(w.Body.String(), "errors.0.message").String())
	})

	t.Run("edição parcial", func(t *testing.T) {
		w := s.request(http.MethodPut, "/api/produtos/"+id, map[string]any{"preco": 12.5}, admin)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Brigadeiro", gjson.Get(w.Body.String(), "nome").String())
		assert.Equal(t, 12.5, gjson.Get(w.Body.String(), "preco").Float())

		w = s.request(http.MethodPut, "/api/produtos/nao-existe", map[string]any{"preco": 1}, admin)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("remoção", func(t *testing.T) {
		w := s.request(http.MethodDelete, "/api/produtos/"+id, nil, admin)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Produto removido com sucesso", gjson.Get(w.Body.String(), "message").String())

		w = s.request(http.MethodDelete, "/api/produtos/"+id, nil, admin)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func stringsAt(body, path string) []string {
	var out []string
	for _, v := range gjson.Get(body, path).Array() {
		out = append(out, v.String())
	}
	return out
}

func TestProductListPageSizeIsCapped(t *testing.T) {
	s := newServer(t)
	admin := s.adminToken()
	for i := 0; i < 3; i++ {
		s.createProduct(admin, fmt.Sprintf("Doce %d", i), 1)
	}

	w := s.request(http.MethodGet, "/api/produtos?itensPorPagina=1000", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, gjson.Get(w.Body.String(), "produtos").Array(), 3)
	assert.Equal(t, int64(1), gjson.Get(w.Body.String(), "totalPaginas").Int())
}
