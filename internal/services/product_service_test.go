package services_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
	"github.com/rafabene/loja-backend/internal/services"
)

var _ = Describe("ProductService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv(true)
	})

	It("pagina o catálogo e devolve lista vazia após a última página", func() {
		for _, name := range []string{"Bolo", "Brigadeiro", "Beijinho", "Cajuzinho", "Pudim"} {
			e.product(name, "10.00")
		}

		page, err := e.products.ListProducts(e.ctx, repositories.ListQuery{Page: 2, PageSize: 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(page.TotalPages).To(Equal(3))
		Expect(page.Items).To(HaveLen(2))
		Expect(page.Items[0].Name).To(Equal("Brigadeiro"))

		page, err = e.products.ListProducts(e.ctx, repositories.ListQuery{Page: 9, PageSize: 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Items).To(BeEmpty())
		Expect(page.TotalPages).To(Equal(3))
		Expect(page.CurrentPage).To(Equal(9))

		page, err = e.products.ListProducts(e.ctx, repositories.ListQuery{Page: math.MaxInt/10 + 2, PageSize: 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Items).To(BeEmpty())
		Expect(page.TotalPages).To(Equal(1))
	})

	It("aplica o tamanho de página padrão e o máximo", func() {
		e.product("Bolo", "10.00")

		page, err := e.products.ListProducts(e.ctx, repositories.ListQuery{})
		Expect(err).NotTo(HaveOccurred())
		Expect(page.PageSize).To(Equal(10))
		Expect(page.CurrentPage).To(Equal(1))

		page, err = e.products.ListProducts(e.ctx, repositories.ListQuery{PageSize: 5000})
		Expect(err).NotTo(HaveOccurred())
		Expect(page.PageSize).To(Equal(100))
	})

	It("rejeita chave de ordenação fora da lista", func() {
		_, err := e.products.ListProducts(e.ctx, repositories.ListQuery{Sort: "senha; DROP TABLE"})
		Expect(err).To(MatchError(errors.ErrInvalidSortKey))
		Expect(err).To(MatchError(errors.ErrValidation))
	})

	It("exige preço positivo e campos obrigatórios", func() {
		_, err := e.products.CreateProduct(e.ctx, services.CreateProductInput{
			Name: "Bolo", Price: decimal.Zero, Description: "d", ImageURL: "i.png",
		})
		Expect(err).To(MatchError(errors.ErrInvalidPrice))

		_, err = e.products.CreateProduct(e.ctx, services.CreateProductInput{Price: decimal.NewFromInt(1)})
		Expect(err).To(MatchError(errors.ErrRequiredField))
	})

	It("edita parcialmente mantendo os outros campos", func() {
		id := e.product("Bolo", "10.00")
		price := decimal.RequireFromString("12.50")

		updated, err := e.products.UpdateProduct(e.ctx, id, services.UpdateProductInput{Price: &price})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Price.Equal(price)).To(BeTrue())
		Expect(updated.Name).To(Equal("Bolo"))

		negative := decimal.NewFromInt(-1)
		_, err = e.products.UpdateProduct(e.ctx, id, services.UpdateProductInput{Price: &negative})
		Expect(err).To(MatchError(errors.ErrInvalidPrice))
	})

	It("retorna not found para ids desconhecidos", func() {
		_, err := e.products.GetProduct(e.ctx, "nao-existe")
		Expect(err).To(MatchError(errors.ErrProductNotFound))

		_, err = e.products.UpdateProduct(e.ctx, "nao-existe", services.UpdateProductInput{})
		Expect(err).To(MatchError(errors.ErrProductNotFound))

		Expect(e.products.DeleteProduct(e.ctx, "nao-existe")).To(MatchError(errors.ErrProductNotFound))
	})
})
