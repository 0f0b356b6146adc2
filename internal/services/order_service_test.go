package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
	"github.com/rafabene/loja-backend/internal/services"
)

var _ = Describe("OrderService", func() {
	var (
		e      *env
		maria  *entities.User
		boloID string
	)

	BeforeEach(func() {
		e = newEnv(true)
		maria = e.register("Maria", "maria@loja.com", "12345678901").User
		boloID = e.product("Bolo", "10.00")
	})

	Describe("Checkout", func() {
		It("gera o pedido com preços capturados e esvazia o carrinho", func() {
			pudimID := e.product("Pudim", "5.00")
			_, err := e.carts.AddItem(e.ctx, maria.ID, boloID, 2)
			Expect(err).NotTo(HaveOccurred())
			_, err = e.carts.AddItem(e.ctx, maria.ID, pudimID, 1)
			Expect(err).NotTo(HaveOccurred())

			order, err := e.orders.Checkout(e.ctx, maria.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(order.ID).NotTo(BeEmpty())
			Expect(order.Status).To(Equal(entities.OrderStatusPending))
			Expect(order.Total.Equal(decimal.RequireFromString("25.00"))).To(BeTrue())
			Expect(order.Items).To(HaveLen(2))

			cart, err := e.carts.GetCart(e.ctx, maria.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(cart.IsEmpty()).To(BeTrue())

			Expect(e.metrics.checkouts).To(HaveLen(1))
			Expect(e.metrics.units).To(Equal(3))
			Expect(e.events.Types()).To(ContainElement(ports.EventOrderCreated))
		})

		It("não altera pedidos quando o preço do produto muda", func() {
			_, err := e.carts.AddItem(e.ctx, maria.ID, boloID, 1)
			Expect(err).NotTo(HaveOccurred())
			order, err := e.orders.Checkout(e.ctx, maria.ID)
			Expect(err).NotTo(HaveOccurred())

			price := decimal.RequireFromString("99.00")
			_, err = e.products.UpdateProduct(e.ctx, boloID, services.UpdateProductInput{Price: &price})
			Expect(err).NotTo(HaveOccurred())
			Expect(e.products.DeleteProduct(e.ctx, boloID)).To(Succeed())

			history, err := e.orders.ListForUser(e.ctx, maria.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(1))
			Expect(history[0].ID).To(Equal(order.ID))
			Expect(history[0].Total.Equal(decimal.RequireFromString("10.00"))).To(BeTrue())
			Expect(history[0].Items[0].ProductName).To(Equal("Bolo"))
		})

		It("rejeita carrinho vazio ou inexistente", func() {
			_, err := e.orders.Checkout(e.ctx, maria.ID)
			Expect(err).To(MatchError(errors.ErrEmptyCart))

			_, err = e.carts.GetCart(e.ctx, maria.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = e.orders.Checkout(e.ctx, maria.ID)
			Expect(err).To(MatchError(errors.ErrEmptyCart))

			Expect(e.metrics.checkouts).To(BeEmpty())
		})

		It("segundo checkout do mesmo carrinho não gera outro pedido", func() {
			_, err := e.carts.AddItem(e.ctx, maria.ID, boloID, 1)
			Expect(err).NotTo(HaveOccurred())

			_, err = e.orders.Checkout(e.ctx, maria.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = e.orders.Checkout(e.ctx, maria.ID)
			Expect(err).To(MatchError(errors.ErrEmptyCart))

			history, err := e.orders.ListForUser(e.ctx, maria.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(1))
		})
	})

	Describe("histórico e administração", func() {
		var orderID string

		BeforeEach(func() {
			_, err := e.carts.AddItem(e.ctx, maria.ID, boloID, 1)
			Expect(err).NotTo(HaveOccurred())
			order, err := e.orders.Checkout(e.ctx, maria.ID)
			Expect(err).NotTo(HaveOccurred())
			orderID = order.ID
		})

		It("esconde pedidos de outros usuários", func() {
			joao := e.register("João", "joao@loja.com", "98765432100").User

			history, err := e.orders.ListForUser(e.ctx, joao.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(BeEmpty())

			_, err = e.orders.GetOrder(e.ctx, orderID, joao)
			Expect(err).To(MatchError(errors.ErrOrderNotFound))

			own, err := e.orders.GetOrder(e.ctx, orderID, maria)
			Expect(err).NotTo(HaveOccurred())
			Expect(own.ID).To(Equal(orderID))
		})

		It("altera o status e filtra a listagem", func() {
			order, err := e.orders.UpdateStatus(e.ctx, orderID, "Enviado")
			Expect(err).NotTo(HaveOccurred())
			Expect(order.Status).To(Equal("Enviado"))
			Expect(e.events.Types()).To(ContainElement(ports.EventOrderStatusChanged))

			page, err := e.orders.ListOrders(e.ctx, repositories.OrderFilters{Status: "Enviado"})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Total).To(BeEquivalentTo(1))

			page, err = e.orders.ListOrders(e.ctx, repositories.OrderFilters{Status: entities.OrderStatusPending})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Total).To(BeEquivalentTo(0))
		})

		It("valida status e id", func() {
			_, err := e.orders.UpdateStatus(e.ctx, orderID, "  ")
			Expect(err).To(MatchError(errors.ErrInvalidStatus))

			_, err = e.orders.UpdateStatus(e.ctx, "00000000-0000-0000-0000-000000000000", "Enviado")
			Expect(err).To(MatchError(errors.ErrOrderNotFound))
		})
	})
})
