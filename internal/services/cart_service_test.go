package services_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/errors"
)

var _ = Describe("CartService", func() {
	var (
		e       *env
		userID  string
		boloID  string
		pudimID string
	)

	BeforeEach(func() {
		e = newEnv(true)
		userID = e.register("Maria", "maria@loja.com", "12345678901").User.ID
		boloID = e.product("Bolo", "10.00")
		pudimID = e.product("Pudim", "7.50")
	})

	It("cria o carrinho vazio no primeiro acesso", func() {
		cart, err := e.carts.GetCart(e.ctx, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(cart.IsEmpty()).To(BeTrue())
		Expect(cart.Total().IsZero()).To(BeTrue())

		again, err := e.carts.GetCart(e.ctx, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(again.ID).To(Equal(cart.ID))
	})

	It("soma quantidades do mesmo produto em uma única linha", func() {
		_, err := e.carts.AddItem(e.ctx, userID, boloID, 2)
		Expect(err).NotTo(HaveOccurred())
		cart, err := e.carts.AddItem(e.ctx, userID, boloID, 3)
		Expect(err).NotTo(HaveOccurred())

		Expect(cart.Items).To(HaveLen(1))
		Expect(cart.Items[0].Quantity).To(Equal(5))
		Expect(cart.Total().Equal(decimal.RequireFromString("50.00"))).To(BeTrue())
	})

	It("calcula subtotal e total a preços atuais", func() {
		_, err := e.carts.AddItem(e.ctx, userID, boloID, 1)
		Expect(err).NotTo(HaveOccurred())
		cart, err := e.carts.AddItem(e.ctx, userID, pudimID, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(cart.Total().Equal(decimal.RequireFromString("25.00"))).To(BeTrue())

		bolo, err := e.productRepo.FindByID(e.ctx, boloID)
		Expect(err).NotTo(HaveOccurred())
		bolo.Price = decimal.RequireFromString("20.00")
		Expect(e.productRepo.Update(e.ctx, bolo)).To(Succeed())

		cart, err = e.carts.GetCart(e.ctx, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(cart.Total().Equal(decimal.RequireFromString("35.00"))).To(BeTrue())
	})

	It("rejeita quantidade não positiva e produto desconhecido", func() {
		_, err := e.carts.AddItem(e.ctx, userID, boloID, 0)
		Expect(err).To(MatchError(errors.ErrInvalidQuantity))
		Expect(err).To(MatchError(errors.ErrValidation))

		_, err = e.carts.AddItem(e.ctx, userID, "00000000-0000-0000-0000-000000000000", 1)
		Expect(err).To(MatchError(errors.ErrProductNotFound))
		Expect(err).To(MatchError(errors.ErrValidation))

		_, err = e.carts.SetQuantity(e.ctx, userID, boloID, -1)
		Expect(err).To(MatchError(errors.ErrInvalidQuantity))
	})

	It("limita a quantidade por produto", func() {
		_, err := e.carts.AddItem(e.ctx, userID, boloID, math.MaxInt)
		Expect(err).To(MatchError(errors.ErrQuantityTooHigh))
		Expect(err).To(MatchError(errors.ErrValidation))

		_, err = e.carts.AddItem(e.ctx, userID, boloID, entities.MaxItemQuantity-1)
		Expect(err).NotTo(HaveOccurred())
		_, err = e.carts.AddItem(e.ctx, userID, boloID, 2)
		Expect(err).To(MatchError(errors.ErrQuantityTooHigh))

		cart, err := e.carts.AddItem(e.ctx, userID, boloID, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(cart.Items[0].Quantity).To(Equal(entities.MaxItemQuantity))

		_, err = e.carts.SetQuantity(e.ctx, userID, boloID, entities.MaxItemQuantity+1)
		Expect(err).To(MatchError(errors.ErrQuantityTooHigh))
	})

	It("atualiza quantidade só de itens presentes", func() {
		_, err := e.carts.SetQuantity(e.ctx, userID, boloID, 3)
		Expect(err).To(MatchError(errors.ErrProductNotInCart))

		_, err = e.carts.AddItem(e.ctx, userID, boloID, 1)
		Expect(err).NotTo(HaveOccurred())
		cart, err := e.carts.SetQuantity(e.ctx, userID, boloID, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(cart.Items[0].Quantity).To(Equal(3))
	})

	It("remove itens de forma idempotente", func() {
		_, err := e.carts.AddItem(e.ctx, userID, boloID, 1)
		Expect(err).NotTo(HaveOccurred())

		cart, err := e.carts.RemoveItem(e.ctx, userID, boloID)
		Expect(err).NotTo(HaveOccurred())
		Expect(cart.IsEmpty()).To(BeTrue())

		_, err = e.carts.RemoveItem(e.ctx, userID, boloID)
		Expect(err).NotTo(HaveOccurred())
	})

	It("perde o item quando o produto é excluído do catálogo", func() {
		_, err := e.carts.AddItem(e.ctx, userID, boloID, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.products.DeleteProduct(e.ctx, boloID)).To(Succeed())

		cart, err := e.carts.GetCart(e.ctx, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(cart.IsEmpty()).To(BeTrue())
	})
})
