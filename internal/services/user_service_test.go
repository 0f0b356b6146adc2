package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
	"github.com/rafabene/loja-backend/internal/services"
)

func ptr[T any](v T) *T {
	return &v
}

var _ = Describe("UserService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv(true)
	})

	It("lista com busca e paginação", func() {
		e.register("Ana", "ana@loja.com", "11111111111")
		e.register("Bruno", "bruno@loja.com", "22222222222")
		e.register("Carla", "carla@exemplo.com", "33333333333")

		page, err := e.users.ListUsers(e.ctx, repositories.ListQuery{Search: "LOJA", PageSize: 1, Sort: "nome"})
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Total).To(BeEquivalentTo(2))
		Expect(page.TotalPages).To(Equal(2))
		Expect(page.CurrentPage).To(Equal(1))
		Expect(page.Items).To(HaveLen(1))
		Expect(page.Items[0].Name).To(Equal("Ana"))
	})

	It("edita perfil e papel de administrador", func() {
		maria := e.register("Maria", "maria@loja.com", "12345678901").User

		updated, err := e.users.UpdateUser(e.ctx, maria.ID, services.UpdateUserInput{
			Name:    ptr("Maria Silva"),
			IsAdmin: ptr(true),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Name).To(Equal("Maria Silva"))
		Expect(updated.IsAdmin).To(BeTrue())
		Expect(updated.Email.String()).To(Equal("maria@loja.com"))

		// o papel vem do banco, não do token antigo
		user, _, err := e.auth.Authenticate(e.ctx, e.mustLogin("maria@loja.com"))
		Expect(err).NotTo(HaveOccurred())
		Expect(user.IsAdmin).To(BeTrue())
	})

	It("rejeita email ou cpf de outro usuário", func() {
		e.register("Ana", "ana@loja.com", "11111111111")
		bruno := e.register("Bruno", "bruno@loja.com", "22222222222").User

		_, err := e.users.UpdateUser(e.ctx, bruno.ID, services.UpdateUserInput{Email: ptr("ana@loja.com")})
		Expect(err).To(MatchError(errors.ErrUserAlreadyExists))

		_, err = e.users.UpdateUser(e.ctx, bruno.ID, services.UpdateUserInput{CPF: ptr("11111111111")})
		Expect(err).To(MatchError(errors.ErrUserAlreadyExists))

		// manter os próprios dados não é conflito
		_, err = e.users.UpdateUser(e.ctx, bruno.ID, services.UpdateUserInput{Email: ptr("bruno@loja.com")})
		Expect(err).NotTo(HaveOccurred())
	})

	It("aplica as mesmas validações do cadastro", func() {
		maria := e.register("Maria", "maria@loja.com", "12345678901").User

		_, err := e.users.UpdateUser(e.ctx, maria.ID, services.UpdateUserInput{CPF: ptr("123")})
		Expect(err).To(MatchError(errors.ErrInvalidCPF))
	})

	It("retorna not found para ids desconhecidos", func() {
		_, err := e.users.GetUser(e.ctx, "nao-existe")
		Expect(err).To(MatchError(errors.ErrUserNotFound))

		_, err = e.users.UpdateUser(e.ctx, "00000000-0000-0000-0000-000000000000", services.UpdateUserInput{Name: ptr("x")})
		Expect(err).To(MatchError(errors.ErrUserNotFound))

		Expect(e.users.DeleteUser(e.ctx, "00000000-0000-0000-0000-000000000000")).To(MatchError(errors.ErrUserNotFound))
	})

	Describe("EnsureAdmin", func() {
		seed := services.AdminSeed{
			Name:     "Administrador",
			Email:    "admin@loja.com",
			Password: "admin123",
			Phone:    "11999999999",
			CPF:      "00000000000",
		}

		It("cria o admin apenas uma vez", func() {
			created, err := e.users.EnsureAdmin(e.ctx, seed)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			created, err = e.users.EnsureAdmin(e.ctx, seed)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())

			result, err := e.auth.Login(e.ctx, "admin@loja.com", "admin123")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.IsAdmin).To(BeTrue())
		})

		It("exige senha válida", func() {
			weak := seed
			weak.Password = "123"
			_, err := e.users.EnsureAdmin(e.ctx, weak)
			Expect(err).To(MatchError(errors.ErrPasswordTooShort))
		})
	})
})

func (e *env) mustLogin(email string) string {
	result, err := e.auth.Login(e.ctx, email, "senha123")
	Expect(err).NotTo(HaveOccurred())
	return result.Token
}
