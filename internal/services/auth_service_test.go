package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv(true)
	})

	Describe("Register", func() {
		It("cria usuário comum e emite token", func() {
			result := e.register("Maria", "Maria@Loja.com", "12345678901")

			Expect(result.Token).NotTo(BeEmpty())
			Expect(result.User.IsAdmin).To(BeFalse())
			Expect(result.User.Email.String()).To(Equal("maria@loja.com"))
			Expect(result.User.PasswordHash).NotTo(Equal("senha123"))

			claims, err := e.tokens.Verify(result.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(result.User.ID))
			Expect(claims.IsAdmin).To(BeFalse())

			Expect(e.events.Types()).To(ConsistOf(ports.EventUserRegistered))
			Expect(e.metrics.Count("register:success")).To(Equal(1))
		})

		It("rejeita email ou cpf repetidos com o mesmo erro", func() {
			e.register("Maria", "maria@loja.com", "12345678901")

			_, err := e.auth.Register(e.ctx, services.RegisterInput{
				Name: "Outra", Email: "maria@loja.com", Password: "senha123", Phone: "11", CPF: "99999999999",
			})
			Expect(err).To(MatchError(errors.ErrUserAlreadyExists))

			_, err = e.auth.Register(e.ctx, services.RegisterInput{
				Name: "Outra", Email: "outra@loja.com", Password: "senha123", Phone: "11", CPF: "12345678901",
			})
			Expect(err).To(MatchError(errors.ErrUserAlreadyExists))
			Expect(e.metrics.Count("register:failure")).To(Equal(2))
		})

		It("lista todos os campos inválidos", func() {
			_, err := e.auth.Register(e.ctx, services.RegisterInput{
				Name: " ", Email: "invalido", Password: "123", Phone: "", CPF: "123",
			})
			Expect(err).To(MatchError(errors.ErrValidation))
			Expect(err).To(MatchError(errors.ErrPasswordTooShort))
			Expect(err).To(MatchError(errors.ErrInvalidCPF))
			Expect(err).To(MatchError(errors.ErrInvalidEmail))

			var verr *errors.ValidationError
			Expect(err).To(BeAssignableToTypeOf(verr))
			Expect(err.(*errors.ValidationError).Fields).To(HaveLen(5))
		})
	})

	Describe("Login", func() {
		BeforeEach(func() {
			e.register("Maria", "maria@loja.com", "12345678901")
		})

		It("autentica com credenciais corretas e registra o último login", func() {
			result, err := e.auth.Login(e.ctx, "MARIA@loja.com", "senha123")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Token).NotTo(BeEmpty())

			stored, err := e.userRepo.FindByID(e.ctx, result.User.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.LastLoginAt).NotTo(BeNil())
		})

		It("não diferencia email desconhecido de senha errada", func() {
			_, errUnknown := e.auth.Login(e.ctx, "ninguem@loja.com", "senha123")
			_, errWrong := e.auth.Login(e.ctx, "maria@loja.com", "errada")

			Expect(errUnknown).To(MatchError(errors.ErrInvalidCredentials))
			Expect(errWrong).To(MatchError(errors.ErrInvalidCredentials))
			Expect(errUnknown.Error()).To(Equal(errWrong.Error()))
			Expect(e.metrics.Count("login:failure")).To(Equal(2))
		})
	})

	Describe("Authenticate e Logout", func() {
		It("resolve o usuário do token", func() {
			result := e.register("Maria", "maria@loja.com", "12345678901")

			user, claims, err := e.auth.Authenticate(e.ctx, result.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(result.User.ID))
			Expect(claims.TokenID).NotTo(BeEmpty())
		})

		It("classifica token ausente, inválido e usuário removido", func() {
			_, _, err := e.auth.Authenticate(e.ctx, "")
			Expect(err).To(MatchError(errors.ErrNoToken))

			_, _, err = e.auth.Authenticate(e.ctx, "nao-e-um-jwt")
			Expect(err).To(MatchError(errors.ErrInvalidToken))

			result := e.register("Maria", "maria@loja.com", "12345678901")
			Expect(e.users.DeleteUser(e.ctx, result.User.ID)).To(Succeed())

			_, _, err = e.auth.Authenticate(e.ctx, result.Token)
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})

		It("revoga o token no logout", func() {
			result := e.register("Maria", "maria@loja.com", "12345678901")
			user, claims, err := e.auth.Authenticate(e.ctx, result.Token)
			Expect(err).NotTo(HaveOccurred())

			Expect(e.auth.Logout(e.ctx, user, claims)).To(Succeed())
			Expect(e.denylist.Len()).To(Equal(1))

			_, _, err = e.auth.Authenticate(e.ctx, result.Token)
			Expect(err).To(MatchError(errors.ErrInvalidToken))
		})

		It("mantém o token válido quando a revogação está desligada", func() {
			e = newEnv(false)
			result := e.register("Maria", "maria@loja.com", "12345678901")
			user, claims, err := e.auth.Authenticate(e.ctx, result.Token)
			Expect(err).NotTo(HaveOccurred())

			Expect(e.auth.Logout(e.ctx, user, claims)).To(Succeed())

			_, _, err = e.auth.Authenticate(e.ctx, result.Token)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
