package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
	"github.com/rafabene/loja-backend/internal/services"
)

var _ = Describe("ContactService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv(true)
	})

	It("grava a mensagem sem marcação e não respondida", func() {
		msg, err := e.contacts.CreateMessage(e.ctx, services.ContactInput{
			Name:    "Maria",
			Email:   "maria@loja.com",
			Message: `Olá <script>alert("x")</script><b>loja</b>`,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Resolved).To(BeFalse())
		Expect(msg.SentAt.IsZero()).To(BeFalse())
		Expect(msg.Message).NotTo(ContainSubstring("<"))
		Expect(msg.Message).To(ContainSubstring("loja"))
		Expect(e.events.Types()).To(ConsistOf(ports.EventContactCreated))
	})

	It("valida nome, email e mensagem", func() {
		_, err := e.contacts.CreateMessage(e.ctx, services.ContactInput{Email: "invalido"})
		Expect(err).To(MatchError(errors.ErrInvalidEmail))
		Expect(err).To(MatchError(errors.ErrRequiredField))

		_, err = e.contacts.CreateMessage(e.ctx, services.ContactInput{Name: "Maria", Email: "maria@loja.com", Message: "<p></p>"})
		Expect(err).To(MatchError(errors.ErrRequiredField))
	})

	It("marca como respondida e filtra a listagem", func() {
		first, err := e.contacts.CreateMessage(e.ctx, services.ContactInput{Name: "A", Email: "a@loja.com", Message: "um"})
		Expect(err).NotTo(HaveOccurred())
		_, err = e.contacts.CreateMessage(e.ctx, services.ContactInput{Name: "B", Email: "b@loja.com", Message: "dois"})
		Expect(err).NotTo(HaveOccurred())

		marked, err := e.contacts.MarkResolved(e.ctx, first.ID, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(marked.Resolved).To(BeTrue())

		resolved := true
		page, err := e.contacts.ListMessages(e.ctx, repositories.MessageFilters{Resolved: &resolved})
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Items).To(HaveLen(1))
		Expect(page.Items[0].ID).To(Equal(first.ID))

		page, err = e.contacts.ListMessages(e.ctx, repositories.MessageFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Total).To(BeEquivalentTo(2))
	})

	It("retorna not found para ids desconhecidos", func() {
		_, err := e.contacts.GetMessage(e.ctx, "nao-existe")
		Expect(err).To(MatchError(errors.ErrMessageNotFound))

		_, err = e.contacts.MarkResolved(e.ctx, "nao-existe", true)
		Expect(err).To(MatchError(errors.ErrMessageNotFound))

		Expect(e.contacts.DeleteMessage(e.ctx, "nao-existe")).To(MatchError(errors.ErrMessageNotFound))
	})
})

var _ = Describe("ClientLogService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv(true)
	})

	It("aceita lotes até o limite", func() {
		entries := make([]services.ClientLogEntry, services.MaxClientLogEntries)
		for i := range entries {
			entries[i] = services.ClientLogEntry{Origin: "checkout", Message: "clicou"}
		}

		n, err := e.logs.Record(e.ctx, &entities.User{}, entries)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(services.MaxClientLogEntries))

		_, err = e.logs.Record(e.ctx, nil, append(entries, services.ClientLogEntry{}))
		Expect(err).To(MatchError(errors.ErrTooManyLogEntries))

		_, err = e.logs.Record(e.ctx, nil, nil)
		Expect(err).To(MatchError(errors.ErrRequiredField))
	})
})
