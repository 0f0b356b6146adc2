package services_test

import (
	"context"
	"sync"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
	"github.com/rafabene/loja-backend/internal/infrastructure/cache"
	"github.com/rafabene/loja-backend/internal/infrastructure/logging"
	"github.com/rafabene/loja-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/loja-backend/internal/infrastructure/security"
	"github.com/rafabene/loja-backend/internal/services"
	"github.com/rafabene/loja-backend/internal/testutil"
)

func TestServices(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Services Suite")
}

// recordingPublisher guarda os eventos publicados
type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event ports.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

// recordingMetrics guarda as observações de checkout e autenticação
type recordingMetrics struct {
	mu        sync.Mutex
	checkouts []decimal.Decimal
	units     int
	auth      map[string]int
}

func (m *recordingMetrics) ObserveCheckout(total decimal.Decimal, units int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkouts = append(m.checkouts, total)
	m.units += units
}

func (m *recordingMetrics) ObserveAuth(event string, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.auth == nil {
		m.auth = map[string]int{}
	}
	key := event + ":failure"
	if success {
		key = event + ":success"
	}
	m.auth[key]++
}

func (m *recordingMetrics) Count(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.auth[key]
}

// env monta os serviços sobre um sqlite em memória novo
type env struct {
	ctx      context.Context
	events   *recordingPublisher
	metrics  *recordingMetrics
	denylist *cache.MemoryDenylist
	tokens   *security.JWTService

	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	cartRepo    repositories.CartRepository
	orderRepo   repositories.OrderRepository

	auth     *services.AuthService
	users    *services.UserService
	products *services.ProductService
	carts    *services.CartService
	orders   *services.OrderService
	contacts *services.ContactService
	logs     *services.ClientLogService
}

func newEnv(revokeOnLogout bool) *env {
	db := testutil.NewDB(GinkgoT())
	log := logging.Nop()

	tokens, err := security.NewJWTService("segredo-de-teste", 0)
	Expect(err).NotTo(HaveOccurred())

	e := &env{
		ctx:         context.Background(),
		events:      &recordingPublisher{},
		metrics:     &recordingMetrics{},
		denylist:    cache.NewMemoryDenylist(),
		tokens:      tokens,
		userRepo:    postgres.NewUserRepository(db),
		productRepo: postgres.NewProductRepository(db),
		cartRepo:    postgres.NewCartRepository(db),
		orderRepo:   postgres.NewOrderRepository(db),
	}

	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	uow := postgres.NewUnitOfWork(db)
	limits := repositories.DefaultPageLimits

	e.auth = services.NewAuthService(e.userRepo, hasher, tokens, e.denylist, e.events, e.metrics, log, revokeOnLogout)
	e.users = services.NewUserService(e.userRepo, hasher, uow, log, limits)
	e.products = services.NewProductService(e.productRepo, log, limits)
	e.carts = services.NewCartService(e.cartRepo, log)
	e.orders = services.NewOrderService(e.cartRepo, e.orderRepo, uow, e.events, e.metrics, log, limits)
	e.contacts = services.NewContactService(postgres.NewContactRepository(db), e.events, log, limits)
	e.logs = services.NewClientLogService(log)

	return e
}

func (e *env) register(name, email, cpf string) *services.AuthResult {
	result, err := e.auth.Register(e.ctx, services.RegisterInput{
		Name:     name,
		Email:    email,
		Password: "senha123",
		Phone:    "11999999999",
		CPF:      cpf,
	})
	Expect(err).NotTo(HaveOccurred())
	return result
}

func (e *env) product(name, price string) string {
	p, err := e.products.CreateProduct(e.ctx, services.CreateProductInput{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Description: "descrição de " + name,
		ImageURL:    "/img/" + name + ".png",
	})
	Expect(err).NotTo(HaveOccurred())
	return p.ID
}
