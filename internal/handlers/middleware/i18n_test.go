package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/infrastructure/i18n"
)

func setupTestI18n(t *testing.T) *i18n.Service {
	t.Helper()

	locales := fstest.MapFS{
		"en.json":    {Data: []byte(`{"welcome": "Welcome"}`)},
		"pt-BR.json": {Data: []byte(`{"welcome": "Bem-vindo"}`)},
		"es.json":    {Data: []byte(`{"welcome": "Bienvenido"}`)},
	}

	service, err := i18n.NewService(locales, "en")
	if err != nil {
		t.Fatalf("failed to initialize i18n service: %v", err)
	}

	return service
}

func detect(t *testing.T, m *I18nMiddleware, target, acceptLanguage string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest("GET", target, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	c.Request = req

	m.DetectLanguage()(c)
	return c, w
}

func TestI18nMiddleware_DetectLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware := NewI18nMiddleware(setupTestI18n(t))

	tests := []struct {
		name           string
		target         string
		acceptLanguage string
		expected       string
	}{
		{"detecta idioma do query parameter", "/?lang=pt-BR", "", "pt-BR"},
		{"query parameter sem região usa a variante suportada", "/?lang=pt", "", "pt-BR"},
		{"detecta idioma do Accept-Language header", "/", "es,en;q=0.9", "es"},
		{"usa idioma padrão quando nenhum é especificado", "/", "", "en"},
		{"query parameter tem prioridade sobre Accept-Language", "/?lang=pt-BR", "es", "pt-BR"},
		{"ignora query parameter inválido e usa Accept-Language", "/?lang=fr", "es", "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := detect(t, middleware, tt.target, tt.acceptLanguage)

			lang, exists := c.Get(i18n.LanguageContextKey)
			if !exists {
				t.Fatal("idioma não foi definido no contexto")
			}
			if lang != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, lang)
			}
			if got := w.Header().Get("Content-Language"); got != tt.expected {
				t.Errorf("esperava Content-Language '%s', obteve '%s'", tt.expected, got)
			}
		})
	}

	t.Run("define serviço i18n no contexto", func(t *testing.T) {
		c, _ := detect(t, middleware, "/", "")

		service, exists := c.Get(i18n.I18nServiceContextKey)
		if !exists {
			t.Fatal("serviço i18n não foi definido no contexto")
		}

		if service == nil {
			t.Error("serviço i18n é nulo")
		}
	})
}

func TestI18nMiddleware_parseAcceptLanguage(t *testing.T) {
	middleware := NewI18nMiddleware(setupTestI18n(t))

	tests := []struct {
		name       string
		acceptLang string
		expected   string
	}{
		{
			name:       "idioma único suportado",
			acceptLang: "pt-BR",
			expected:   "pt-BR",
		},
		{
			name:       "múltiplos idiomas, primeiro é suportado",
			acceptLang: "es,pt-BR;q=0.9,en;q=0.8",
			expected:   "es",
		},
		{
			name:       "múltiplos idiomas, segundo é suportado",
			acceptLang: "fr,pt-BR;q=0.9,en;q=0.8",
			expected:   "pt-BR",
		},
		{
			name:       "respeita o peso q fora de ordem",
			acceptLang: "en;q=0.5,es;q=0.9",
			expected:   "es",
		},
		{
			name:       "q=0 exclui o idioma",
			acceptLang: "es;q=0,en",
			expected:   "en",
		},
		{
			name:       "nenhum idioma suportado",
			acceptLang: "fr,de;q=0.9",
			expected:   "",
		},
		{
			name:       "header vazio",
			acceptLang: "",
			expected:   "",
		},
		{
			name:       "base sem região encontra a variante regional",
			acceptLang: "pt",
			expected:   "pt-BR",
		},
		{
			name:       "região não suportada cai para a base",
			acceptLang: "en-US",
			expected:   "en",
		},
		{
			name:       "não diferencia maiúsculas",
			acceptLang: "PT-br",
			expected:   "pt-BR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := middleware.parseAcceptLanguage(tt.acceptLang)
			if result != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, result)
			}
		})
	}
}

func TestI18nMiddleware_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware := NewI18nMiddleware(setupTestI18n(t))

	router := gin.New()
	router.Use(middleware.DetectLanguage())
	router.GET("/test", func(c *gin.Context) {
		lang, _ := c.Get(i18n.LanguageContextKey)
		service, _ := c.Get(i18n.I18nServiceContextKey)
		i18nSvc := service.(*i18n.Service)

		message := i18nSvc.T(lang.(string), "welcome")
		c.JSON(http.StatusOK, gin.H{"message": message})
	})

	t.Run("integração completa com português", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test?lang=pt-BR", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperava status 200, obteve %d", w.Code)
		}

		expected := `{"message":"Bem-vindo"}`
		if w.Body.String() != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, w.Body.String())
		}
	})

	t.Run("integração completa com espanhol via Accept-Language", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Language", "es")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperava status 200, obteve %d", w.Code)
		}

		expected := `{"message":"Bienvenido"}`
		if w.Body.String() != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, w.Body.String())
		}
	})
}
