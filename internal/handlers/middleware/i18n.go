package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/infrastructure/i18n"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR (override explícito)
// 2. Accept-Language header (preferência do browser, respeitando q)
// 3. Idioma padrão (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.match(c.Query("lang"))

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		// Armazenar idioma e serviço no contexto
		c.Set(i18n.LanguageContextKey, lang)
		c.Set(i18n.I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

type weightedLanguage struct {
	tag    string
	weight float64
}

// parseAcceptLanguage analisa o header Accept-Language e retorna o melhor idioma suportado
// Exemplo: "en;q=0.5,pt;q=0.9" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	var candidates []weightedLanguage
	for _, part := range strings.Split(acceptLang, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if tag == "" || tag == "*" {
			continue
		}

		weight := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(q, 64)
			if err != nil {
				continue
			}
			weight = parsed
		}
		if weight <= 0 {
			continue
		}

		candidates = append(candidates, weightedLanguage{tag: tag, weight: weight})
	}

	// ordem estável mantém a ordem do header entre pesos iguais
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	for _, candidate := range candidates {
		if lang := m.match(candidate.tag); lang != "" {
			return lang
		}
	}

	return ""
}

// match aceita o idioma exato, a base sem região (en-US -> en)
// ou uma variante regional suportada (pt -> pt-BR)
func (m *I18nMiddleware) match(tag string) string {
	if tag == "" {
		return ""
	}

	for _, supported := range m.i18nService.GetSupportedLanguages() {
		if strings.EqualFold(supported, tag) {
			return supported
		}
	}

	base, _, _ := strings.Cut(tag, "-")
	for _, supported := range m.i18nService.GetSupportedLanguages() {
		supportedBase, _, _ := strings.Cut(supported, "-")
		if strings.EqualFold(supported, base) || strings.EqualFold(supportedBase, base) {
			return supported
		}
	}

	return ""
}
