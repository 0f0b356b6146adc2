package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/infrastructure/i18n"
)

// fallbackLanguage é usado quando o middleware de i18n não rodou
const fallbackLanguage = "pt-BR"

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "error.not_found.detail", map[string]interface{}{"Resource": "Produto"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	// Buscar serviço i18n do contexto
	i18nService, exists := c.Get(i18n.I18nServiceContextKey)
	if !exists {
		// Fallback: retornar a chave se serviço não estiver disponível
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// Has indica se existe tradução para a chave no contexto atual
func Has(c *gin.Context, key string) bool {
	i18nService, exists := c.Get(i18n.I18nServiceContextKey)
	if !exists {
		return false
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return false
	}

	return service.Has(GetLanguage(c), key)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(i18n.LanguageContextKey)
	if !exists {
		return fallbackLanguage
	}

	langStr, ok := lang.(string)
	if !ok {
		return fallbackLanguage
	}

	return langStr
}
