// Package i18n provides internationalization support for the catering service.
// It translates error keys carried by domain errors into the caller's language.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Unknown locales fall back to DefaultLocale; unknown keys are returned as-is.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.lookup(key, locale); ok {
		return msg
	}
	return key
}

// TranslateOr is Translate with an explicit fallback for keys no locale knows about.
func (t *Translator) TranslateOr(key, locale, fallback string) string {
	if msg, ok := t.lookup(key, locale); ok {
		return msg
	}
	return fallback
}

func (t *Translator) lookup(key, locale string) (string, bool) {
	if locale == "" {
		locale = DefaultLocale
	}
	if msgs, ok := t.messages[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg, true
		}
	}
	msg, ok := t.messages[DefaultLocale][key]
	return msg, ok
}

// GetLocale extracts the locale from the Accept-Language header of the request.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// e.g. "pt-BR,pt;q=0.9,en;q=0.8"
	first := strings.TrimSpace(strings.Split(strings.Split(acceptLang, ",")[0], ";")[0])
	if idx := strings.Index(first, "-"); idx > 0 {
		first = first[:idx]
	}
	first = strings.ToLower(first)
	if _, ok := defaultMessages[first]; ok {
		return first
	}
	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Invalid request body",
		ErrKeyInvalidID:          "Invalid identifier",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyUnauthorized:       "Unauthorized",
		ErrKeyForbidden:          "Forbidden",
		ErrKeyNotFound:           "Not found",
		ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
		ErrKeyConflict:           "Conflict",
		ErrKeyInvalidToken:       "Invalid or expired token",
		ErrKeyTokenRequired:      "Authentication token is required",
		ErrKeyTimeout:            "Request timeout",

		ErrKeyInvalidCaterer:             "Invalid caterer",
		ErrKeyInvalidBuyer:               "Only buyers can compose their own packages",
		ErrKeyDishNotFound:               "Dish not found",
		ErrKeyPackageNotFound:            "Package not found",
		ErrKeyPackageItemNotFound:        "Package item not found",
		ErrKeyPackageItemsNotOwned:       "Some package items not found or do not belong to this caterer",
		ErrKeyAddOnNotFound:              "Add-on not found",
		ErrKeyCategoryNotFound:           "Category not found",
		ErrKeySubCategoryMismatch:        "Sub-category does not belong to the selected category",
		ErrKeyOccasionNotFound:           "Occasion not found",
		ErrKeyMinimumGuestsNotConfigured: "Set your minimum guest count in caterer settings before creating packages",
		ErrKeySelectionsNotAllowed:       "Category selections are only allowed for FIXED packages",
		ErrKeySelectionInvalidCount:      "num_dishes_to_select must be at least 1",
		ErrKeySelectionDuplicate:         "Each category can only have one selection rule",
		ErrKeyAddOnRequiresFixed:         "Add-ons can only be attached to FIXED packages",
		ErrKeyAddOnInvalidPrice:          "Add-on price must be a non-negative number",
		ErrKeyDishInUse:                  "Dish is used by one or more package items",
		ErrKeyPackageModified:            "Package was modified concurrently, please retry",
		ErrKeyValidationFailed:           "Validation failed",
		ErrKeyMixedCaterers:              "All dishes must come from the same caterer",
	},
	"pt": {
		ErrKeyInvalidRequest:     "Requisição inválida",
		ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
		ErrKeyInvalidID:          "Identificador inválido",
		ErrKeyInternalError:      "Ocorreu um erro inesperado",
		ErrKeyUnauthorized:       "Não autorizado",
		ErrKeyForbidden:          "Proibido",
		ErrKeyNotFound:           "Não encontrado",
		ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
		ErrKeyConflict:           "Conflito",
		ErrKeyInvalidToken:       "Token inválido ou expirado",
		ErrKeyTokenRequired:      "Token de autenticação é obrigatório",
		ErrKeyTimeout:            "Tempo de requisição esgotado",

		ErrKeyInvalidCaterer:             "Fornecedor inválido",
		ErrKeyInvalidBuyer:               "Apenas compradores podem montar seus próprios pacotes",
		ErrKeyDishNotFound:               "Prato não encontrado",
		ErrKeyPackageNotFound:            "Pacote não encontrado",
		ErrKeyPackageItemNotFound:        "Item de pacote não encontrado",
		ErrKeyPackageItemsNotOwned:       "Alguns itens não foram encontrados ou não pertencem a este fornecedor",
		ErrKeyAddOnNotFound:              "Adicional não encontrado",
		ErrKeyCategoryNotFound:           "Categoria não encontrada",
		ErrKeySubCategoryMismatch:        "A subcategoria não pertence à categoria selecionada",
		ErrKeyOccasionNotFound:           "Ocasião não encontrada",
		ErrKeyMinimumGuestsNotConfigured: "Defina o número mínimo de convidados antes de criar pacotes",
		ErrKeySelectionsNotAllowed:       "Seleções por categoria só são permitidas em pacotes FIXED",
		ErrKeySelectionInvalidCount:      "num_dishes_to_select deve ser pelo menos 1",
		ErrKeySelectionDuplicate:         "Cada categoria só pode ter uma regra de seleção",
		ErrKeyAddOnRequiresFixed:         "Adicionais só podem ser vinculados a pacotes FIXED",
		ErrKeyAddOnInvalidPrice:          "O preço do adicional deve ser um número não negativo",
		ErrKeyDishInUse:                  "O prato é usado por um ou mais itens de pacote",
		ErrKeyPackageModified:            "O pacote foi alterado simultaneamente, tente novamente",
		ErrKeyValidationFailed:           "Falha na validação",
		ErrKeyMixedCaterers:              "Todos os pratos devem ser do mesmo fornecedor",
	},
	"nl": {
		ErrKeyInvalidRequest:     "Ongeldig verzoek",
		ErrKeyInvalidRequestBody: "Ongeldige aanvraag body",
		ErrKeyInvalidID:          "Ongeldige identificatie",
		ErrKeyInternalError:      "Er is een onverwachte fout opgetreden",
		ErrKeyUnauthorized:       "Niet geautoriseerd",
		ErrKeyForbidden:          "Verboden",
		ErrKeyNotFound:           "Niet gevonden",
		ErrKeyRateLimitExceeded:  "Te veel verzoeken, probeer het later opnieuw",
		ErrKeyConflict:           "Conflict",
		ErrKeyInvalidToken:       "Ongeldig of verlopen token",
		ErrKeyTokenRequired:      "Authenticatietoken is vereist",
		ErrKeyTimeout:            "Time-out van verzoek",

		ErrKeyInvalidCaterer:             "Ongeldige cateraar",
		ErrKeyInvalidBuyer:               "Alleen kopers kunnen hun eigen pakketten samenstellen",
		ErrKeyDishNotFound:               "Gerecht niet gevonden",
		ErrKeyPackageNotFound:            "Pakket niet gevonden",
		ErrKeyPackageItemNotFound:        "Pakketitem niet gevonden",
		ErrKeyPackageItemsNotOwned:       "Sommige pakketitems zijn niet gevonden of horen niet bij deze cateraar",
		ErrKeyAddOnNotFound:              "Extra niet gevonden",
		ErrKeyCategoryNotFound:           "Categorie niet gevonden",
		ErrKeySubCategoryMismatch:        "Subcategorie hoort niet bij de gekozen categorie",
		ErrKeyOccasionNotFound:           "Gelegenheid niet gevonden",
		ErrKeyMinimumGuestsNotConfigured: "Stel eerst het minimum aantal gasten in voordat je pakketten maakt",
		ErrKeySelectionsNotAllowed:       "Categorieselecties zijn alleen toegestaan voor FIXED-pakketten",
		ErrKeySelectionInvalidCount:      "num_dishes_to_select moet minstens 1 zijn",
		ErrKeySelectionDuplicate:         "Elke categorie mag maar één selectieregel hebben",
		ErrKeyAddOnRequiresFixed:         "Extra's kunnen alleen aan FIXED-pakketten worden gekoppeld",
		ErrKeyAddOnInvalidPrice:          "De prijs van een extra moet een niet-negatief getal zijn",
		ErrKeyDishInUse:                  "Gerecht wordt gebruikt door een of meer pakketitems",
		ErrKeyPackageModified:            "Pakket is tegelijkertijd gewijzigd, probeer opnieuw",
		ErrKeyValidationFailed:           "Validatie mislukt",
		ErrKeyMixedCaterers:              "Alle gerechten moeten van dezelfde cateraar komen",
	},
}
