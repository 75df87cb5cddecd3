package model

import (
	"strings"

	"github.com/iwvelando/earning-formula/pkg/constants"
	"golang.org/x/text/language"
)

// Currency is a display currency. Amounts are never converted.
type Currency struct {
	Code        string `json:"code" yaml:"code"`
	Symbol      string `json:"symbol" yaml:"symbol"`
	DisplayName string `json:"displayName" yaml:"displayName"`
}

// Supported currencies.
var (
	CurrencyRUB = Currency{Code: "RUB", Symbol: "₽", DisplayName: "Russian ruble"}
	CurrencyUSD = Currency{Code: "USD", Symbol: "$", DisplayName: "US dollar"}
	CurrencyKZT = Currency{Code: "KZT", Symbol: "₸", DisplayName: "Kazakhstani tenge"}
)

// Currencies returns every supported currency.
func Currencies() []Currency {
	return []Currency{CurrencyRUB, CurrencyUSD, CurrencyKZT}
}

// LookupCurrency finds a supported currency by code, case-insensitively.
func LookupCurrency(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Currencies() {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// CurrencyFromCode returns the currency for code, falling back to the default.
func CurrencyFromCode(code string) Currency {
	if c, ok := LookupCurrency(code); ok {
		return c
	}
	return DefaultCurrency()
}

// DefaultCurrency is used when nothing was selected yet.
func DefaultCurrency() Currency {
	c, _ := LookupCurrency(constants.DefaultCurrencyCode)
	return c
}

// Language is a supported display language.
type Language struct {
	Code        string `json:"code" yaml:"code"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	NativeName  string `json:"nativeName" yaml:"nativeName"`
	tag         language.Tag
}

// Supported languages.
var (
	LanguageRussian = Language{Code: "ru", DisplayName: "Russian", NativeName: "Русский", tag: language.Russian}
	LanguageEnglish = Language{Code: "en", DisplayName: "English", NativeName: "English", tag: language.English}
	LanguageSpanish = Language{Code: "es", DisplayName: "Spanish", NativeName: "Español", tag: language.Spanish}
	LanguageKazakh  = Language{Code: "kk", DisplayName: "Kazakh", NativeName: "Қазақша", tag: language.Kazakh}
	LanguageGerman  = Language{Code: "de", DisplayName: "German", NativeName: "Deutsch", tag: language.German}
	LanguageFrench  = Language{Code: "fr", DisplayName: "French", NativeName: "Français", tag: language.French}
	LanguageChinese = Language{Code: "zh", DisplayName: "Chinese", NativeName: "中文", tag: language.Chinese}
	LanguageHindi   = Language{Code: "hi", DisplayName: "Hindi", NativeName: "हिन्दी", tag: language.Hindi}
	LanguageArabic  = Language{Code: "ar", DisplayName: "Arabic", NativeName: "العربية", tag: language.Arabic}
)

// Languages returns every supported language.
func Languages() []Language {
	return []Language{
		LanguageRussian, LanguageEnglish, LanguageSpanish,
		LanguageKazakh, LanguageGerman, LanguageFrench,
		LanguageChinese, LanguageHindi, LanguageArabic,
	}
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	if l.tag == (language.Tag{}) {
		return language.Make(l.Code)
	}
	return l.tag
}

// LookupLanguage finds a supported language by code, case-insensitively.
func LookupLanguage(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range Languages() {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// LanguageFromCode returns the language for code, falling back to the default.
func LanguageFromCode(code string) Language {
	if l, ok := LookupLanguage(code); ok {
		return l
	}
	return DefaultLanguage()
}

// DefaultLanguage is used when neither a saved nor a host language matches.
func DefaultLanguage() Language {
	l, _ := LookupLanguage(constants.DefaultLanguageCode)
	return l
}

// MatchLocale matches a POSIX or BCP 47 locale string ("de_DE.UTF-8", "en-US")
// against the supported languages by base language.
func MatchLocale(locale string) (Language, bool) {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return Language{}, false
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Language{}, false
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return Language{}, false
	}
	for _, l := range Languages() {
		lb, _ := l.Tag().Base()
		if lb == base {
			return l, true
		}
	}
	return Language{}, false
}

// HostLanguage inspects the locale environment variables in POSIX precedence
// order and returns the first supported match, or the default language.
func HostLanguage(getenv func(string) string) Language {
	if getenv == nil {
		return DefaultLanguage()
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if l, ok := MatchLocale(getenv(key)); ok {
			return l
		}
	}
	return DefaultLanguage()
}
