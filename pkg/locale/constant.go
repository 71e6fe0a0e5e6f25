package locale

// Locale is the context key type for the request locale.
type Locale struct{}

const (
	// EN is English.
	EN = "en"
	// ES is Spanish.
	ES = "es"
	// PT is Portuguese.
	PT = "pt"
)

// LangList contains all supported language codes.
var LangList = []string{EN, ES, PT}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = EN
