package countries

import "strings"

// Country is one row of the static calling-code registry.
type Country struct {
	ISO2     string `json:"iso2"`
	Name     string `json:"name"`
	DialCode string `json:"dial_code"`
}

// DefaultISO2 is the fallback selected when geo detection fails or returns
// a code the registry does not know.
const DefaultISO2 = "MA"

var registry = []Country{
	{ISO2: "MA", Name: "Maroc", DialCode: "+212"},
	{ISO2: "FR", Name: "France", DialCode: "+33"},
	{ISO2: "BE", Name: "Belgique", DialCode: "+32"},
	{ISO2: "CH", Name: "Suisse", DialCode: "+41"},
	{ISO2: "ES", Name: "Espagne", DialCode: "+34"},
	{ISO2: "PT", Name: "Portugal", DialCode: "+351"},
	{ISO2: "IT", Name: "Italie", DialCode: "+39"},
	{ISO2: "DE", Name: "Allemagne", DialCode: "+49"},
	{ISO2: "GB", Name: "Royaume-Uni", DialCode: "+44"},
	{ISO2: "IE", Name: "Irlande", DialCode: "+353"},
	{ISO2: "NL", Name: "Pays-Bas", DialCode: "+31"},
	{ISO2: "LU", Name: "Luxembourg", DialCode: "+352"},
	{ISO2: "US", Name: "États-Unis", DialCode: "+1"},
	{ISO2: "CA", Name: "Canada", DialCode: "+1"},
	{ISO2: "DZ", Name: "Algérie", DialCode: "+213"},
	{ISO2: "TN", Name: "Tunisie", DialCode: "+216"},
	{ISO2: "SN", Name: "Sénégal", DialCode: "+221"},
	{ISO2: "CI", Name: "Côte d'Ivoire", DialCode: "+225"},
	{ISO2: "ML", Name: "Mali", DialCode: "+223"},
	{ISO2: "MR", Name: "Mauritanie", DialCode: "+222"},
	{ISO2: "EG", Name: "Égypte", DialCode: "+20"},
	{ISO2: "AE", Name: "Émirats arabes unis", DialCode: "+971"},
	{ISO2: "SA", Name: "Arabie saoudite", DialCode: "+966"},
	{ISO2: "QA", Name: "Qatar", DialCode: "+974"},
	{ISO2: "KW", Name: "Koweït", DialCode: "+965"},
	{ISO2: "TR", Name: "Turquie", DialCode: "+90"},
	{ISO2: "CN", Name: "Chine", DialCode: "+86"},
	{ISO2: "JP", Name: "Japon", DialCode: "+81"},
	{ISO2: "IN", Name: "Inde", DialCode: "+91"},
	{ISO2: "BR", Name: "Brésil", DialCode: "+55"},
	{ISO2: "RU", Name: "Russie", DialCode: "+7"},
	{ISO2: "SE", Name: "Suède", DialCode: "+46"},
	{ISO2: "NO", Name: "Norvège", DialCode: "+47"},
	{ISO2: "DK", Name: "Danemark", DialCode: "+45"},
	{ISO2: "AT", Name: "Autriche", DialCode: "+43"},
	{ISO2: "PL", Name: "Pologne", DialCode: "+48"},
	{ISO2: "GR", Name: "Grèce", DialCode: "+30"},
	{ISO2: "AU", Name: "Australie", DialCode: "+61"},
	{ISO2: "ZA", Name: "Afrique du Sud", DialCode: "+27"},
	{ISO2: "NG", Name: "Nigéria", DialCode: "+234"},
}

var byISO2 = func() map[string]Country {
	m := make(map[string]Country, len(registry))
	for _, c := range registry {
		m[c.ISO2] = c
	}
	return m
}()

// ByISO2 looks a country up by its two-letter code, case-insensitively.
func ByISO2(code string) (Country, bool) {
	c, ok := byISO2[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// Default returns the fallback country. The registry always contains it.
func Default() Country {
	return byISO2[DefaultISO2]
}

// All returns the registry in declaration order. Callers must not mutate
// the returned slice.
func All() []Country {
	return registry
}
