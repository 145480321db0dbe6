// File: internal/services/router/keywords.go
package router

import "strings"

// Routing is keyword-based on purpose: it is cheap, predictable and needs no
// model call. Pharmacy wins over medication when both match.
var pharmacyKeywords = []string{
	"farmacia", "farmacias", "comprar", "cerca", "cercana",
	"turno", "dirección", "donde", "dónde", "ubicación",
}

var medicationKeywords = []string{
	"medicamento", "medicina", "remedio", "pastilla", "comprimido",
	"para qué sirve", "efectos secundarios", "tratamiento", "droga",
	"fármaco", "antibiótico", "analgésico", "tratar", "cura", "curar",
}

// IsPharmacyQuery reports whether the text mentions pharmacy lookup terms.
func IsPharmacyQuery(query string) bool {
	return containsAny(strings.ToLower(query), pharmacyKeywords)
}

// IsMedicationQuery reports whether the text mentions medication terms.
func IsMedicationQuery(query string) bool {
	return containsAny(strings.ToLower(query), medicationKeywords)
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
