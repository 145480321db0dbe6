// File: internal/services/router/format.go
package router

import (
	"fmt"
	"strings"

	"github.com/pharmago/pharmago/internal/domain"
)

// maxListedPharmacies caps the chat reply length; the count line still
// reports the full total.
const maxListedPharmacies = 10

// FormatPharmacyResults renders a pharmacy lookup as chat text.
func FormatPharmacyResults(pharmacies []domain.Pharmacy, commune string, onDutyOnly bool) string {
	kind := ""
	if onDutyOnly {
		kind = "de turno "
	}

	if len(pharmacies) == 0 {
		return fmt.Sprintf("No se encontraron farmacias %sen %s.", kind, commune)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Encontré %d farmacias %sen %s:\n\n", len(pharmacies), kind, commune)

	listed := pharmacies
	if len(listed) > maxListedPharmacies {
		listed = listed[:maxListedPharmacies]
	}

	for i, p := range listed {
		fmt.Fprintf(&b, "%d. %s", i+1, p.Name)
		if p.OnDuty {
			b.WriteString(" (DE TURNO)")
		}
		b.WriteString("\n")

		if p.Address != "" {
			fmt.Fprintf(&b, "   Dirección: %s\n", p.Address)
		}
		if p.OpensAt != "" && p.ClosesAt != "" {
			fmt.Fprintf(&b, "   Horario: %s - %s\n", p.OpensAt, p.ClosesAt)
		}
		if p.Phone != "" {
			fmt.Fprintf(&b, "   Teléfono: %s\n", p.Phone)
		}
		if p.MapURL != "" {
			fmt.Fprintf(&b, "   Mapa: %s\n", p.MapURL)
		}
		b.WriteString("\n")
	}

	if len(pharmacies) > maxListedPharmacies {
		fmt.Fprintf(&b, "...y %d farmacias más.\n", len(pharmacies)-maxListedPharmacies)
	}

	return b.String()
}
