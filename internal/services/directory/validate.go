// File: internal/services/directory/validate.go
package directory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pharmago/pharmago/internal/domain"
)

// ValidateRecord checks one feed record and converts it to a directory row.
// Invalid records are skipped by the caller, never patched up: a missing
// required field or a non-numeric code rejects the record as a whole.
func ValidateRecord(rec FeedRecord, onDuty bool) (*domain.Pharmacy, error) {
	required := []struct {
		field string
		value string
	}{
		{"local_id", rec.LocalID.String()},
		{"local_nombre", rec.Name.String()},
		{"comuna_nombre", rec.CommuneName.String()},
		{"local_direccion", rec.Address.String()},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("required field %q is empty", f.field)
		}
	}

	localID, err := parseRequiredInt("local_id", rec.LocalID.String())
	if err != nil {
		return nil, err
	}
	if localID <= 0 {
		return nil, fmt.Errorf("local_id must be greater than 0: %d", localID)
	}

	regionCode, err := parseOptionalInt("fk_region", rec.RegionCode.String())
	if err != nil {
		return nil, err
	}
	communeCode, err := parseOptionalInt("fk_comuna", rec.CommuneCode.String())
	if err != nil {
		return nil, err
	}
	localityCode, err := parseOptionalInt("fk_localidad", rec.LocalityCode.String())
	if err != nil {
		return nil, err
	}

	row := &domain.Pharmacy{
		LocalID:      localID,
		Name:         strings.TrimSpace(rec.Name.String()),
		Commune:      strings.TrimSpace(rec.CommuneName.String()),
		Locality:     strings.TrimSpace(rec.LocalityName.String()),
		Address:      strings.TrimSpace(rec.Address.String()),
		OpensAt:      strings.TrimSpace(rec.OpensAt.String()),
		ClosesAt:     strings.TrimSpace(rec.ClosesAt.String()),
		Phone:        strings.TrimSpace(rec.Phone.String()),
		Weekday:      strings.TrimSpace(rec.Weekday.String()),
		Date:         strings.TrimSpace(rec.Date.String()),
		OnDuty:       onDuty,
		RegionCode:   regionCode,
		CommuneCode:  communeCode,
		LocalityCode: localityCode,
		Lat:          parseCoordinate(rec.Lat.String()),
		Lng:          parseCoordinate(rec.Lng.String()),
	}

	if regionCode != nil {
		row.RegionName = RegionName(*regionCode)
	}
	row.MapURL = BuildMapURL(row)

	return row, nil
}

func parseRequiredInt(field, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s is not a valid number: %q", field, raw)
	}
	return v, nil
}

// parseOptionalInt accepts an absent value but rejects a present non-number.
func parseOptionalInt(field, raw string) (*int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%s is not a valid number: %q", field, raw)
	}
	return &v, nil
}

// parseCoordinate is lenient: coordinates are optional and an unparseable
// value only downgrades the row to an address-only map link.
func parseCoordinate(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &v
}
