// File: internal/services/directory/regions.go
package directory

// UnknownRegionName is stored when a feed row carries a region code outside
// the fixed table.
const UnknownRegionName = "Región no encontrada"

// regionNames is the fixed table of Chilean administrative regions as the
// health-ministry feed encodes them.
var regionNames = map[int]string{
	1:  "Arica y Parinacota",
	2:  "Tarapacá",
	3:  "Antofagasta",
	4:  "Atacama",
	5:  "Coquimbo",
	6:  "Valparaíso",
	7:  "Metropolitana de Santiago",
	8:  "Libertador General Bernardo O'Higgins",
	9:  "Maule",
	10: "Biobío",
	11: "La Araucanía",
	12: "Los Ríos",
	13: "Los Lagos",
	14: "Aysén del General Carlos Ibáñez del Campo",
	15: "Magallanes y de la Antártica Chilena",
	16: "Ñuble",
}

// RegionName resolves a region code to its display name.
func RegionName(code int) string {
	if name, ok := regionNames[code]; ok {
		return name
	}
	return UnknownRegionName
}
