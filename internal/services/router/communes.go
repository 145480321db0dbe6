// File: internal/services/router/communes.go
package router

import "strings"

// knownCommunes lists every Chilean commune the detector recognizes, in
// lowercase without accents, matching how users usually type them. Order
// matters: detection returns the first name found as a substring.
var knownCommunes = []string{
	"limache", "tolten", "pedro aguirre cerda", "cabrero", "ancud", "antuco",
	"la calera", "cunco", "peñaflor", "maria pinto", "castro", "yumbel",
	"quillota", "gorbea", "peñalolen", "pencahue", "puerto montt", "quilleco",
	"la cruz", "villarrica", "providencia", "quemchi", "tocopilla", "tucapel",
	"quilpue", "lautaro", "vitacura", "caldera", "mejillones", "andacollo",
	"quintero", "pitrufquen", "pudahuel", "maullin", "puerto varas", "mafil",
	"viña del mar", "collipulli", "puente alto", "lota", "la serena", "corral",
	"valparaiso", "loncoche", "quilicura", "san pablo", "combarbala", "ninhue",
	"casablanca", "rancagua", "quinta normal", "coihueco", "salamanca", "algarrobo",
	"el tabo", "ovalle", "recoleta", "santa barbara", "calbuco", "chillan viejo",
	"san antonio", "vicuña", "renca", "mulchen", "los muermos", "quinchao",
	"cabildo", "illapel", "san joaquin", "cartagena", "osorno", "purranque",
	"catemu", "coquimbo", "san miguel", "rio negro", "llanquihue", "quinta de tilcoco",
	"la ligua", "los vilos", "san ramon", "nogales", "aysen", "punta arenas",
	"los andes", "san fernando", "talagante", "puqueldon", "coyhaique", "puerto natales",
	"papudo", "graneros", "arauco", "quilaco", "pica", "arica",
	"putaendo", "las cabras", "bulnes", "padre las casas", "fresia", "puren",
	"santa maria", "peralillo", "cañete", "victoria", "calama", "paredones",
	"zapallar", "pichidegua", "chiguayante", "carahue", "chonchi", "angol",
	"llay llay", "chimbarongo", "chillan", "lonquimay", "antofagasta", "traiguen",
	"juan fernandez", "doñihue", "coelemu", "frutillar", "nueva imperial", "curacautin",
	"iquique", "litueche", "concepcion", "calera de tango", "lanco", "san pedro",
	"puchuncavi", "marchigue", "tome", "tirua", "paillaco", "teodoro schmidt",
	"concon", "nancagua", "coronel", "renaico", "rio bueno", "san juan de la costa",
	"alto hospicio", "navidad", "curanilahue", "el quisco", "panguipulli", "pucon",
	"hijuelas", "requinoa", "hualpen", "vilcun", "la union", "puerto octay",
	"rinconada", "san francisco de mostazal", "hualqui", "vallenar", "valdivia", "alto bio bio",
	"panquehue", "santa cruz", "lebu", "tierra amarilla", "temuco", "hualaihue",
	"san esteban", "peumo", "los alamos", "colbun", "quellon", "san rosendo",
	"buin", "machali", "penco", "villa alemana", "dalcahue", "negrete",
	"cerrillos", "san vicente", "pinto", "pozo almonte", "lo barnechea", "lolol",
	"cerro navia", "pichilemu", "quillon", "huara", "lo espejo", "licanten",
	"colina", "rengo", "quirihue", "alhue", "lo prado", "maule",
	"conchali", "retiro", "san carlos", "los sauces", "macul", "til-til",
	"curacavi", "hualañe", "san pedro de la paz", "galvarino", "maipu", "taltal",
	"el bosque", "teno", "talcahuano", "puerto saavedra", "melipilla", "pelluhue",
	"el monte", "san clemente", "yungay", "huasco", "ñuñoa", "isla de pascua",
	"estacion central", "san javier", "los angeles", "alto del carmen", "padre hurtado", "longavi",
	"santiago", "molina", "nacimiento", "san nicolas", "paine", "puyehue",
	"san bernardo", "parral", "laja", "pirque", "chañaral", "lumaco",
	"huechuraba", "cauquenes", "florida", "chanco", "lago ranco", "san rafael",
	"independencia", "linares", "santa juana", "romeral", "los lagos", "yerbas buenas",
	"isla de maipo", "constitucion", "san felipe", "sagrada familia", "mariquina", "san fabian",
	"la cisterna", "curico", "copiapo", "vichuquen", "futrono", "freirina",
	"la florida", "talca", "diego de almagro", "perquenco", "las condes", "rauco",
	"la granja", "cochrane", "la pintana", "el carmen", "la reina", "san ignacio",
	"lampa", "petorca",
}

// DetectCommune finds the first known commune mentioned in the query.
// Returns "" when none is mentioned; callers then ask the user for one
// instead of guessing.
func DetectCommune(query string) string {
	lowered := strings.ToLower(query)
	for _, commune := range knownCommunes {
		if strings.Contains(lowered, commune) {
			return commune
		}
	}
	return ""
}
