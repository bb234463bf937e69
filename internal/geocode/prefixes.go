// Package geocode fills missing CEP postal codes using batch statistics
// with a specificity-ordered fallback hierarchy, and normalizes every code
// to the XXXXX-XXX format.
package geocode

// statePrefixes maps each two-letter state code to its five-digit CEP
// prefix, used to synthesize codes when no batch statistic is available.
var statePrefixes = map[string]string{
	"sp": "01000",
	"rj": "20000",
	"mg": "30000",
	"es": "29000",
	"ba": "40000",
	"se": "49000",
	"pe": "50000",
	"al": "57000",
	"pb": "58000",
	"rn": "59000",
	"ce": "60000",
	"pi": "64000",
	"ma": "65000",
	"pa": "66000",
	"ap": "68900",
	"am": "69000",
	"ac": "69900",
	"rr": "69300",
	"df": "70000",
	"go": "74000",
	"to": "77000",
	"mt": "78000",
	"ms": "79000",
	"pr": "80000",
	"sc": "88000",
	"rs": "90000",
}

// StatePrefix returns the CEP prefix for a state code.
func StatePrefix(state string) (string, bool) {
	prefix, ok := statePrefixes[state]
	return prefix, ok
}
