// Package profile holds the user's onboarding data and its validation
// rules.
package profile

import "errors"

// ErrUniversityRequired is returned when the country is Chile and no
// university was selected.
var ErrUniversityRequired = errors.New("selecciona tu universidad")

// ErrUnknownCountry is returned for a country outside the known list.
var ErrUnknownCountry = errors.New("país desconocido")

// UserProfile is the data collected during onboarding.
type UserProfile struct {
	Country    string `json:"country"`
	University string `json:"university"`
}

// Validate checks the profile against the onboarding rules. University
// is required only for Chile; for any other country it is ignored.
func (p UserProfile) Validate() error {
	known := false
	for _, c := range countries {
		if c == p.Country {
			known = true
			break
		}
	}
	if !known {
		return ErrUnknownCountry
	}
	if p.Country == "Chile" && p.University == "" {
		return ErrUniversityRequired
	}
	return nil
}

// Countries returns the selectable country list, Chile first.
func Countries() []string {
	return countries
}

// UniversitiesChile returns the Chilean universities offered when the
// selected country is Chile.
func UniversitiesChile() []string {
	return universitiesChile
}

var countries = []string{
	"Chile",
	"Argentina",
	"Bolivia",
	"Brasil",
	"Colombia",
	"Costa Rica",
	"Cuba",
	"Ecuador",
	"El Salvador",
	"España",
	"Guatemala",
	"Honduras",
	"México",
	"Nicaragua",
	"Panamá",
	"Paraguay",
	"Perú",
	"República Dominicana",
	"Uruguay",
	"Venezuela",
	"Otro",
}

var universitiesChile = []string{
	"Pontificia Universidad Católica de Chile",
	"Pontificia Universidad Católica de Valparaíso",
	"Universidad Andrés Bello",
	"Universidad Austral de Chile",
	"Universidad Católica del Norte",
	"Universidad de Chile",
	"Universidad de Concepción",
	"Universidad de La Frontera",
	"Universidad de La Serena",
	"Universidad de Los Lagos",
	"Universidad de Playa Ancha",
	"Universidad de Santiago de Chile",
	"Universidad de Talca",
	"Universidad de Tarapacá",
	"Universidad de Valparaíso",
	"Universidad del Bío-Bío",
	"Universidad Diego Portales",
	"Universidad Metropolitana de Ciencias de la Educación",
	"Universidad Técnica Federico Santa María",
	"Otra",
}
