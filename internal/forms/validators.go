package forms

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// StateCodes is the fixed set of US state codes accepted by the venue and
// artist forms.
var StateCodes = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// Genres is the fixed multi-select genre set.
var Genres = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic",
	"Folk", "Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

var phonePattern = regexp.MustCompile(`^\d{3}[-.]?\d{3}[-.]?\d{4}$`)

var stateCodeSet = toSet(StateCodes)
var genreSet = toSet(Genres)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func validStateCode(fl validator.FieldLevel) bool {
	_, ok := stateCodeSet[fl.Field().String()]
	return ok
}

func validGenre(fl validator.FieldLevel) bool {
	_, ok := genreSet[fl.Field().String()]
	return ok
}

func validPhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// RegisterValidators installs the form field validators on gin's binding
// engine. Must be called once before any form is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	for tag, fn := range map[string]validator.Func{
		"state_code": validStateCode,
		"genre":      validGenre,
		"phone":      validPhone,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("registering %q validator: %w", tag, err)
		}
	}
	return nil
}
