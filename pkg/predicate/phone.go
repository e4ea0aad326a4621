package predicate

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/dmitrymomot/inputguard/pkg/validator"
)

// Phone accepts texts that parse as a valid phone number. Numbers without
// an international prefix are read in the numbering plan of region (ISO
// 3166-1 alpha-2, e.g. "US", "NL").
func Phone(region string) (validator.Predicate, error) {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		return nil, ErrEmptyRegion
	}

	return func(text string) (bool, error) {
		number, err := phonenumbers.Parse(strings.TrimSpace(text), region)
		if err != nil {
			return false, nil
		}
		return phonenumbers.IsValidNumber(number), nil
	}, nil
}
