// Package options provides shared validation for functional options.
package options

import "github.com/erraggy/oasmodel/oaserrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// names lists the option name for each entry in sources, in the same order.
func ValidateSingleInputSource(names []string, sources ...bool) error {
	var set []string
	for i, hasSource := range sources {
		if hasSource && i < len(names) {
			set = append(set, names[i])
		}
	}

	switch len(set) {
	case 0:
		return &oaserrors.ConfigError{
			Option:  "input",
			Message: "must specify an input source",
		}
	case 1:
		return nil
	}
	return &oaserrors.ConfigError{
		Option:  "input",
		Value:   set,
		Message: "must specify exactly one input source",
	}
}

// ValidateNonNegative rejects negative limits. Zero means "use the default".
func ValidateNonNegative(option string, value int) error {
	if value < 0 {
		return &oaserrors.ConfigError{
			Option:  option,
			Value:   value,
			Message: "cannot be negative",
		}
	}
	return nil
}
