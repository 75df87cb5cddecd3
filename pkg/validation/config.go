package validation

import (
	"fmt"
	"strings"
)

// ValidateCode checks a currency or language code against the supported
// codes, ignoring case and surrounding whitespace.
func ValidateCode(kind, code string, supported []string) error {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return fmt.Errorf("%s code must not be empty", kind)
	}
	for _, s := range supported {
		if strings.EqualFold(trimmed, s) {
			return nil
		}
	}
	return fmt.Errorf("unsupported %s code %q (supported: %s)", kind, code, strings.Join(supported, ", "))
}

// ValidateAddress checks that a listen address has a port, e.g. ":8080" or
// "127.0.0.1:8080".
func ValidateAddress(address string) error {
	i := strings.LastIndex(address, ":")
	if i < 0 || i == len(address)-1 {
		return fmt.Errorf("listen address %q must include a port", address)
	}
	return nil
}
