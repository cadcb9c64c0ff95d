package utils

import "strings"

// Field pairs a form/JSON field name with its submitted value so
// required-field checks can report which names were missing, in order.
type Field struct {
	Name  string
	Value string
}

// MissingFields returns the names of fields whose values are empty after
// trimming, preserving the order they were passed in.
func MissingFields(fields ...Field) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// ValidEmail checks the minimal shape of an email address: it must
// contain both "@" and ".".
func ValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}
