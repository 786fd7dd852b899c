package validation

// Validator checks a decoded request payload against its struct tags.
//
// ValidateStruct returns nil when s is valid. Otherwise it maps each offending
// field, by its json name, to a message suitable for API clients.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
