package validator

// aliases maps symbolic shorthands to canonical rule kinds. Read-only after init.
var aliases = map[string]string{
	">":    "gt",
	">=":   "egt",
	"<":    "lt",
	"<=":   "elt",
	"=":    "eq",
	"same": "eq",
	"len":  "length",
}

// ResolveAlias returns the canonical kind for an alias. Unknown names are
// returned unchanged. Lookup is case-sensitive.
func ResolveAlias(kind string) string {
	if canonical, ok := aliases[kind]; ok {
		return canonical
	}
	return kind
}
