// Package naming provides the pure identifier transforms used by the CDP
// generator: protocol domain names to Go package names, wire property names
// to Go field and parameter names, and enum literals to constant names.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// acronyms are capitalized as a unit in generated Go identifiers.
var acronyms = map[string]bool{
	"id":    true,
	"ids":   true,
	"url":   true,
	"urls":  true,
	"uri":   true,
	"api":   true,
	"css":   true,
	"dom":   true,
	"html":  true,
	"http":  true,
	"https": true,
	"json":  true,
	"rpc":   true,
	"uuid":  true,
	"guid":  true,
	"xml":   true,
	"sql":   true,
}

// goKeywords cannot be used verbatim as parameter names.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true,
	"for": true, "func": true, "go": true, "goto": true, "if": true,
	"import": true, "interface": true, "map": true, "package": true,
	"range": true, "return": true, "select": true, "struct": true,
	"switch": true, "type": true, "var": true,
}

var titler = cases.Title(language.English)

// PackageName converts a protocol domain name to the Go package (and
// directory) name for its generated module, e.g. "DOMStorage" -> "domstorage".
func PackageName(domain string) string {
	var b strings.Builder
	for _, r := range domain {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// FieldName converts a wire property name to an exported Go field name,
// capitalizing known acronyms, e.g. "backendNodeId" -> "BackendNodeID".
func FieldName(name string) string {
	parts := splitWords(name)
	for i, part := range parts {
		lower := strings.ToLower(part)
		switch {
		case acronyms[lower]:
			parts[i] = strings.ToUpper(lower)
		case isUpperRun(part):
			// Acronym runs from the source ("AX", "XHR") stay as written.
		default:
			parts[i] = titler.String(lower)
		}
	}
	return strings.Join(parts, "")
}

// ParamName converts a wire property name to an unexported Go parameter
// name, e.g. "backendNodeId" -> "backendNodeID". Go keywords gain a trailing
// underscore so the result is always a legal identifier.
func ParamName(name string) string {
	parts := splitWords(name)
	for i, part := range parts {
		lower := strings.ToLower(part)
		switch {
		case i == 0:
			parts[i] = lower
		case acronyms[lower]:
			parts[i] = strings.ToUpper(lower)
		case isUpperRun(part):
			// Keep acronym runs as written.
		default:
			parts[i] = titler.String(lower)
		}
	}
	out := strings.Join(parts, "")
	if goKeywords[out] {
		out += "_"
	}
	return out
}

// ConstName converts an enum literal to the upper-snake-case identifier used
// for its generated constant, e.g. "relatedElement" -> "RELATED_ELEMENT" and
// "no-referrer-when-downgrade" -> "NO_REFERRER_WHEN_DOWNGRADE". Characters
// that cannot appear in a Go identifier become underscores, and a leading
// digit gains an underscore prefix.
func ConstName(literal string) string {
	parts := splitWords(literal)
	for i, part := range parts {
		parts[i] = strings.ToUpper(part)
	}
	out := strings.Join(parts, "_")
	if out == "" {
		out = "_"
	}
	if r := rune(out[0]); unicode.IsDigit(r) {
		out = "_" + out
	}
	return out
}

// isUpperRun reports whether part is a multi-rune all-uppercase word.
func isUpperRun(part string) bool {
	if len(part) < 2 {
		return false
	}
	for _, r := range part {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return strings.ContainsFunc(part, unicode.IsLetter)
}

// splitWords breaks an identifier into words at camel-case boundaries and at
// any run of non-alphanumeric characters.
func splitWords(name string) []string {
	var parts []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
	}
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			// Boundary before an upper rune, except inside an acronym run
			// ("AX" stays one word, "NodeId" splits before "Id").
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				flush()
			} else if i > 0 && i+1 < len(runes) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i+1]) {
				flush()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return parts
}
