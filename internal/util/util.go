// Package util holds the naming helpers shared by the request generator.
package util

import (
	"strings"
	"unicode"
)

// SanitizeComment removes backticks and normalizes whitespace for Go comments.
func SanitizeComment(s string) string {
	s = strings.ReplaceAll(s, "`", "'")
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, " ")
}

// TitleWord uppercases the first rune and lowercases the rest.
func TitleWord(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	for i := 1; i < len(r); i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}

// SplitCamel splits a camelCase string into tokens.
func SplitCamel(s string) []string {
	var parts []string
	last := 0
	for i := 1; i < len(s); i++ {
		if isBoundary(s[i-1], s[i]) {
			parts = append(parts, s[last:i])
			last = i
		}
	}
	parts = append(parts, s[last:])
	return parts
}

func isBoundary(prev, curr byte) bool {
	return (prev >= 'a' && prev <= 'z' && curr >= 'A' && curr <= 'Z') || curr == '_'
}

// ToExportedField converts snake_case or camelCase to PascalCase.
// "request_id" becomes "RequestId", matching protoc-gen-go field names.
func ToExportedField(name string) string {
	parts := strings.Split(name, "_")
	if len(parts) == 1 {
		parts = SplitCamel(name)
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if len(SplitCamel(p)) > 1 {
			// keep existing camel humps ("modelHint" -> "ModelHint")
			out = append(out, strings.ToUpper(p[:1])+p[1:])
			continue
		}
		out = append(out, TitleWord(p))
	}
	return strings.Join(out, "")
}

// ToEnumConst builds a const identifier like <TypeName><Value>. The enum's
// SCREAMING_CASE prefix is dropped from the value first, so
// INCLUDE_CONTEXT_NONE of IncludeContext becomes IncludeContextNone.
func ToEnumConst(typeName, val string) string {
	val = TrimEnumPrefix(typeName, val)
	cleaned := make([]rune, 0, len(val))
	for _, r := range val {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			cleaned = append(cleaned, r)
		} else {
			cleaned = append(cleaned, '_')
		}
	}
	parts := strings.FieldsFunc(string(cleaned), func(r rune) bool { return r == '_' })
	for i := range parts {
		parts[i] = TitleWord(strings.ToLower(parts[i]))
	}
	return typeName + strings.Join(parts, "")
}

// TrimEnumPrefix removes the SCREAMING_CASE form of typeName (plus the
// joining underscore) from val. The value is returned unchanged when the
// prefix is absent or would leave nothing behind.
func TrimEnumPrefix(typeName, val string) string {
	prefix := ScreamingSnake(typeName) + "_"
	if strings.HasPrefix(val, prefix) && len(val) > len(prefix) {
		return val[len(prefix):]
	}
	return val
}

// ScreamingSnake converts PascalCase to SCREAMING_SNAKE_CASE.
func ScreamingSnake(s string) string {
	parts := SplitCamel(s)
	for i := range parts {
		parts[i] = strings.ToUpper(strings.Trim(parts[i], "_"))
	}
	return strings.Join(parts, "_")
}

// LowerFirst lowercases the first rune; used for unexported identifiers.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
