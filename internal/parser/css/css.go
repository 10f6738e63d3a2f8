package css

import (
	"strings"
)

// Declaration represents a CSS declaration (property-value pair)
type Declaration struct {
	Property string
	Value    string
}

// InlineStyle is the typed subset of an inline style attribute the layout
// engine cares about. Empty fields mean the declaration was absent or had an
// unrecognized value.
type InlineStyle struct {
	TextAlign string // left, right, center, justify
	Direction string // ltr, rtl
}

// IsZero reports whether no recognized declaration was found.
func (s InlineStyle) IsZero() bool {
	return s.TextAlign == "" && s.Direction == ""
}

// String renders the style in canonical attribute form.
func (s InlineStyle) String() string {
	var parts []string
	if s.TextAlign != "" {
		parts = append(parts, "text-align: "+s.TextAlign)
	}
	if s.Direction != "" {
		parts = append(parts, "direction: "+s.Direction)
	}
	return strings.Join(parts, "; ")
}

// ParseInline parses the value of a style attribute. Later declarations of
// the same property override earlier ones.
func ParseInline(attr string) InlineStyle {
	var s InlineStyle
	for _, d := range ParseDeclarations(removeComments(attr)) {
		v := strings.ToLower(d.Value)
		switch strings.ToLower(d.Property) {
		case "text-align":
			if IsAlignment(v) {
				s.TextAlign = v
			}
		case "direction":
			if v == "ltr" || v == "rtl" {
				s.Direction = v
			}
		}
	}
	return s
}

// IsAlignment reports whether v is one of the supported text-align keywords.
func IsAlignment(v string) bool {
	switch v {
	case "left", "right", "center", "justify":
		return true
	}
	return false
}

// ParseDeclarations parses CSS declarations
func ParseDeclarations(declarationsStr string) []*Declaration {
	declarationStrings := strings.Split(declarationsStr, ";")
	result := make([]*Declaration, 0, len(declarationStrings))

	for _, declStr := range declarationStrings {
		declStr = strings.TrimSpace(declStr)
		if declStr == "" {
			continue
		}

		parts := strings.SplitN(declStr, ":", 2)
		if len(parts) != 2 {
			continue
		}

		property := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if property == "" {
			continue
		}

		// !important is accepted and ignored
		if strings.HasSuffix(strings.ToLower(value), "!important") {
			value = strings.TrimSpace(value[:len(value)-len("!important")])
		}

		result = append(result, &Declaration{Property: property, Value: value})
	}

	return result
}

// removeComments removes CSS comments
func removeComments(content string) string {
	var result strings.Builder
	i := 0

	for i < len(content) {
		if i+1 < len(content) && content[i] == '/' && content[i+1] == '*' {
			commentEnd := strings.Index(content[i+2:], "*/")
			if commentEnd == -1 {
				break
			}
			i += commentEnd + 4
		} else {
			result.WriteByte(content[i])
			i++
		}
	}

	return result.String()
}
