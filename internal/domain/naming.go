package domain

import (
	"fmt"
	"strings"
)

// Default naming templates stamped on new applications.
const (
	DefaultApplicationTemplate = "{baseName}_{os}_{arch}_{revision}"
	DefaultExtensionTemplate   = "{app_revision}_{baseName}_{os}_{arch}_{revision}"
)

// RenderName substitutes every {field} placeholder in template with the
// matching metadata value. Doubled braces produce literal braces.
func RenderName(template string, meta Metadata) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", &ValidationError{Field: "template", Reason: fmt.Sprintf("unclosed placeholder in %q", template)}
			}
			field := template[i+1 : i+1+end]
			if field == "" {
				return "", &ValidationError{Field: "template", Reason: fmt.Sprintf("empty placeholder in %q", template)}
			}
			value, ok := meta[field]
			if !ok || value == nil {
				return "", &MissingFieldError{Field: field, Template: template}
			}
			b.WriteString(fmt.Sprint(value))
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				i++
			}
			b.WriteByte('}')
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}

// TemplateFields returns the placeholder names referenced by template in order.
func TemplateFields(template string) []string {
	var fields []string
	for i := 0; i < len(template); i++ {
		if template[i] != '{' {
			continue
		}
		if i+1 < len(template) && template[i+1] == '{' {
			i++
			continue
		}
		end := strings.IndexByte(template[i+1:], '}')
		if end < 0 {
			break
		}
		fields = append(fields, template[i+1:i+1+end])
		i += end + 1
	}
	return fields
}

// ValidateTemplate checks that template is well formed.
func ValidateTemplate(template string) error {
	if strings.TrimSpace(template) == "" {
		return &ValidationError{Field: "template", Reason: "cannot be empty"}
	}
	sample := Metadata{}
	for _, f := range TemplateFields(template) {
		sample[f] = f
	}
	_, err := RenderName(template, sample)
	return err
}
