package templates

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"unicode/utf8"
)

// FuncMap returns the functions available to page templates
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"underline": Underline,
		"indent":    Indent,
		"literal":   Literal,
		"link":      Link,
		"value":     FormatValue,
	}
}

// Underline returns char repeated once per rune of title
func Underline(char, title string) string {
	return strings.Repeat(char, utf8.RuneCountInString(title))
}

// Indent prefixes every non-empty line but the first with n spaces, so
// multi-line text stays inside a list item.
func Indent(n int, text string) string {
	lines := strings.Split(text, "\n")
	pad := strings.Repeat(" ", n)
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// Literal wraps text as an inline literal
func Literal(text string) string {
	return "``" + text + "``"
}

// Link formats a named hyperlink
func Link(label, url string) string {
	return "`" + label + " <" + url + ">`_"
}

// FormatValue renders an initial or default value for a page. Floats always
// carry a decimal point, strings are quoted and nil renders as None.
func FormatValue(v any) string {
	if v == nil {
		return "None"
	}

	switch value := v.(type) {
	case string:
		return strconv.Quote(value)
	case bool:
		return strconv.FormatBool(value)
	case float32:
		return formatFloat(float64(value), 32)
	case float64:
		return formatFloat(value, 64)
	case fmt.Stringer:
		return value.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return "None"
		}
		return FormatValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "[]"
		}
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = FormatValue(rv.Index(i).Interface())
		}
		return "[" + strings.Join(items, ", ") + "]"
	case reflect.Map:
		items := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			items = append(items, FormatValue(iter.Key().Interface())+": "+FormatValue(iter.Value().Interface()))
		}
		sort.Strings(items)
		return "{" + strings.Join(items, ", ") + "}"
	}

	return fmt.Sprint(v)
}

func formatFloat(f float64, bits int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		format = 'g'
	}
	s := strconv.FormatFloat(f, format, -1, bits)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
