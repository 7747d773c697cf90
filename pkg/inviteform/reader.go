package inviteform

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"chodae.link/models"

	"golang.org/x/text/unicode/norm"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern  = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
	phonePattern = regexp.MustCompile(`^010-\d{4}-\d{4}$`)
)

const dateLayout = "2006-01-02"

// reader tipsiz bir JSON nesnesinden alan okur ve hataları ortak ValidationError'a yazar.
type reader struct {
	src    map[string]any
	prefix string
	errs   *ValidationError
}

func newReader(src map[string]any, prefix string, errs *ValidationError) *reader {
	if src == nil {
		src = map[string]any{}
	}
	return &reader{src: src, prefix: prefix, errs: errs}
}

func (r *reader) path(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + "." + key
}

func (r *reader) fail(key, message string) {
	r.errs.Add(r.path(key), message)
}

// raw anahtarın değerini döner; nil değer yok sayılır.
func (r *reader) raw(key string) (any, bool) {
	v, ok := r.src[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// text kırpılmış ve NFC normalize edilmiş metni döner. Boş metin "yok" kabul edilir.
func (r *reader) text(key string, required bool, maxLen int, requiredMsg string) string {
	v, ok := r.raw(key)
	if !ok {
		if required {
			r.fail(key, requiredMsg)
		}
		return ""
	}
	s, isString := v.(string)
	if !isString {
		r.fail(key, "Must be a string.")
		return ""
	}
	s = norm.NFC.String(strings.TrimSpace(s))
	if s == "" {
		if required {
			r.fail(key, requiredMsg)
		}
		return ""
	}
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		r.fail(key, fmt.Sprintf("Must be at most %d characters.", maxLen))
	}
	return s
}

func (r *reader) optionalText(key string, maxLen int) string {
	return r.text(key, false, maxLen, "")
}

func (r *reader) phone(key string) string {
	s := r.optionalText(key, 0)
	if s != "" && !phonePattern.MatchString(s) {
		r.fail(key, "Phone number must look like 010-0000-0000.")
	}
	return s
}

func (r *reader) gender(key string) string {
	s := r.optionalText(key, 0)
	if s != "" && s != "male" && s != "female" {
		r.fail(key, "Must be male or female.")
	}
	return s
}

// integer tam sayı okur; değer yoksa present=false döner.
func (r *reader) integer(key string, min, max int) (value int, present bool) {
	v, ok := r.raw(key)
	if !ok {
		return 0, false
	}
	n, isInt := toInt(v)
	if !isInt {
		r.fail(key, "Must be a whole number.")
		return 0, true
	}
	if n < min || n > max {
		r.fail(key, fmt.Sprintf("Must be between %d and %d.", min, max))
	}
	return n, true
}

func (r *reader) boolean(key string, required bool, requiredMsg string) (value bool, present bool) {
	v, ok := r.raw(key)
	if !ok {
		if required {
			r.fail(key, requiredMsg)
		}
		return false, false
	}
	b, isBool := v.(bool)
	if !isBool {
		r.fail(key, "Must be true or false.")
		return false, true
	}
	return b, true
}

// object iç içe bir JSON nesnesi okur; yoksa boş nesne döner.
func (r *reader) object(key string) map[string]any {
	v, ok := r.raw(key)
	if !ok {
		return map[string]any{}
	}
	switch m := v.(type) {
	case map[string]any:
		return m
	case models.ExtraData:
		return m
	}
	r.fail(key, "Must be an object.")
	return map[string]any{}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}
