package inviteform

import (
	"fmt"
	"strings"
)

// FieldError tek bir alan yolu için doğrulama mesajıdır.
// Field iç içe alanlar için noktalı yol taşır (ör. "extraData.groomName").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError bir doğrulama turunda biriken tüm hatalardır.
type ValidationError struct {
	Fields []FieldError
	Form   []string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields)+len(e.Form))
	parts = append(parts, e.Form...)
	for _, fe := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add alan hatası ekler.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// AddForm belirli bir alana bağlı olmayan hata ekler.
func (e *ValidationError) AddForm(message string) {
	e.Form = append(e.Form, message)
}

// Has verilen alan yolu için en az bir hata olup olmadığını döner.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Fields {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// FieldErrors hataları alan yoluna göre gruplar.
func (e *ValidationError) FieldErrors() map[string][]string {
	out := make(map[string][]string, len(e.Fields))
	for _, fe := range e.Fields {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}

// FormErrors alan dışı hatalar; hiç yoksa boş dizi döner.
func (e *ValidationError) FormErrors() []string {
	if e.Form == nil {
		return []string{}
	}
	return e.Form
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0 && len(e.Form) == 0
}

// err hata yoksa nil döner.
func (e *ValidationError) err() error {
	if e.empty() {
		return nil
	}
	return e
}
