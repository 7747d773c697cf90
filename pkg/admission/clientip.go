package admission

import "strings"

// UnknownClient başlıklardan istemci adresi çıkarılamadığında kullanılır.
const UnknownClient = "unknown"

// ClientIdentity yönlendirme başlıklarından istemci adresini çıkarır:
// X-Forwarded-For'un ilk elemanı, sonra X-Real-IP, sonra CF-Connecting-IP.
// Başlıklar istemci tarafından taklit edilebilir; sonuç yalnızca kötüye kullanımı yavaşlatmak içindir.
func ClientIdentity(header func(name string) string) string {
	if forwarded := header("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
		return UnknownClient
	}
	if realIP := strings.TrimSpace(header("X-Real-IP")); realIP != "" {
		return realIP
	}
	if cfIP := strings.TrimSpace(header("CF-Connecting-IP")); cfIP != "" {
		return cfIP
	}
	return UnknownClient
}

// Key kapsam ile istemci kimliğini birleşik hız sınırı anahtarına çevirir.
func Key(scope, client string) string {
	return scope + "|" + client
}
