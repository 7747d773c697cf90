// Package admission değiştirme isteklerini korur: aynı-köken kontrolü ve
// sabit pencereli hız sınırlama.
package admission

import (
	"net/url"
	"strings"
)

// SameOrigin isteğin kendi host'undan geldiğini Origin ya da Referer başlığıyla doğrular.
// strict false ise (geliştirme ortamı) her zaman izin verir.
func SameOrigin(origin, referer, requestHost string, strict bool) bool {
	if !strict {
		return true
	}

	sourceHost, ok := parseHost(origin)
	if !ok {
		sourceHost, ok = parseHost(referer)
	}
	if !ok {
		return false
	}
	return requestHost != "" && sourceHost == requestHost
}

// parseHost mutlak bir URL'nin host[:port] kısmını döner.
func parseHost(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return "", false
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "", false
	}
	return parsed.Host, true
}
