package admission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headers(m map[string]string) func(string) string {
	return func(name string) string { return m[name] }
}

func TestSameOrigin(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		referer string
		host    string
		strict  bool
		want    bool
	}{
		{"non-strict allows anything", "", "", "chodae.link", false, true},
		{"non-strict allows foreign origin", "https://evil.test", "", "chodae.link", false, true},
		{"matching origin", "https://chodae.link", "", "chodae.link", true, true},
		{"matching referer", "", "https://chodae.link/create", "chodae.link", true, true},
		{"origin wins over referer", "https://evil.test", "https://chodae.link/x", "chodae.link", true, false},
		{"missing both", "", "", "chodae.link", true, false},
		{"port must match", "https://chodae.link:8443", "", "chodae.link", true, false},
		{"malformed origin", "::::", "", "chodae.link", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameOrigin(tt.origin, tt.referer, tt.host, tt.strict))
		})
	}
}

func TestClientIdentity(t *testing.T) {
	assert.Equal(t, "1.2.3.4", ClientIdentity(headers(map[string]string{
		"X-Forwarded-For": " 1.2.3.4 , 10.0.0.1",
		"X-Real-IP":       "9.9.9.9",
	})))
	assert.Equal(t, "9.9.9.9", ClientIdentity(headers(map[string]string{"X-Real-IP": "9.9.9.9"})))
	assert.Equal(t, "8.8.8.8", ClientIdentity(headers(map[string]string{"CF-Connecting-IP": "8.8.8.8"})))
	assert.Equal(t, UnknownClient, ClientIdentity(headers(nil)))
	assert.Equal(t, "invite-create|unknown", Key("invite-create", ClientIdentity(headers(nil))))
}

func TestLimiter_FixedWindow(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewLimiter(NewMemoryStore(), func() time.Time { return now })
	cfg := Config{Limit: 10, Window: time.Minute}

	for i := 1; i <= 10; i++ {
		res := limiter.Check("k", cfg)
		require.Truef(t, res.Allowed, "request %d should be allowed", i)
		assert.Equal(t, 10-i, res.Remaining)
	}

	denied := limiter.Check("k", cfg)
	assert.False(t, denied.Allowed)
	assert.Equal(t, 0, denied.Remaining)
	assert.Equal(t, now.Add(time.Minute), denied.ResetAt)

	// başka bir anahtar etkilenmez
	assert.True(t, limiter.Check("other", cfg).Allowed)

	now = now.Add(time.Minute)
	res := limiter.Check("k", cfg)
	assert.True(t, res.Allowed)
	assert.Equal(t, 9, res.Remaining)
	assert.Equal(t, now.Add(time.Minute), res.ResetAt)
}

func TestLimiter_Defaults(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewLimiter(nil, func() time.Time { return now })

	for i := 0; i < DefaultLimit; i++ {
		require.True(t, limiter.Check("k", Config{}).Allowed)
	}
	res := limiter.Check("k", Config{})
	assert.False(t, res.Allowed)
	assert.Equal(t, DefaultLimit, res.Limit)
}

func TestRateLimitRejection(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	rej := NewRateLimitRejection(Result{Limit: 10, ResetAt: now.Add(2500 * time.Millisecond)}, now)
	assert.Equal(t, 3, rej.RetryAfter)
	assert.Equal(t, RateLimitMessage, rej.Message)

	h := rej.Headers()
	assert.Equal(t, "3", h["Retry-After"])
	assert.Equal(t, "10", h["X-RateLimit-Limit"])
	assert.Equal(t, "0", h["X-RateLimit-Remaining"])
	assert.Equal(t, "1777636802", h["X-RateLimit-Reset"])

	past := NewRateLimitRejection(Result{Limit: 10, ResetAt: now.Add(-time.Second)}, now)
	assert.Equal(t, 1, past.RetryAfter)
}

func TestGuard(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	guard := NewGuard(NewLimiter(nil, func() time.Time { return now }), true)

	assert.False(t, guard.AllowOrigin("", "", "chodae.link"))
	assert.True(t, guard.AllowOrigin("https://chodae.link", "", "chodae.link"))

	a := headers(map[string]string{"X-Real-IP": "1.1.1.1"})
	b := headers(map[string]string{"X-Real-IP": "2.2.2.2"})
	cfg := Config{Limit: 1, Window: time.Minute}

	assert.True(t, guard.CheckRate("rsvp:abc", a, cfg).Allowed)
	assert.False(t, guard.CheckRate("rsvp:abc", a, cfg).Allowed)
	assert.True(t, guard.CheckRate("rsvp:abc", b, cfg).Allowed)
	assert.True(t, guard.CheckRate("rsvp:other", a, cfg).Allowed)
}
