package admission

import (
	"time"
)

const (
	DefaultLimit  = 20
	DefaultWindow = time.Minute
)

// Config pencere başına izin sayısı ve pencere süresi.
type Config struct {
	Limit  int
	Window time.Duration
}

func (c Config) withDefaults() Config {
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	if c.Window <= 0 {
		c.Window = DefaultWindow
	}
	return c
}

// Result bir hız sınırı kontrolünün sonucudur.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter sabit pencereli sayaç uygular.
// Get ile Increment arasındaki yarış pencere sınırında fazladan bir isteğe izin verebilir; kabul edilmiştir.
type Limiter struct {
	store Store
	now   func() time.Time
}

// NewLimiter verilen store ve saat ile Limiter oluşturur. now nil ise time.Now kullanılır.
func NewLimiter(store Store, now func() time.Time) *Limiter {
	if store == nil {
		store = NewMemoryStore()
	}
	if now == nil {
		now = time.Now
	}
	return &Limiter{store: store, now: now}
}

// Now limiter'ın saatini döner.
func (l *Limiter) Now() time.Time {
	return l.now()
}

// Check anahtar için bir izin tüketir.
func (l *Limiter) Check(key string, cfg Config) Result {
	cfg = cfg.withDefaults()
	now := l.now()

	entry, ok := l.store.Get(key)
	if !ok || !entry.ResetAt.After(now) {
		entry = l.store.Reset(key, now.Add(cfg.Window))
		return Result{
			Allowed:   true,
			Limit:     cfg.Limit,
			Remaining: max(cfg.Limit-1, 0),
			ResetAt:   entry.ResetAt,
		}
	}

	entry = l.store.Increment(key)
	if entry.Count > cfg.Limit {
		return Result{Allowed: false, Limit: cfg.Limit, Remaining: 0, ResetAt: entry.ResetAt}
	}
	return Result{
		Allowed:   true,
		Limit:     cfg.Limit,
		Remaining: cfg.Limit - entry.Count,
		ResetAt:   entry.ResetAt,
	}
}
