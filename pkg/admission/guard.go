package admission

// Guard origin kontrolü ile hız sınırlamayı birleştirir.
type Guard struct {
	Limiter *Limiter
	Strict  bool // production'da true
}

// NewGuard yeni bir Guard oluşturur.
func NewGuard(limiter *Limiter, strict bool) *Guard {
	if limiter == nil {
		limiter = NewLimiter(nil, nil)
	}
	return &Guard{Limiter: limiter, Strict: strict}
}

// AllowOrigin aynı-köken politikasını uygular.
func (g *Guard) AllowOrigin(origin, referer, host string) bool {
	return SameOrigin(origin, referer, host, g.Strict)
}

// CheckRate kapsam ve istemci başlıklarından türetilen anahtarla hız sınırını uygular.
func (g *Guard) CheckRate(scope string, header func(string) string, cfg Config) Result {
	return g.Limiter.Check(Key(scope, ClientIdentity(header)), cfg)
}
