package admission

import (
	"math"
	"strconv"
	"time"
)

const (
	RateLimitMessage = "Too many requests. Please try again shortly."
	OriginMessage    = "Invalid request origin."
)

// RateLimitRejection reddedilen bir isteğin istemciye dönecek bilgileridir.
type RateLimitRejection struct {
	Message    string
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter int // saniye, en az 1
}

// NewRateLimitRejection reddedilmiş sonuçtan yanıt bilgilerini üretir.
func NewRateLimitRejection(result Result, now time.Time) RateLimitRejection {
	return RateLimitRejection{
		Message:    RateLimitMessage,
		Limit:      result.Limit,
		Remaining:  0,
		ResetAt:    result.ResetAt,
		RetryAfter: retryAfterSeconds(result.ResetAt, now),
	}
}

// Headers standart hız sınırı başlıklarını döner.
func (r RateLimitRejection) Headers() map[string]string {
	return map[string]string{
		"Retry-After":           strconv.Itoa(r.RetryAfter),
		"X-RateLimit-Limit":     strconv.Itoa(r.Limit),
		"X-RateLimit-Remaining": strconv.Itoa(r.Remaining),
		"X-RateLimit-Reset":     strconv.FormatInt(r.ResetAt.Unix(), 10),
	}
}

func retryAfterSeconds(resetAt, now time.Time) int {
	seconds := int(math.Ceil(resetAt.Sub(now).Seconds()))
	return max(seconds, 1)
}
