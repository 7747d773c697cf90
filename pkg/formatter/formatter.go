// Package formatter davetiye sayfasında gösterilen tarih, saat, telefon ve
// adres değerlerini Korece görüntü biçimine çevirir.
// Geçersiz girdiler değiştirilmeden döner.
package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var weekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate "2026-06-15" → "2026년 06월 15일"
func FormatDate(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return date
	}
	return fmt.Sprintf("%d년 %02d월 %02d일", t.Year(), int(t.Month()), t.Day())
}

// FormatDateWithDay "2026-06-15" → "2026년 06월 15일 (월)"
func FormatDateWithDay(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return date
	}
	return fmt.Sprintf("%s (%s)", FormatDate(date), weekdays[t.Weekday()])
}

// FormatTime "14:30" → "오후 2시 30분"; dakika 00 ise atlanır.
func FormatTime(value string) string {
	hh, mm, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found {
		return value
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return value
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return value
	}

	period := "오전"
	if hour >= 12 {
		period = "오후"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}

	if minute == 0 {
		return fmt.Sprintf("%s %d시", period, display)
	}
	return fmt.Sprintf("%s %d시 %d분", period, display, minute)
}

// CalculateDday etkinlik gününe kalan gün sayısını "D-n", "D-Day" ya da "D+n" olarak döner.
// today yalnızca takvim günü olarak dikkate alınır.
func CalculateDday(date string, today time.Time) string {
	target, ok := parseDate(date)
	if !ok {
		return ""
	}
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	days := int(target.Sub(start).Hours() / 24)
	switch {
	case days > 0:
		return fmt.Sprintf("D-%d", days)
	case days < 0:
		return fmt.Sprintf("D+%d", -days)
	default:
		return "D-Day"
	}
}

// FormatPhone "01012345678" → "010-1234-5678"
func FormatPhone(phone string) string {
	digits := UnformatPhone(phone)
	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "01"):
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	case len(digits) == 10 && strings.HasPrefix(digits, "02"):
		return digits[:2] + "-" + digits[2:6] + "-" + digits[6:]
	case len(digits) == 10:
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	}
	return phone
}

// UnformatPhone rakam dışındaki karakterleri atar.
func UnformatPhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatAddress virgülle ayrılmış adresi satırlara böler.
func FormatAddress(address string) string {
	return strings.Join(AddressLines(address), "\n")
}

// AddressLines adresin boş olmayan satırları.
func AddressLines(address string) []string {
	parts := strings.Split(address, ",")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}
