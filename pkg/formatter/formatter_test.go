package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026년 06월 15일", FormatDate("2026-06-15"))
	assert.Equal(t, "2026년 01월 01일", FormatDate("2026-01-01"))
	assert.Equal(t, "2026년 12월 31일", FormatDate("2026-12-31"))
	assert.Equal(t, "soon", FormatDate("soon"))
}

func TestFormatDateWithDay(t *testing.T) {
	assert.Equal(t, "2026년 06월 15일 (월)", FormatDateWithDay("2026-06-15"))
	assert.Equal(t, "2026년 02월 07일 (토)", FormatDateWithDay("2026-02-07"))
}

func TestFormatTime(t *testing.T) {
	cases := map[string]string{
		"09:00": "오전 9시",
		"09:30": "오전 9시 30분",
		"11:45": "오전 11시 45분",
		"12:00": "오후 12시",
		"14:00": "오후 2시",
		"15:00": "오후 3시",
		"18:30": "오후 6시 30분",
		"23:59": "오후 11시 59분",
		"00:10": "오전 12시 10분",
		"25:00": "25:00",
		"noon":  "noon",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatTime(in), in)
	}
}

func TestCalculateDday(t *testing.T) {
	today := time.Date(2026, 1, 16, 21, 30, 0, 0, time.UTC)

	assert.Equal(t, "D-150", CalculateDday("2026-06-15", today))
	assert.Equal(t, "D-Day", CalculateDday("2026-01-16", today))
	assert.Equal(t, "D+15", CalculateDday("2026-01-01", today))
	assert.Equal(t, "", CalculateDday("not-a-date", today))
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "010-1234-5678", FormatPhone("01012345678"))
	assert.Equal(t, "010-9876-5432", FormatPhone("01098765432"))
	assert.Equal(t, "010-1234-5678", FormatPhone("010-1234-5678"))
	assert.Equal(t, "02-1234-5678", FormatPhone("0212345678"))
	assert.Equal(t, "", FormatPhone(""))

	assert.Equal(t, "01012345678", UnformatPhone("010-1234-5678"))
	assert.Equal(t, "01012345678", UnformatPhone("01012345678"))
	assert.Equal(t, "", UnformatPhone(""))
}

func TestFormatAddress(t *testing.T) {
	assert.Equal(t, "서울시 강남구 테헤란로 123\n4층", FormatAddress("서울시 강남구 테헤란로 123, 4층"))
	assert.Equal(t, "서울시 강남구 테헤란로 123", FormatAddress("서울시 강남구 테헤란로 123"))
	assert.Equal(t, "서울시 강남구 테헤란로 123\n그랜드빌딩\n4층", FormatAddress("서울시 강남구 테헤란로 123, 그랜드빌딩, 4층"))
}
