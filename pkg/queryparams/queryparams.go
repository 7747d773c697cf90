// Package queryparams listeleme uç noktalarının sayfalama ve sıralama parametreleri.
package queryparams

import (
	"math"
	"strings"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultSortBy  = "created_at"
	DefaultOrderBy = "desc"
)

// ListParams sorgu parametrelerinden okunur (ör. ?page=2&perPage=10&status=draft).
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"perPage"`
	SortBy  string `query:"sortBy"`
	OrderBy string `query:"orderBy"`
	Status  string `query:"status"`
	Type    string `query:"type"`
}

// Validate geçersiz değerleri varsayılanlarla değiştirir.
// allowedSort boşsa yalnızca DefaultSortBy kabul edilir.
func (p *ListParams) Validate(allowedSort ...string) {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PerPage <= 0 || p.PerPage > MaxPerPage {
		p.PerPage = DefaultPerPage
	}

	p.OrderBy = strings.ToLower(strings.TrimSpace(p.OrderBy))
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}

	sortBy := strings.TrimSpace(p.SortBy)
	p.SortBy = DefaultSortBy
	for _, col := range allowedSort {
		if col == sortBy {
			p.SortBy = sortBy
			break
		}
	}

	p.Status = strings.TrimSpace(p.Status)
	p.Type = strings.TrimSpace(p.Type)
}

// CalculateOffset sayfa numarasından SQL offset'i hesaplar.
func (p ListParams) CalculateOffset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// OrderClause "sütun yön" biçiminde sıralama ifadesi.
func (p ListParams) OrderClause() string {
	return p.SortBy + " " + p.OrderBy
}

// CalculateTotalPages toplam sayfa sayısı; kayıt yoksa 0.
func CalculateTotalPages(totalItems int64, perPage int) int {
	if totalItems <= 0 || perPage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(perPage)))
}

type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// PaginatedResult liste yanıtının gövdesidir.
type PaginatedResult struct {
	Items any            `json:"items"`
	Meta  PaginationMeta `json:"meta"`
}

// NewMeta parametrelerden ve toplam kayıt sayısından meta bilgisi üretir.
func NewMeta(p ListParams, totalItems int64) PaginationMeta {
	return PaginationMeta{
		CurrentPage: p.Page,
		PerPage:     p.PerPage,
		TotalItems:  totalItems,
		TotalPages:  CalculateTotalPages(totalItems, p.PerPage),
	}
}
