package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound kayıt bulunamadığında repository katmanının döndürdüğü hatadır.
var ErrNotFound = errors.New("record not found")

type txKey struct{}

// WithTx işlemi context'e ekler; aynı context ile çağrılan repository metodları bu işlemi kullanır.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// dbFromContext context'te işlem varsa onu, yoksa verilen bağlantıyı döner.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return fallback.WithContext(ctx)
}
