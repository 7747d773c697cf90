package configslog

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log structured alanlarla loglama için, SLog printf tarzı loglama için kullanılır.
// InitLogger çağrılana kadar ikisi de no-op logger'dır.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger APP_ENV ve LOG_LEVEL değerlerine göre global logger'ı kurar.
func InitLogger() {
	var cfg zap.Config
	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if raw := strings.TrimSpace(os.Getenv("LOG_LEVEL")); raw != "" {
		level, err := zapcore.ParseLevel(raw)
		if err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		// Logger kurulamazsa uygulama yine de çalışabilmeli.
		logger = zap.NewExample()
		logger.Warn("Logger configuration failed, falling back to example logger", zap.Error(err))
	}
	SetLogger(logger)
}

// SetLogger global logger'ları verilen logger ile değiştirir (testler için de kullanılır).
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger tamponlanmış log kayıtlarını boşaltır.
func SyncLogger() {
	_ = Log.Sync()
}
