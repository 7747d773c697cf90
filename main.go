package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chodae.link/configs"
	"chodae.link/configs/configsdatabase"
	"chodae.link/configs/configsenv"
	"chodae.link/configs/configslog"
	"chodae.link/database"
	"chodae.link/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := configsenv.Load()
	configslog.InitLogger()
	defer configslog.SyncLogger()
	if err != nil {
		configslog.Log.Fatal("Konfigürasyon yüklenemedi", zap.Error(err))
	}

	if err := configsdatabase.InitDB(cfg.DB); err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.Error(err))
	}
	db := configsdatabase.GetDB()

	if cfg.DB.AutoMigrate {
		if err := database.Initialize(db, true, false); err != nil {
			configslog.Log.Fatal("Otomatik migrasyon başarısız", zap.Error(err))
		}
	}

	app := fiber.New(configs.NewFiberConfig(cfg, configs.NewViewEngine()))
	routes.SetupRoutes(app, routes.Dependencies{
		Config: cfg,
		DB:     db,
	})

	addr := fmt.Sprintf(":%d", cfg.AppPort)
	go func() {
		configslog.SLog.Infof("Sunucu başlatılıyor: %s (env: %s)", addr, cfg.AppEnv)
		if err := app.Listen(addr); err != nil {
			configslog.Log.Error("Sunucu durdu", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	configslog.SLog.Info("Sunucu kapatılıyor...")
	shutdownErr := multierr.Append(
		app.ShutdownWithTimeout(shutdownTimeout),
		configsdatabase.CloseDB(),
	)
	if shutdownErr != nil {
		configslog.Log.Error("Kapatma sırasında hata", zap.Error(shutdownErr))
		configslog.SyncLogger()
		os.Exit(1)
	}
	configslog.SLog.Info("Sunucu kapatıldı.")
}
