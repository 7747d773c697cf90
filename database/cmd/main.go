package main

import (
	"flag"
	"os"

	"chodae.link/configs/configsdatabase"
	"chodae.link/configs/configsenv"
	"chodae.link/configs/configslog"
	"chodae.link/database"

	"go.uber.org/zap"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "Veritabanı başlatma işlemini çalıştır (migrasyonları içerir)")
	seedFlag := flag.Bool("seed", false, "Veritabanı başlatma işlemini çalıştır (seederları içerir)")
	flag.Parse()

	// .env önce yüklenir; logger APP_ENV ve LOG_LEVEL değerlerini ortamdan okur.
	cfg, err := configsenv.Load()
	configslog.InitLogger()
	defer configslog.SyncLogger()
	if err != nil {
		configslog.Log.Fatal("Konfigürasyon yüklenemedi", zap.Error(err))
	}

	if err := configsdatabase.InitDB(cfg.DB); err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.Error(err))
	}
	defer configsdatabase.CloseDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	if err := database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag); err != nil {
		configslog.Log.Error("Veritabanı başlatma işlemi başarısız", zap.Error(err))
		configsdatabase.CloseDB()
		configslog.SyncLogger()
		os.Exit(1)
	}
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
