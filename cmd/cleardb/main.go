// cleardb wipes all attendance records and users. It exists for resetting
// test or demo environments; there is no undo.
package main

import (
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/core/config"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/core/database"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/core/logger"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/repo"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	// attendance rows reference users, so they go first; one transaction
	// keeps a failed run from leaving a half-cleared database
	err = db.Transaction(func(tx *gorm.DB) error {
		if e := repo.NewAttendanceRepo(tx).DeleteAll(); e != nil {
			return e
		}
		return repo.NewUserRepo(tx).DeleteAll()
	})
	if err != nil {
		log.Fatal("clear failed", zap.Error(err))
	}
	log.Info("all attendance records and users cleared")
}
