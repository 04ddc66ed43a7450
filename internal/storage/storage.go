package storage

import (
	"os"
	"sync"
	"time"

	"chathub-backend/internal/config"
	"chathub-backend/internal/util/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var log = logger.GetLogger()

var (
	db       *gorm.DB
	sqlxDb   *sqlx.DB
	initOnce sync.Once
)

// GetDb returns the shared gorm handle used by all repositories.
func GetDb() *gorm.DB {
	initOnce.Do(connect)
	return db
}

// GetSqlxDb returns a sqlx handle on the same database, used for
// raw aggregate queries that do not map onto gorm models.
func GetSqlxDb() *sqlx.DB {
	initOnce.Do(connect)
	return sqlxDb
}

func connect() {
	dsn := config.GetEnv().DatabaseDsn

	gormDb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	sqlDb, err := gormDb.DB()
	if err != nil {
		log.Error("Failed to get underlying sql.DB", "error", err)
		os.Exit(1)
	}

	sqlDb.SetMaxOpenConns(20)
	sqlDb.SetMaxIdleConns(5)
	sqlDb.SetConnMaxLifetime(time.Hour)

	rawDb, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Error("Failed to open sqlx connection", "error", err)
		os.Exit(1)
	}

	db = gormDb
	sqlxDb = rawDb
}
