package db

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

const (
	TypeMemory = "memory"
	TypeFile   = "file"

	defaultDbPath = "agro-dashboard.db"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

func GetInstance(dialector gorm.Dialector) *DB {
	var logger = common.GetLoggerWith(common.LoggerNameSnapshotStore)
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}

		err = instance.Conn.AutoMigrate(&models.AggregateSnapshot{}, &models.StatusCountSnapshot{})
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		logger.Info("Database migration completed")

		if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			log.Fatal("Failed to set sqlite journal mode", err)
		}
	})
	return instance
}

// UseDialector picks the sqlite dialector for a DASH_DB_TYPE value. Anything
// but "file" keeps the snapshots in memory. An empty dbPath falls back to
// DASH_DB_PATH.
func UseDialector(dbType string, dbPath string) gorm.Dialector {
	if dbType != TypeFile {
		return UseMemorySqliteDialector()
	}
	if dbPath != "" {
		return sqlite.Open(dbPath)
	}
	return UseSqliteDialector()
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyDashDbPath); !found {
		dbPath = defaultDbPath
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}
