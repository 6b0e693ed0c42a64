package db

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Poovetha/Inventory/internal/config"
	"github.com/Poovetha/Inventory/internal/models"
)

// Connect opens the database described by dsn, verifies connectivity and
// brings the schema up to date. Postgres connections are retried for a while
// because the database container often starts alongside the app.
func Connect(rawDSN string) (*gorm.DB, error) {
	dsn := NormalizeDSN(rawDSN)
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN is empty, check the environment configuration")
	}

	logLevel := logger.Silent
	if config.ParseBool("DB_DEBUG", false) {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	attempts := 10
	if IsSQLite(dsn) {
		attempts = 1 // nothing to wait for on a local file
	}
	conn, err := openWithRetry(Dialector(dsn), cfg, attempts, 2*time.Second)
	if err != nil {
		return nil, err
	}

	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	log.Info().Str("dsn", maskDSN(dsn)).Msg("database connected")

	if err := Migrate(conn, dsn); err != nil {
		return nil, err
	}
	return conn, nil
}

// openWithRetry dials until a connection succeeds or attempts run out,
// sleeping between attempts but not after the last one.
func openWithRetry(dialector gorm.Dialector, cfg *gorm.Config, attempts int, delay time.Duration) (*gorm.DB, error) {
	var conn *gorm.DB
	var err error
	for i := 0; i < attempts; i++ {
		conn, err = gorm.Open(dialector, cfg)
		if err == nil {
			return conn, nil
		}
		if i == attempts-1 {
			break
		}
		log.Warn().Err(err).Msg("retrying DB connection")
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("failed to connect database after retries: %w", err)
}

// Migrate applies the schema. With MIGRATIONS=1 (postgres only) the SQL files
// under ./migrations run via golang-migrate; otherwise AutoMigrate keeps the
// three tables in sync, which is the dev and sqlite default.
func Migrate(conn *gorm.DB, dsn string) error {
	if config.ParseBool("MIGRATIONS", false) {
		if IsSQLite(dsn) {
			return fmt.Errorf("MIGRATIONS=1 requires a postgres DSN")
		}
		if err := runSQLMigrations(dsn); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		for _, m := range []interface{}{&models.Product{}, &models.Location{}, &models.Movement{}} {
			if migErr := conn.AutoMigrate(m); migErr != nil {
				return fmt.Errorf("automigrate %T: %w", m, migErr)
			}
		}
	}
	for _, table := range []string{"product", "location", "product_movement"} {
		if !conn.Migrator().HasTable(table) {
			return fmt.Errorf("missing table after migration: %s", table)
		}
	}
	return nil
}

var passwordRegex = regexp.MustCompile(`(password=)([^\s]+)`)

func maskDSN(dsn string) string {
	masked := passwordRegex.ReplaceAllString(dsn, `${1}***`)
	if u := strings.Index(masked, "://"); u >= 0 {
		if at := strings.Index(masked, "@"); at > u {
			if colon := strings.Index(masked[u+3:], ":"); colon >= 0 && u+3+colon < at {
				masked = masked[:u+3+colon+1] + "***" + masked[at:]
			}
		}
	}
	return masked
}
