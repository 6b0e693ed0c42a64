package db

import (
	"regexp"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var kvPairRegex = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)

// NormalizeDSN accepts a URL style DSN (postgres://..., sqlite://...),
// a lib/pq key=value list, or a bare sqlite file path.
// It trims quotes and whitespace and, if given key=value form, returns it
// cleaned with sslmode defaulted to disable.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return s
	}
	if strings.HasPrefix(lower, "sqlite://") {
		return s
	}
	if !kvPairRegex.MatchString(s) {
		// bare sqlite path or something the driver will reject on its own
		return s
	}
	fields := strings.Fields(s)
	cleaned := strings.Join(fields, " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}

// IsSQLite reports whether the DSN targets the sqlite driver.
func IsSQLite(dsn string) bool {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "sqlite://") || strings.HasPrefix(lower, "file:") {
		return true
	}
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") || kvPairRegex.MatchString(lower) {
		return false
	}
	// plain path, e.g. "inventory.db"
	return true
}

// Dialector selects the gorm driver for the DSN.
func Dialector(dsn string) gorm.Dialector {
	if IsSQLite(dsn) {
		path := strings.TrimPrefix(dsn, "sqlite://")
		return sqlite.Open(path)
	}
	return postgres.Open(dsn)
}
