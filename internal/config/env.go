package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr     string
	GinMode     string
	DataDir     string
	StoreDriver string // "file" or "mysql"
	MySQLDSN    string
	JWTSecret   string
	LockTimeout time.Duration
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dataDir := strings.TrimSpace(os.Getenv("DATA_DIR"))
	if dataDir == "" {
		dataDir = "data"
	}

	driver := strings.ToLower(strings.TrimSpace(os.Getenv("STORE_DRIVER")))
	if driver != "mysql" {
		driver = "file"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	lockTimeout := 5 * time.Second
	if raw := strings.TrimSpace(os.Getenv("LOCK_TIMEOUT_MS")); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			lockTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		DataDir:     dataDir,
		StoreDriver: driver,
		MySQLDSN:    strings.TrimSpace(os.Getenv("MYSQL_DSN")),
		JWTSecret:   secret,
		LockTimeout: lockTimeout,
	}
}
