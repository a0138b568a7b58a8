package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the application's configuration values.
type Config struct {
	AppName  string `json:"appname"`
	AppEnv   string `json:"appenv"`
	AppPort  uint16 `json:"appport"`
	GinMode  string `json:"ginmode"`
	LogLevel string `json:"log_level"`

	DBDriver   string `json:"db_driver"`
	DBHost     string `json:"dbhost"`
	DBPort     uint16 `json:"dbport"`
	DBName     string `json:"dbname"`
	DBUSER     string `json:"dbuser"`
	DBPass     string `json:"dbpass"`
	SQLitePath string `json:"sqlite_path"`

	SupabaseURL        string `json:"supabase_url"`
	SupabaseAnonKey    string `json:"-"`
	SupabaseServiceKey string `json:"-"`

	RedisAddr string `json:"redis_addr"`
	RedisPass string `json:"-"`
	RedisDB   int    `json:"redis_db"`

	JWTSecret string `json:"-"`

	PersistTimeout     time.Duration `json:"persist_timeout"`
	ConflictPolicy     string        `json:"conflict_policy"`
	DoctorDeletePolicy string        `json:"doctor_delete_policy"`
	WizardTTL          time.Duration `json:"wizard_ttl"`
	RateLimit          int           `json:"rate_limit"`
	RateWindow         time.Duration `json:"rate_window"`
	GeoIPDBPath        string        `json:"geoip_db_path"`
}

const (
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
	DriverSupabase = "supabase"
)

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// A missing .env is normal in containers; the process env still applies.
		if err := godotenv.Load(); err != nil && os.Getenv("APPENV") != "test" {
			log.Debug().Err(err).Msg("no .env file loaded")
		}
		config = fromViper(newViper())
	})
	return config
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APPNAME", "HealthGhar")
	v.SetDefault("APPENV", "development")
	v.SetDefault("APPPORT", 8080)
	v.SetDefault("GINMODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("DBPORT", 3306)
	v.SetDefault("SQLITE_PATH", "healthghar.db")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("PERSIST_TIMEOUT", "10s")
	v.SetDefault("CONFLICT_POLICY", "none")
	v.SetDefault("DOCTOR_DELETE_POLICY", "abort")
	v.SetDefault("WIZARD_TTL", "30m")
	v.SetDefault("RATE_LIMIT", 30)
	v.SetDefault("RATE_WINDOW", "1m")
	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppName:            v.GetString("APPNAME"),
		AppEnv:             v.GetString("APPENV"),
		AppPort:            uint16(v.GetUint("APPPORT")),
		GinMode:            v.GetString("GINMODE"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		DBDriver:           v.GetString("DB_DRIVER"),
		DBHost:             v.GetString("DBHOST"),
		DBPort:             uint16(v.GetUint("DBPORT")),
		DBName:             v.GetString("DBNAME"),
		DBUSER:             v.GetString("DBUSER"),
		DBPass:             v.GetString("DBPASS"),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		SupabaseURL:        v.GetString("SUPABASE_URL"),
		SupabaseAnonKey:    v.GetString("SUPABASE_ANON_KEY"),
		SupabaseServiceKey: v.GetString("SUPABASE_SERVICE_KEY"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPass:          v.GetString("REDIS_PASS"),
		RedisDB:            v.GetInt("REDIS_DB"),
		JWTSecret:          v.GetString("JWTSECRET"),
		PersistTimeout:     v.GetDuration("PERSIST_TIMEOUT"),
		ConflictPolicy:     v.GetString("CONFLICT_POLICY"),
		DoctorDeletePolicy: v.GetString("DOCTOR_DELETE_POLICY"),
		WizardTTL:          v.GetDuration("WIZARD_TTL"),
		RateLimit:          v.GetInt("RATE_LIMIT"),
		RateWindow:         v.GetDuration("RATE_WINDOW"),
		GeoIPDBPath:        v.GetString("GEOIP_DB_PATH"),
	}
}

// IsTest reports whether the process runs under APPENV=test. The env var is
// read directly so tests can flip it after the singleton was built.
func IsTest() bool {
	return os.Getenv("APPENV") == "test"
}

// ConnectMySQL establishes a connection to a MySQL database using the configuration values.
// Under APPENV=test it returns a shared in-memory SQLite database instead.
func ConnectMySQL() (*gorm.DB, error) {
	if IsTest() {
		return gorm.Open(sqlite.Open("file:healthghar_test?mode=memory&cache=shared"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	}

	cfg := LoadConfig()
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUSER, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

// ConnectSQLite opens a file backed SQLite database for local development.
func ConnectSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		path = LoadConfig().SQLitePath
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
