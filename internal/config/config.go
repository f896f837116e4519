package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	AssetsBucket   string
	ExportsBucket  string

	RedisAddr     string
	RedisPassword string
	JWTPublicKey  string

	MaxUploadBytes   int64
	RecordingEnabled bool
	AssistTick       time.Duration
	ExportTick       time.Duration
	ThumbnailWidth   int
}

// Buckets lists every bucket the services write to.
func (s *Settings) Buckets() []string {
	return []string{s.AssetsBucket, s.ExportsBucket}
}

var required = []string{
	"MARIADB_DSN",
	"MARIADB_MAX_OPEN_CONN",
	"MARIADB_MAX_IDLE_CONNS",
	"MARIADB_CONN_MAX_LIFETIME",
	"SERVER_PORT",
	"MINIO_ENDPOINT",
	"MINIO_ACCESS_KEY",
	"MINIO_SECRET_KEY",
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	for _, key := range required {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("ASSETS_BUCKET", "assets")
	v.SetDefault("EXPORTS_BUCKET", "exports")
	v.SetDefault("MAX_UPLOAD_BYTES", 500<<20)
	v.SetDefault("RECORDING_ENABLED", true)
	v.SetDefault("ASSIST_TICK_MS", 120)
	v.SetDefault("EXPORT_TICK_MS", 100)
	v.SetDefault("THUMBNAIL_WIDTH", 320)

	s := &Settings{
		MariaDBDSN:      v.GetString("MARIADB_DSN"),
		MaxOpenConns:    v.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    v.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(v.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      v.GetInt("SERVER_PORT"),

		MinioEndpoint:  v.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: v.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: v.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    v.GetBool("MINIO_USE_SSL"),
		AssetsBucket:   strings.TrimSpace(v.GetString("ASSETS_BUCKET")),
		ExportsBucket:  strings.TrimSpace(v.GetString("EXPORTS_BUCKET")),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		JWTPublicKey:  v.GetString("JWT_PUBLIC_KEY"),

		MaxUploadBytes:   v.GetInt64("MAX_UPLOAD_BYTES"),
		RecordingEnabled: v.GetBool("RECORDING_ENABLED"),
		AssistTick:       time.Duration(v.GetInt("ASSIST_TICK_MS")) * time.Millisecond,
		ExportTick:       time.Duration(v.GetInt("EXPORT_TICK_MS")) * time.Millisecond,
		ThumbnailWidth:   v.GetInt("THUMBNAIL_WIDTH"),
	}

	if s.AssetsBucket == "" || s.ExportsBucket == "" {
		return nil, fmt.Errorf("ASSETS_BUCKET and EXPORTS_BUCKET must not be empty")
	}
	if s.AssistTick <= 0 || s.ExportTick <= 0 {
		return nil, fmt.Errorf("ASSIST_TICK_MS and EXPORT_TICK_MS must be positive")
	}
	if s.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}

	return s, nil
}
