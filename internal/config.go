package internal

import (
	"time"
)

type Config struct {
	Host      string `env:"HOST,required=true"`
	Port      int    `env:"PORT,required=true"`
	DebugPort int    `env:"DEBUG_PORT"`
	LogLevel  string `env:"LOG_LEVEL,required=true"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`

	AuthTokenSecret   string        `env:"AUTH_TOKEN_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`

	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT,required=true"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY,required=true"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY,required=true"`
	MinioBucket    string `env:"MINIO_BUCKET,required=true"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL"`
}
