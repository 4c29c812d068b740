package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment      string
	ServicePort      string
	MetricsPort      string
	PostgreSQLConfig PostgreSQLConfig
	JWTConfig        JWTConfig
	FileUploadDir    string
	FCMConfig        FCMConfig
	TracingConfig    TracingConfig
}

type PostgreSQLConfig struct {
	DBHost     string
	DBName     string
	DBPort     string
	DBUsername string
	DBPassword string
}

type JWTConfig struct {
	Secret        string
	RefreshSecret string
}

type FCMConfig struct {
	CredentialsFile string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		Environment: os.Getenv("ENVIRONMENT"),
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		JWTConfig: JWTConfig{
			Secret:        os.Getenv("JWT_SECRET"),
			RefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		},
		FileUploadDir: os.Getenv("FILE_UPLOAD_DIR"),
		FCMConfig: FCMConfig{
			CredentialsFile: os.Getenv("FCM_CREDENTIALS_FILE"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("TRACING_COLLECTOR_HOST"),
		},
	}

	if conf.FileUploadDir == "" {
		conf.FileUploadDir = "/parayo"
	}

	return &conf
}
