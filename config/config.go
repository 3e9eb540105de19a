package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort      string
	MetricsPort      string
	MongoDBConfig    MongoDBConfig
	CloudinaryConfig CloudinaryConfig
	SMTPConfig       SMTPConfig
	TracingConfig    TracingConfig
}

type MongoDBConfig struct {
	URI    string
	DBName string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Sender     string
	Password   string
	NotifyAddr string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		MongoDBConfig: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: os.Getenv("DB_NAME"),
		},
		CloudinaryConfig: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		SMTPConfig: SMTPConfig{
			Host:       os.Getenv("SMTP_HOST"),
			Sender:     os.Getenv("SMTP_SENDER"),
			Password:   os.Getenv("SMTP_PASSWORD"),
			NotifyAddr: os.Getenv("SMTP_NOTIFY_ADDRESS"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "freshcart"
	}

	return &conf
}
