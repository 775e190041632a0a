package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Database   Database `yaml:"database"`
	Auth       Auth     `yaml:"auth"`
	Uploads    Uploads  `yaml:"uploads"`
	Telegram   Telegram `yaml:"telegram"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-default:"postgres"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"event_checkout"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Auth struct {
	Secret   string        `yaml:"secret" env:"AUTH_SECRET" env-required:"true"`
	TokenTTL time.Duration `yaml:"token_ttl" env-default:"24h"`
}

type Uploads struct {
	Dir string `yaml:"dir" env:"UPLOADS_DIR" env-default:"./uploads"`
}

type Telegram struct {
	BotToken    string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	AdminChatID int64  `yaml:"admin_chat_id" env:"TELEGRAM_ADMIN_CHAT_ID" env-default:"0"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
