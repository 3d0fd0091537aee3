package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPITimeout  = 10 * time.Second
	defaultMaxResults  = 500
	defaultDigestHour  = 7
	DigestHourDisabled = -1
)

type Config struct {
	TelegramToken string
	APIBaseURL    string
	APIToken      string
	APIEmail      string
	APIPassword   string
	AdminChatIDs  []int64
	Environment   string
	LogLevel      string
	APITimeout    time.Duration
	MaxResults    int
	DigestHour    int
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv(os.Getenv)
}

// FromEnv собирает конфиг из функции чтения переменных
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		TelegramToken: getenv("TELEGRAM_TOKEN"),
		APIBaseURL:    strings.TrimRight(getenv("API_BASE_URL"), "/"),
		APIToken:      getenv("API_TOKEN"),
		APIEmail:      getenv("API_EMAIL"),
		APIPassword:   getenv("API_PASSWORD"),
		Environment:   getenv("ENV"),
		LogLevel:      getenv("LOG_LEVEL"),
		APITimeout:    defaultAPITimeout,
		MaxResults:    defaultMaxResults,
		DigestHour:    defaultDigestHour,
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// Проверяем обязательные поля
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required but not set")
	}
	if cfg.APIToken == "" && (cfg.APIEmail == "" || cfg.APIPassword == "") {
		return nil, fmt.Errorf("either API_TOKEN or API_EMAIL and API_PASSWORD must be set")
	}

	ids, err := parseChatIDs(getenv("ADMIN_CHAT_IDS"))
	if err != nil {
		return nil, err
	}
	cfg.AdminChatIDs = ids

	if v := getenv("API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("API_TIMEOUT: invalid duration %q", v)
		}
		cfg.APITimeout = d
	}

	if v := getenv("SCHEDULE_MAX_RESULTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("SCHEDULE_MAX_RESULTS: invalid value %q", v)
		}
		cfg.MaxResults = n
	}

	if v := getenv("DIGEST_HOUR"); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil || h < DigestHourDisabled || h > 23 {
			return nil, fmt.Errorf("DIGEST_HOUR: expected -1..23, got %q", v)
		}
		cfg.DigestHour = h
	}

	return cfg, nil
}

func parseChatIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_CHAT_IDS: invalid chat id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// IsAdmin проверяет, есть ли чат в списке администраторов
func (c *Config) IsAdmin(chatID int64) bool {
	for _, id := range c.AdminChatIDs {
		if id == chatID {
			return true
		}
	}
	return false
}

func (c *Config) DigestEnabled() bool {
	return c.DigestHour != DigestHourDisabled && len(c.AdminChatIDs) > 0
}
