package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

var (
	DB  *gorm.DB
	App *Config
)

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	JWTSecret  string
	Port       string
	Env        string
	LogDir     string

	AllowedOrigins []string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	ImageHostURL    string
	ImageHostAPIKey string

	MongoURI string
	MongoDB  string

	AdminEmail    string
	AdminPassword string
	AdminName     string

	Tunables Tunables
}

// Tunables are the non-secret knobs that may be overridden from CONFIG_FILE
type Tunables struct {
	PasswordPolicy    PasswordPolicy `yaml:"password_policy"`
	TokenTTL          time.Duration  `yaml:"token_ttl"`
	OTPTTL            time.Duration  `yaml:"otp_ttl"`
	ResetTokenTTL     time.Duration  `yaml:"reset_token_ttl"`
	DefaultPageLimit  int            `yaml:"default_page_limit"`
	MaxPageLimit      int            `yaml:"max_page_limit"`
	LowStockThreshold int            `yaml:"low_stock_threshold"`
}

// PasswordPolicy describes the strength rules applied to new passwords
type PasswordPolicy struct {
	MinLength      int  `yaml:"min_length"`
	RequireUpper   bool `yaml:"require_upper"`
	RequireLower   bool `yaml:"require_lower"`
	RequireDigit   bool `yaml:"require_digit"`
	RequireSpecial bool `yaml:"require_special"`
}

// DefaultTunables returns the built-in tunables
func DefaultTunables() Tunables {
	return Tunables{
		PasswordPolicy: PasswordPolicy{
			MinLength:      8,
			RequireUpper:   true,
			RequireLower:   true,
			RequireDigit:   true,
			RequireSpecial: false,
		},
		TokenTTL:          24 * time.Hour,
		OTPTTL:            10 * time.Minute,
		ResetTokenTTL:     15 * time.Minute,
		DefaultPageLimit:  10,
		MaxPageLimit:      100,
		LowStockThreshold: 5,
	}
}

// Current returns the loaded configuration or one built from defaults.
// Tests and helpers that run before LoadConfig rely on the fallback.
func Current() *Config {
	if App != nil {
		return App
	}
	return &Config{
		Port:     "8080",
		Env:      "development",
		LogDir:   "logs",
		Tunables: DefaultTunables(),
	}
}

// LoadConfig loads configuration from the environment, an optional .env file
// and an optional YAML tunables file named by CONFIG_FILE
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	config := &Config{
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          getEnv("DB_NAME", "shopsphere"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		LogDir:          getEnv("LOG_DIR", "logs"),
		AllowedOrigins:  splitList(os.Getenv("ALLOWED_ORIGINS")),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPUsername:    os.Getenv("SMTP_USERNAME"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:        os.Getenv("SMTP_FROM"),
		ImageHostURL:    getEnv("IMAGE_HOST_URL", "https://api.imgbb.com/1/upload"),
		ImageHostAPIKey: os.Getenv("IMAGE_HOST_API_KEY"),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDB:         getEnv("MONGO_DB", "shopsphere"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		AdminName:       getEnv("ADMIN_NAME", "Administrator"),
		Tunables:        DefaultTunables(),
	}

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
	}
	config.SMTPPort = port

	if config.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadTunables(path, &config.Tunables); err != nil {
			return nil, err
		}
	}

	App = config
	return config, nil
}

// DSN returns the Postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// loadTunables overlays the YAML file at path onto t.
// Fields missing from the file keep their current values.
func loadTunables(path string, t *Tunables) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file %s: %v", path, err)
	}
	if err := yaml.Unmarshal(file, t); err != nil {
		return fmt.Errorf("error parsing config file %s: %v", path, err)
	}
	if t.DefaultPageLimit < 1 {
		t.DefaultPageLimit = 10
	}
	if t.MaxPageLimit < t.DefaultPageLimit {
		t.MaxPageLimit = t.DefaultPageLimit
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
