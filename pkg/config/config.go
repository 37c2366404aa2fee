package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DetectionModeMock = "mock"
	DetectionModeOCR  = "ocr"

	OCRProviderVision    = "vision"
	OCRProviderTesseract = "tesseract"
)

type Config struct {
	Env    string `yaml:"env"`
	Server struct {
		Port            int           `yaml:"port" validate:"gt=0,lte=65535"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	} `yaml:"log"`
	Maps struct {
		APIKey  string        `yaml:"api_key"`
		BaseURL string        `yaml:"base_url" validate:"omitempty,url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"maps"`
	Detection struct {
		Mode string `yaml:"mode" validate:"oneof=mock ocr"`
	} `yaml:"detection"`
	OCR struct {
		Provider string        `yaml:"provider" validate:"oneof=vision tesseract"`
		APIKey   string        `yaml:"api_key"`
		BaseURL  string        `yaml:"base_url" validate:"omitempty,url"`
		Language string        `yaml:"language"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"ocr"`
	Upload struct {
		MaxBytes int64 `yaml:"max_bytes" validate:"gt=0"`
	} `yaml:"upload"`
	RateLimit struct {
		RequestsPerMinute float64 `yaml:"requests_per_minute" validate:"gt=0"`
		Burst             int     `yaml:"burst" validate:"gt=0"`
	} `yaml:"rate_limit"`
	Cache struct {
		GeocodeTTL time.Duration `yaml:"geocode_ttl"`
	} `yaml:"cache"`
	Redis struct {
		Enabled     bool   `yaml:"enabled"`
		Host        string `yaml:"host" validate:"required_if=Enabled true"`
		Port        int    `yaml:"port" validate:"gt=0,lte=65535"`
		Password    string `yaml:"password"`
		DB          int    `yaml:"db" validate:"gte=0"`
		TLSEnabled  bool   `yaml:"tls_enabled"`
		TLSCertFile string `yaml:"tls_cert_file"`
	} `yaml:"redis"`
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}
	return Parse(data)
}

// Parse decodes YAML config, applies environment overrides and defaults,
// then validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Override with environment variables if set
func applyEnv(cfg *Config) error {
	if env := os.Getenv("ENV"); env != "" {
		cfg.Env = env
	}
	if port := os.Getenv("PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT value: %v", err)
		}
		cfg.Server.Port = portNum
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if key := os.Getenv("GOOGLE_MAPS_API_KEY"); key != "" {
		cfg.Maps.APIKey = key
	}
	if mode := os.Getenv("DETECTION_MODE"); mode != "" {
		cfg.Detection.Mode = strings.ToLower(mode)
	}
	if provider := os.Getenv("OCR_PROVIDER"); provider != "" {
		cfg.OCR.Provider = strings.ToLower(provider)
	}
	if key := os.Getenv("GOOGLE_VISION_API_KEY"); key != "" {
		cfg.OCR.APIKey = key
	}
	if enabled := os.Getenv("REDIS_ENABLED"); enabled != "" {
		cfg.Redis.Enabled = enabled == "true"
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid REDIS_PORT value: %v", err)
		}
		cfg.Redis.Port = portNum
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		dbNum, err := strconv.Atoi(db)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB value: %v", err)
		}
		cfg.Redis.DB = dbNum
	}
	if tlsEnabled := os.Getenv("REDIS_TLS_ENABLED"); tlsEnabled != "" {
		cfg.Redis.TLSEnabled = tlsEnabled == "true"
	}
	if tlsCertFile := os.Getenv("REDIS_TLS_CERT_FILE"); tlsCertFile != "" {
		cfg.Redis.TLSCertFile = tlsCertFile
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 5 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "INFO"
	}
	if cfg.Maps.Timeout == 0 {
		cfg.Maps.Timeout = 10 * time.Second
	}
	if cfg.Detection.Mode == "" {
		cfg.Detection.Mode = DetectionModeMock
	}
	if cfg.OCR.Provider == "" {
		cfg.OCR.Provider = OCRProviderVision
	}
	if cfg.OCR.Language == "" {
		cfg.OCR.Language = "eng"
	}
	if cfg.OCR.Timeout == 0 {
		cfg.OCR.Timeout = 30 * time.Second
	}
	if cfg.Upload.MaxBytes == 0 {
		cfg.Upload.MaxBytes = 10 << 20
	}
	if cfg.RateLimit.RequestsPerMinute == 0 {
		cfg.RateLimit.RequestsPerMinute = 100
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
	if cfg.Cache.GeocodeTTL == 0 {
		cfg.Cache.GeocodeTTL = 24 * time.Hour
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
}

// Validate checks struct tags plus the rules tags cannot express.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %v", err)
	}
	if cfg.Detection.Mode == DetectionModeOCR && cfg.OCR.Provider == OCRProviderVision && cfg.OCR.APIKey == "" {
		return fmt.Errorf("GOOGLE_VISION_API_KEY is required when detection mode is ocr with the vision provider")
	}
	if cfg.Redis.TLSEnabled && cfg.Redis.TLSCertFile != "" {
		if _, err := os.Stat(cfg.Redis.TLSCertFile); os.IsNotExist(err) {
			return fmt.Errorf("TLS certificate file does not exist: %s", cfg.Redis.TLSCertFile)
		}
	}
	return nil
}
