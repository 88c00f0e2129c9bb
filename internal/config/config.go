package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Config is built once at process start and passed by reference into
// each component; it is never mutated afterwards.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"` // "development" or "production"
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`

	Identity struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"identity"`

	Geocoding struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"geocoding"`

	Stripe struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"stripe"`

	Redis struct {
		Addr string `yaml:"addr"` // empty disables the geocode cache
	} `yaml:"redis"`

	Search struct {
		// Fallback location applied when neither city nor province is
		// supplied, so collection results are never unbounded by location.
		DefaultCity     string `yaml:"default_city"`
		DefaultProvince string `yaml:"default_province"`
		PerPageDefault  int    `yaml:"per_page_default"`
		PerPageMax      int    `yaml:"per_page_max"`
		CoursesPerPage  int    `yaml:"courses_per_page"`
	} `yaml:"search"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		// Environment-variable mode (tests, containers)
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.Identity.BaseURL = os.Getenv("IDENTITY_BASE_URL")
		cfg.Identity.APIKey = os.Getenv("IDENTITY_API_KEY")
		cfg.Geocoding.BaseURL = os.Getenv("GEOCODING_BASE_URL")
		cfg.Geocoding.APIKey = os.Getenv("GOOGLE_GEOCODING_API_KEY")
		cfg.Stripe.BaseURL = os.Getenv("STRIPE_BASE_URL")
		cfg.Stripe.APIKey = os.Getenv("STRIPE_API_KEY")
		cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	} else {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	}

	applySearchDefaults(&cfg)
	AppConfig = &cfg
}

func applySearchDefaults(cfg *Config) {
	if cfg.Search.DefaultCity == "" {
		cfg.Search.DefaultCity = "Calgary"
	}
	if cfg.Search.DefaultProvince == "" {
		cfg.Search.DefaultProvince = "Alberta"
	}
	if cfg.Search.PerPageDefault == 0 {
		cfg.Search.PerPageDefault = 20
	}
	if cfg.Search.PerPageMax == 0 {
		cfg.Search.PerPageMax = 50
	}
	if cfg.Search.CoursesPerPage == 0 {
		cfg.Search.CoursesPerPage = 50
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// IsProduction reports whether the server runs in production mode.
// Production deployments additionally require a verified email on every
// request.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
