package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App            AppConfig
	Server         ServerConfig
	Database       DatabaseConfig
	JWT            JWTConfig
	Redis          RedisConfig
	Recommendation RecommendationConfig
	Analytics      AnalyticsConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// RecommendationConfig carries the tunables of the scoring engine. Loaded
// once at startup and handed to the service as an immutable value.
type RecommendationConfig struct {
	WeightCategory     float64
	WeightPrice        float64
	WeightAttributes   float64
	WeightConservation float64
	WeightPopularity   float64

	PriceCutoff         float64
	SimilarityThreshold float64
	MaxRecommendations  int
	MultiSourceBoost    float64

	TrendingWindowDays  int
	CoOccurrenceWindow  int
	RecentOrderLookback int
	SourceProducts      int

	CacheTTLSeconds int
}

type AnalyticsConfig struct {
	BrowsingWindowHours   int
	BrowsingMaxEvents     int
	MinViewsForConversion int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Pesqueria Outfitters API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "pesqueria"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Recommendation: RecommendationConfig{
			WeightCategory:     getEnvFloat("RECO_WEIGHT_CATEGORY", 0.30),
			WeightPrice:        getEnvFloat("RECO_WEIGHT_PRICE", 0.20),
			WeightAttributes:   getEnvFloat("RECO_WEIGHT_ATTRIBUTES", 0.25),
			WeightConservation: getEnvFloat("RECO_WEIGHT_CONSERVATION", 0.15),
			WeightPopularity:   getEnvFloat("RECO_WEIGHT_POPULARITY", 0.10),

			PriceCutoff:         getEnvFloat("RECO_PRICE_CUTOFF", 0.30),
			SimilarityThreshold: getEnvFloat("RECO_SIMILARITY_THRESHOLD", 0.60),
			MaxRecommendations:  getEnvInt("RECO_MAX_RECOMMENDATIONS", 6),
			MultiSourceBoost:    getEnvFloat("RECO_MULTI_SOURCE_BOOST", 0.10),

			TrendingWindowDays:  getEnvInt("RECO_TRENDING_WINDOW_DAYS", 30),
			CoOccurrenceWindow:  getEnvInt("RECO_COOCCURRENCE_WINDOW", 50),
			RecentOrderLookback: getEnvInt("RECO_RECENT_ORDER_LOOKBACK", 5),
			SourceProducts:      getEnvInt("RECO_SOURCE_PRODUCTS", 3),

			CacheTTLSeconds: getEnvInt("RECO_CACHE_TTL_SECONDS", 300),
		},
		Analytics: AnalyticsConfig{
			BrowsingWindowHours:   getEnvInt("ANALYTICS_BROWSING_WINDOW_HOURS", 24),
			BrowsingMaxEvents:     getEnvInt("ANALYTICS_BROWSING_MAX_EVENTS", 100),
			MinViewsForConversion: getEnvInt("ANALYTICS_MIN_VIEWS_CONVERSION", 5),
		},
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}

	return defaultVal
}
