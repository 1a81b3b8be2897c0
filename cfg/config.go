package cfg

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host string
	Port string
}

type AmadeusConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

type DuffelConfig struct {
	BaseURL     string
	AccessToken string
}

type Config struct {
	AppEnv          string
	AppPort         string
	RedisConfig     RedisConfig
	AmadeusConfig   AmadeusConfig
	DuffelConfig    DuffelConfig
	CacheTTLMinutes int
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	var errs []error

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)
	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)

	amadeusBaseURL := mustEnv("AMADEUS_BASE_URL", &errs)
	amadeusClientID := mustEnv("AMADEUS_CLIENT_ID", &errs)
	amadeusClientSecret := mustEnv("AMADEUS_CLIENT_SECRET", &errs)

	duffelBaseURL := mustEnv("DUFFEL_BASE_URL", &errs)
	// The fallback provider token may be absent; the proxy endpoint
	// answers 500 until it is configured.
	duffelAccessToken := os.Getenv("DUFFEL_ACCESS_TOKEN")

	cacheTTLMinutes := 0
	if raw, exists := os.LookupEnv("CACHE_TTL_MINUTES"); exists && raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, errors.New("conversion failed env: CACHE_TTL_MINUTES"))
		}
		cacheTTLMinutes = parsed
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		RedisConfig: RedisConfig{
			Host: redisHost,
			Port: redisPort,
		},
		AmadeusConfig: AmadeusConfig{
			BaseURL:      amadeusBaseURL,
			ClientID:     amadeusClientID,
			ClientSecret: amadeusClientSecret,
		},
		DuffelConfig: DuffelConfig{
			BaseURL:     duffelBaseURL,
			AccessToken: duffelAccessToken,
		},
		CacheTTLMinutes: cacheTTLMinutes,
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}
