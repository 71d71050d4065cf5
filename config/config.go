package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DEFAULT_PORT      string = "5000"
	DEFAULT_DB_HOST   string = "cluster0.idf9u.mongodb.net"
	DEFAULT_DB_NAME   string = "assignment-11"
	DEFAULT_RATE      string = "100-M"
	PRODUCTION_ENV    string = "production"
	DEFAULT_TOKEN_TTL        = 5 * time.Hour
	DEFAULT_COOKIE_TTL       = time.Hour
)

var defaultOrigins = []string{
	"http://localhost:5173",
	"https://assignment-11-118f4.web.app",
	"https://assignment-11-118f4.firebaseapp.com",
}

type Config struct {
	Env             string
	Port            string
	MongoURI        string
	DBName          string
	TokenSecret     string
	TokenTTL        time.Duration
	CookieMaxAge    time.Duration
	CORSOrigins     []string
	RateLimit       string
	RedisURL        string
	RabbitMQURL     string
	ProtectBookings bool
	LogLevel        string
	LogFile         string
}

func (c Config) IsProduction() bool {
	return c.Env == PRODUCTION_ENV
}

// LoadEnv reads a .env file if one exists. Variables already present in the
// process environment are not overridden.
func LoadEnv(files ...string) {
	_ = godotenv.Load(files...)
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist && val != "" {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

func Load() (Config, error) {
	secret, err := GetSecret("ACCESS_TOKEN_SECRET")
	if err != nil {
		return Config{}, err
	}

	mongoURI, err := mongoURIFromEnv()
	if err != nil {
		return Config{}, err
	}

	tokenTTL, err := envDur("TOKEN_TTL", DEFAULT_TOKEN_TTL)
	if err != nil {
		return Config{}, err
	}
	cookieTTL, err := envDur("COOKIE_MAX_AGE", DEFAULT_COOKIE_TTL)
	if err != nil {
		return Config{}, err
	}

	env := envStr("APP_ENV", "")
	if env == "" {
		env = envStr("NODE_ENV", "development")
	}

	return Config{
		Env:             env,
		Port:            envStr("PORT", DEFAULT_PORT),
		MongoURI:        mongoURI,
		DBName:          envStr("DB_NAME", DEFAULT_DB_NAME),
		TokenSecret:     secret,
		TokenTTL:        tokenTTL,
		CookieMaxAge:    cookieTTL,
		CORSOrigins:     envList("CORS_ORIGINS", defaultOrigins),
		RateLimit:       envStr("RATE_LIMIT", DEFAULT_RATE),
		RedisURL:        os.Getenv("REDIS_URL"),
		RabbitMQURL:     os.Getenv("RABBITMQ_URL"),
		ProtectBookings: envBool("PROTECT_BOOKINGS", false),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		LogFile:         os.Getenv("LOG_FILE"),
	}, nil
}

func mongoURIFromEnv() (string, error) {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri, nil
	}

	user, err := GetSecret("DB_USER")
	if err != nil {
		return "", fmt.Errorf("set MONGODB_URI or DB_USER/DB_PASS: %v", err)
	}
	pass, err := GetSecret("DB_PASS")
	if err != nil {
		return "", fmt.Errorf("set MONGODB_URI or DB_USER/DB_PASS: %v", err)
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     envStr("DB_HOST", DEFAULT_DB_HOST),
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority&appName=Cluster0",
	}
	return u.String(), nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envDur(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %v: %q", key, v)
	}
	return d, nil
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
