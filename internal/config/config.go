package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the server, console and dbtool binaries.
type Config struct {
	Port        string
	CityMapPath string // empty means the built-in sample city

	DBDriver    string
	DatabaseURL string // empty disables the trip log
	TripHistory int    // default page size for GET /trips

	RedisURL         string // empty disables the distance cache
	DistanceCacheTTL time.Duration
	CacheNamespace   string
}

// Load reads a .env file from the working directory if one exists.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// FromEnv builds a Config from the process environment.
func FromEnv() Config {
	return Config{
		Port:             Get("PORT", "8080"),
		CityMapPath:      Get("CITY_MAP_PATH", ""),
		DBDriver:         Get("DB_DRIVER", "sqlite"),
		DatabaseURL:      Get("DATABASE_URL", ""),
		TripHistory:      GetInt("TRIP_HISTORY_LIMIT", 50),
		RedisURL:         Get("REDIS_URL", ""),
		DistanceCacheTTL: GetDuration("DISTANCE_CACHE_TTL", 10*time.Minute),
		CacheNamespace:   Get("CACHE_NAMESPACE", "citysim"),
	}
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func GetDuration(key string, fallback time.Duration) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: %s=%q is not a duration, using %s", key, v, fallback)
		return fallback
	}
	return d
}
