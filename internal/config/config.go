package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every runtime knob the server reads from the environment.
// GEMINI_API_KEY is consumed directly by the genai client and SESSION_SECRET
// by auth.Init, so neither appears here.
type Config struct {
	Env  string
	Port string

	TextModel  string
	ImageModel string

	RoundTimeout time.Duration

	SessionTTL    time.Duration
	SweepInterval time.Duration

	RateEvery time.Duration
	RateBurst int

	WebDir string
}

func Load() *Config {
	return &Config{
		Env:           getenv("APP_ENV", "local"),
		Port:          getenv("PORT", "8080"),
		TextModel:     getenv("TEXT_MODEL", "gemini-2.0-flash"),
		ImageModel:    getenv("IMAGE_MODEL", "imagen-3.0-generate-002"),
		RoundTimeout:  getenvDuration("ROUND_TIMEOUT", 60*time.Second),
		SessionTTL:    getenvDuration("SESSION_TTL", 30*time.Minute),
		SweepInterval: getenvDuration("SWEEP_INTERVAL", 5*time.Minute),
		RateEvery:     getenvDuration("RATE_EVERY", 2*time.Second),
		RateBurst:     getenvInt("RATE_BURST", 5),
		WebDir:        getenv("WEB_DIR", "web"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
