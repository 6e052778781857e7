// Package config loads typed configuration structs from environment
// variables, with an optional .env file for local development.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 behind a
// generic, cached API: each configuration type is parsed at most once per
// process and served from cache afterwards, so every package can call Load
// for its own Config struct without coordinating startup order.
//
//	type Config struct {
//	    SigningKey string        `env:"JWT_SIGNING_KEY,required"`
//	    AccessTTL  time.Duration `env:"JWT_ACCESS_TTL" envDefault:"15m"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// All values are supplied at process start and are immutable thereafter;
// Reset exists solely so tests can re-parse after mutating the environment.
package config
