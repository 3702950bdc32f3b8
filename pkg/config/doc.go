// Package config loads typed settings from environment variables with
// github.com/caarlos0/env, after reading an optional .env file with
// github.com/joho/godotenv.
package config
