package initializers

import "github.com/joho/godotenv"

// LoadEnv reads .env into the process environment. It runs before the logger
// exists, so the caller logs the returned error.
func LoadEnv() error {
	return godotenv.Load()
}
