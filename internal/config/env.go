package config

import (
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads the first .env file that exists. Variables already set in
// the process environment are not overwritten. fs.ErrNotExist is returned when
// none of the files exist.
func loadEnvFile() error {
	for _, path := range envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return godotenv.Load(path)
	}
	return fs.ErrNotExist
}
