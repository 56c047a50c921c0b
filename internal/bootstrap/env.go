package bootstrap

import (
	"log"

	"github.com/joho/godotenv"
)

// Loadenv loads the .env file, falling back to the process environment.
// Must run before any config constructor reads os.Getenv.
func Loadenv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}
