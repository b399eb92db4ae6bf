package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

var (
	APP_PORT string

	DBDriver    string
	DatabaseURL string

	SyntheticTTLMinutes int
	SyntheticMaxItems   int

	allowedOrigins map[string]bool
)

// LoadConfig lee el archivo .env e inicializa las variables de configuración.
// DATABASE_URL es obligatoria: sin ella el proceso no arranca.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	APP_PORT = getEnv("APP_PORT", "9000")

	DBDriver = getEnv("DB_DRIVER", "postgres")
	DatabaseURL = os.Getenv("DATABASE_URL")
	if DatabaseURL == "" {
		log.Fatal("DATABASE_URL no esta definida")
	}

	SyntheticTTLMinutes = getEnvAsInt("SYNTHETIC_TTL_MINUTES", 5)
	SyntheticMaxItems = getEnvAsInt("SYNTHETIC_MAX_ITEMS", 100)

	loadAllowedOrigins()
}

// getEnv lee una variable de entorno con valor por defecto
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt lee una variable de entorno como entero
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func loadAllowedOrigins() {
	allowedOrigins = make(map[string]bool)
	originsStr := getEnv("ALLOWED_ORIGINS", "")

	if originsStr == "" {
		allowedOrigins = map[string]bool{
			"http://127.0.0.1:3000": true,
			"http://localhost:3000": true,
		}
		return
	}

	origins := strings.Split(originsStr, ",")
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
}

func SetupCORS(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if allowedOrigins[origin] {
			c.Set("Access-Control-Allow-Origin", origin)
			c.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			c.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		}

		// Preflight
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	})
}
