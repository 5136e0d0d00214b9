package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat ringkas tiap request. Waktu ditampilkan
// WIB karena seluruh operasional dakwahku (da'i maupun admin) ada di
// zona Asia/Jakarta.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "02 Jan 2006 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[${time}] ${status} ${method} ${path} (${latency}) ip=${ip}\n",
	})
}
