// utils/safelog.go
// ============================================================================
// SAFE LOGGING - masks personal finance data in production
// ============================================================================
// Amounts and record ids end up in log lines all over the handlers. In
// production these helpers mask them before anything reaches the log.
// ============================================================================

package utils

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
)

var (
	// IsProduction switches masking on.
	IsProduction = os.Getenv("GIN_MODE") == "release" ||
		os.Getenv("ENVIRONMENT") == "production" ||
		os.Getenv("ENV") == "production"

	// LogLevel filters log output (DEBUG, INFO, WARN, ERROR).
	LogLevel = getLogLevel()
)

const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func getLogLevel() int {
	level := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	switch level {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

var (
	// Amounts with an explicit currency marker.
	amountWithCurrencyRegex = regexp.MustCompile(`\b\d+([.,]\d{1,2})?\s*(€|EUR|GBP|USD|£|\$)\b`)

	// Full UUIDs, shortened rather than removed so lines stay correlatable.
	uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// MaskString masks sensitive data in a string.
func MaskString(input string) string {
	if !IsProduction {
		return input
	}

	result := amountWithCurrencyRegex.ReplaceAllString(input, "***")

	result = uuidRegex.ReplaceAllStringFunc(result, func(id string) string {
		if len(id) > 8 {
			return id[:8] + "..."
		}
		return "***"
	})

	return result
}

// MaskAmount masks a monetary amount.
func MaskAmount(amount float64) string {
	if IsProduction {
		return "***"
	}
	return fmt.Sprintf("%.2f", amount)
}

// MaskID keeps the first 8 characters of an id.
func MaskID(id string) string {
	if !IsProduction {
		return id
	}
	if len(id) <= 8 {
		return "***"
	}
	return id[:8] + "..."
}

// SafeLog logs a message with sensitive data masked.
func SafeLog(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Print(MaskString(message))
}

// SafeDebug logs a debug message (only when LOG_LEVEL=DEBUG).
func SafeDebug(format string, args ...interface{}) {
	if LogLevel > LogLevelDebug {
		return
	}
	message := fmt.Sprintf(format, args...)
	log.Printf("[DEBUG] %s", MaskString(message))
}

// SafeInfo logs an informational message.
func SafeInfo(format string, args ...interface{}) {
	if LogLevel > LogLevelInfo {
		return
	}
	message := fmt.Sprintf(format, args...)
	log.Printf("[INFO] %s", MaskString(message))
}

// SafeWarn logs a warning.
func SafeWarn(format string, args ...interface{}) {
	if LogLevel > LogLevelWarn {
		return
	}
	message := fmt.Sprintf(format, args...)
	log.Printf("[WARN] %s", MaskString(message))
}

// SafeError logs an error message.
func SafeError(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Printf("[ERROR] %s", MaskString(message))
}
