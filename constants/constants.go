package constants

import (
	"os"
	"strconv"
	"time"
)

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func GetEnvironment() string {
	return getEnv("ENVIRONMENT", "development")
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

// GetCardStaffWidth is the staff width of each chord card, in pixels.
func GetCardStaffWidth() int {
	width, err := strconv.Atoi(getEnv("STAFF_WIDTH", "180"))
	if err != nil || width <= 0 {
		return 180
	}
	return width
}

// PreferSharps spells black keys on the staff as sharps instead of flats.
func PreferSharps() bool {
	return getEnv("NOTATION_SHARPS", "false") == "true"
}

func GetListenDebounce() time.Duration {
	ms, err := strconv.Atoi(getEnv("LISTEN_DEBOUNCE_MS", "150"))
	if err != nil || ms < 0 {
		ms = 150
	}
	return time.Duration(ms) * time.Millisecond
}

func GetSentryDSN() string {
	return getEnv("SENTRY_DSN", "")
}

// cap on sounding notes analyzed at once from a MIDI source
const MaxSonoritySize = 16
