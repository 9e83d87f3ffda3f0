package utils

import (
	"fmt"
	"os"
)

func GetEnv(env string) string {
	switch env {
	case "USER_AGENT":
		userAgent, userAgentExists := os.LookupEnv("USER_AGENT")
		if !userAgentExists {
			userAgent = "IPTV Smarters/1.0.3 (iPad; iOS 16.6.1; Scale/2.00)"
		}
		return userAgent
	case "SYNC_CRON":
		cronSched, cronSchedExists := os.LookupEnv("SYNC_CRON")
		if !cronSchedExists {
			cronSched = "0 0 * * *"
		}
		return cronSched
	default:
		return os.Getenv(env)
	}
}

// GetM3USources returns the playlist sources configured through the
// M3U_URL_1..n environment variables, in index order.
func GetM3USources() []string {
	sources := []string{}
	index := 1
	for {
		url, exists := os.LookupEnv(fmt.Sprintf("M3U_URL_%d", index))
		if !exists {
			break
		}
		sources = append(sources, url)
		index++
	}
	return sources
}
