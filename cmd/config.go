package cmd

import "time"

// Config carries every externally supplied setting of the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	OpenRouteAPIKey  string
	OpenRouteBaseURL string
	OpenRouteTimeout time.Duration

	RouteBackfillCron string
}
