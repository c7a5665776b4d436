package main

import (
	"flag"
	"log"
	"os"

	"weather-mcp/openmeteo"
	"weather-mcp/tools"
	"weather-mcp/weather"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
)

const serverVersion = "1.0.0"

func main() {
	// The MCP transport owns stdout, so all logging goes to stderr.
	log.SetOutput(os.Stderr)

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Parse command line arguments
	enableRateLimiting := flag.Bool("rate-limit", false, "Enable client-side rate limiting of upstream API calls")
	rps := flag.Float64("rps", 5.0, "Sustained upstream requests per second when rate limiting is enabled")
	burst := flag.Int("burst", 10, "Maximum upstream request burst when rate limiting is enabled")
	flag.Parse()

	// Create the upstream client. Base URLs and user agent are fixed
	// unless overridden through the environment (tests, self-hosted
	// Open-Meteo instances).
	var api openmeteo.API = openmeteo.NewClient(openmeteo.Config{
		ForecastBaseURL:  os.Getenv("OPENMETEO_FORECAST_URL"),
		ArchiveBaseURL:   os.Getenv("OPENMETEO_ARCHIVE_URL"),
		GeocodingBaseURL: os.Getenv("OPENMETEO_GEOCODING_URL"),
		UserAgent:        os.Getenv("OPENMETEO_USER_AGENT"),
	})

	if *enableRateLimiting {
		api = openmeteo.NewThrottledClient(api, *rps, *burst)
		log.Printf("Applied rate limiting to Open-Meteo client (%.1f rps, burst %d)", *rps, *burst)
	}

	svc := weather.NewService(api)

	s := server.NewMCPServer("weather", serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	tools.Register(s, svc)

	log.Printf("Starting weather MCP server v%s on stdio", serverVersion)
	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
