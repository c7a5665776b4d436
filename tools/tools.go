// Package tools exposes the seven weather operations as MCP tools.
// Every handler validates its arguments, delegates to the weather
// service, and renders either a text report or a failure message; this
// is the only place a typed failure becomes user-facing text.
package tools

import (
	"context"
	"fmt"

	"weather-mcp/models"
	"weather-mcp/weather"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DefaultForecastDays is used when the forecast tool is called without
// an explicit day count.
const DefaultForecastDays = 7

type toolset struct {
	svc *weather.Service
}

// Register wires all weather tools onto the MCP server.
func Register(s *server.MCPServer, svc *weather.Service) {
	t := &toolset{svc: svc}

	s.AddTool(mcp.NewTool("get_current_weather",
		mcp.WithDescription("Get current weather for a location"),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
	), t.handleCurrentWeather)

	s.AddTool(mcp.NewTool("get_weather_forecast",
		mcp.WithDescription("Get daily weather forecast for a location"),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
		mcp.WithNumber("days", mcp.DefaultNumber(DefaultForecastDays),
			mcp.Description("Number of days to forecast (1-16, default: 7)")),
	), t.handleForecast)

	s.AddTool(mcp.NewTool("get_weather_alerts",
		mcp.WithDescription("Check for weather alerts and warnings for a location"),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
	), t.handleAlerts)

	s.AddTool(mcp.NewTool("search_locations",
		mcp.WithDescription("Search for locations by name to get coordinates"),
		mcp.WithString("query", mcp.Required(),
			mcp.Description("Location name to search for (e.g. \"Paris\", \"New York\", \"Tokyo\")")),
	), t.handleSearchLocations)

	s.AddTool(mcp.NewTool("get_weather_by_city",
		mcp.WithDescription("Get current weather for a city by name"),
		mcp.WithString("city_name", mcp.Required(),
			mcp.Description("Name of the city (e.g. \"Paris\", \"New York\", \"Tokyo\")")),
	), t.handleWeatherByCity)

	s.AddTool(mcp.NewTool("compare_weather_cities",
		mcp.WithDescription("Compare current weather between two cities"),
		mcp.WithString("city1", mcp.Required(), mcp.Description("Name of the first city")),
		mcp.WithString("city2", mcp.Required(), mcp.Description("Name of the second city")),
	), t.handleCompareCities)

	s.AddTool(mcp.NewTool("get_historical_weather",
		mcp.WithDescription("Get historical weather data for a specific date"),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
		mcp.WithString("date", mcp.Required(),
			mcp.Description("Date in YYYY-MM-DD format (must be in the past)")),
	), t.handleHistoricalWeather)
}

func (t *toolset) handleCurrentWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coord, err := coordinateArgs(req)
	if err != nil {
		return failureResult(err), nil
	}

	record, err := t.svc.Current(ctx, coord)
	if err != nil {
		return failureResult(err), nil
	}
	return mcp.NewToolResultText(renderCurrent("Current Weather:", record)), nil
}

func (t *toolset) handleForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coord, err := coordinateArgs(req)
	if err != nil {
		return failureResult(err), nil
	}
	days := req.GetInt("days", DefaultForecastDays)

	series, err := t.svc.Forecast(ctx, coord, days)
	if err != nil {
		return failureResult(err), nil
	}
	return mcp.NewToolResultText(renderForecast(series)), nil
}

func (t *toolset) handleAlerts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coord, err := coordinateArgs(req)
	if err != nil {
		return failureResult(err), nil
	}

	record, err := t.svc.Current(ctx, coord)
	if err != nil {
		return failureResult(err), nil
	}
	return mcp.NewToolResultText(renderAlerts(weather.EvaluateAlerts(record))), nil
}

func (t *toolset) handleSearchLocations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return failureResult(models.Validationf("query: %v", err)), nil
	}

	places, err := t.svc.SearchPlaces(ctx, query)
	if err != nil {
		return failureResult(err), nil
	}
	return mcp.NewToolResultText(renderPlaces(places)), nil
}

func (t *toolset) handleWeatherByCity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := req.RequireString("city_name")
	if err != nil {
		return failureResult(models.Validationf("city_name: %v", err)), nil
	}

	place, record, err := t.svc.CityWeather(ctx, city)
	if err != nil {
		return failureResult(err), nil
	}
	header := fmt.Sprintf("Weather in %s, %s:", place.Name, place.Country)
	return mcp.NewToolResultText(renderCurrent(header, record)), nil
}

func (t *toolset) handleCompareCities(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city1, err := req.RequireString("city1")
	if err != nil {
		return failureResult(models.Validationf("city1: %v", err)), nil
	}
	city2, err := req.RequireString("city2")
	if err != nil {
		return failureResult(models.Validationf("city2: %v", err)), nil
	}

	result, err := t.svc.Compare(ctx, city1, city2)
	if err != nil {
		return failureResult(err), nil
	}
	return mcp.NewToolResultText(renderComparison(result)), nil
}

func (t *toolset) handleHistoricalWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coord, err := coordinateArgs(req)
	if err != nil {
		return failureResult(err), nil
	}
	date, err := req.RequireString("date")
	if err != nil {
		return failureResult(models.Validationf("date: %v", err)), nil
	}

	summary, err := t.svc.Historical(ctx, coord, date)
	if err != nil {
		return failureResult(err), nil
	}
	return mcp.NewToolResultText(renderHistorical(summary)), nil
}

// coordinateArgs extracts and validates the latitude/longitude pair
// shared by the coordinate-taking tools.
func coordinateArgs(req mcp.CallToolRequest) (models.Coordinate, error) {
	lat, err := req.RequireFloat("latitude")
	if err != nil {
		return models.Coordinate{}, models.Validationf("latitude: %v", err)
	}
	lon, err := req.RequireFloat("longitude")
	if err != nil {
		return models.Coordinate{}, models.Validationf("longitude: %v", err)
	}
	return models.NewCoordinate(lat, lon)
}

// failureResult converts a typed failure into the user-facing error
// text, prefixing a plain-language explanation of the failure kind.
func failureResult(err error) *mcp.CallToolResult {
	msg := models.FailureMessage(err)
	switch models.KindOf(err) {
	case models.KindValidation:
		msg = "Invalid input: " + msg
	case models.KindNotFound:
		// The not_found message already names the query.
	case models.KindTimeout:
		msg = "The weather service did not respond in time: " + msg
	case models.KindNetwork:
		msg = "Could not reach the weather service: " + msg
	case models.KindUpstream:
		msg = "The weather service reported an error: " + msg
	case models.KindParse:
		msg = "The weather service returned an unexpected response: " + msg
	}
	return mcp.NewToolResultError(msg)
}
