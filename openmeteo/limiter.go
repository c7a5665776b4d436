package openmeteo

import (
	"context"
	"fmt"

	"weather-mcp/models"

	"golang.org/x/time/rate"
)

// ThrottledClient wraps an API with client-side rate limiting so a
// burst of tool calls stays inside the upstream free-tier allowance.
// Waiting honors the request context, so a throttled call still
// respects the fixed timeout.
type ThrottledClient struct {
	api     API
	limiter *rate.Limiter
}

// NewThrottledClient creates a rate limited wrapper around api.
// rps is the sustained requests per second (fractional values allowed),
// burst the maximum burst size.
func NewThrottledClient(api API, rps float64, burst int) *ThrottledClient {
	return &ThrottledClient{
		api:     api,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (t *ThrottledClient) wait(ctx context.Context) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return models.Timeout(fmt.Sprintf("rate limit wait canceled: %v", err), err)
	}
	return nil
}

// Current fetches current conditions, respecting the rate limit.
func (t *ThrottledClient) Current(ctx context.Context, coord models.Coordinate) (*ForecastPayload, error) {
	if err := t.wait(ctx); err != nil {
		return nil, err
	}
	return t.api.Current(ctx, coord)
}

// DailyForecast fetches a forecast, respecting the rate limit.
func (t *ThrottledClient) DailyForecast(ctx context.Context, coord models.Coordinate, days int) (*ForecastPayload, error) {
	if err := t.wait(ctx); err != nil {
		return nil, err
	}
	return t.api.DailyForecast(ctx, coord, days)
}

// Historical fetches archive data, respecting the rate limit.
func (t *ThrottledClient) Historical(ctx context.Context, coord models.Coordinate, date string) (*ForecastPayload, error) {
	if err := t.wait(ctx); err != nil {
		return nil, err
	}
	return t.api.Historical(ctx, coord, date)
}

// Search looks up places, respecting the rate limit.
func (t *ThrottledClient) Search(ctx context.Context, name string, count int) (*SearchPayload, error) {
	if err := t.wait(ctx); err != nil {
		return nil, err
	}
	return t.api.Search(ctx, name, count)
}

var _ API = (*ThrottledClient)(nil)
