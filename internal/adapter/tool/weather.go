package tool

import (
	"context"
	"encoding/json"
	"strings"

	"weather-agent/internal/application/port/output"
	"weather-agent/internal/domain/entity"
)

var _ output.ToolPort = (*WeatherTool)(nil)

type cannedCity struct {
	match       string
	name        string
	temperature string
}

// Checked in order; the first substring hit wins.
var cannedCities = []cannedCity{
	{match: "tokyo", name: "Tokyo", temperature: "10"},
	{match: "san francisco", name: "San Francisco", temperature: "72"},
	{match: "paris", name: "Paris", temperature: "22"},
}

// GetCurrentWeather returns a canned report. The temperature is the same number
// whatever unit is requested; no conversion happens.
func GetCurrentWeather(location string, unit entity.TemperatureUnit) entity.WeatherReport {
	if unit == "" {
		unit = entity.UnitFahrenheit
	}

	lower := strings.ToLower(location)
	for _, c := range cannedCities {
		if strings.Contains(lower, c.match) {
			return entity.WeatherReport{
				Location:    c.name,
				Temperature: c.temperature,
				Unit:        unit,
			}
		}
	}

	return entity.WeatherReport{
		Location:    location,
		Temperature: "unknown",
	}
}

type WeatherTool struct {
	logger output.LoggerPort
}

func NewWeatherTool(logger output.LoggerPort) *WeatherTool {
	return &WeatherTool{logger: logger}
}

func (t *WeatherTool) Name() entity.ToolName { return entity.ToolGetCurrentWeather }
func (t *WeatherTool) Description() string {
	return "Get the current weather in a given location"
}
func (t *WeatherTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"location": map[string]interface{}{
				"type":        "string",
				"description": "The city and state, e.g. San Francisco, CA",
			},
			"unit": map[string]interface{}{
				"type": "string",
				"enum": []string{string(entity.UnitCelsius), string(entity.UnitFahrenheit)},
			},
		},
		"required": []string{"location"},
	}
}

func (t *WeatherTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Location string                 `json:"location"`
		Unit     entity.TemperatureUnit `json:"unit"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", &entity.ArgumentDecodeError{Tool: t.Name(), Arguments: args, Err: err}
	}

	report := GetCurrentWeather(input.Location, input.Unit)
	if t.logger != nil {
		t.logger.Debug("Weather lookup",
			"location", input.Location,
			"unit", string(input.Unit),
			"temperature", report.Temperature)
	}

	data, err := json.Marshal(report)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
