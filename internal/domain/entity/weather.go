package entity

type TemperatureUnit string

const (
	UnitCelsius    TemperatureUnit = "celsius"
	UnitFahrenheit TemperatureUnit = "fahrenheit"
)

// WeatherReport is the payload returned to the model by get_current_weather.
// Unit is empty only when the location was not recognised.
type WeatherReport struct {
	Location    string          `json:"location"`
	Temperature string          `json:"temperature"`
	Unit        TemperatureUnit `json:"unit,omitempty"`
}
