package entity

type ToolName string

const (
	ToolGetCurrentWeather ToolName = "get_current_weather"
)

func (t ToolName) String() string {
	return string(t)
}
