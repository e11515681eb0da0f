package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"weather-agent/internal/application/port/output"
	"weather-agent/internal/domain/entity"

	"github.com/fatih/color"
)

var _ output.ConsolePort = (*Console)(nil)

const banner = "######"

// Console prints tool diagnostics and the final response to stdout.
type Console struct {
	out    io.Writer
	yellow *color.Color
	green  *color.Color
	dim    *color.Color
}

func NewConsole() *Console {
	return NewConsoleWithWriter(os.Stdout, !color.NoColor)
}

func NewConsoleWithWriter(out io.Writer, colored bool) *Console {
	c := &Console{
		out:    out,
		yellow: color.New(color.FgYellow, color.Bold),
		green:  color.New(color.FgGreen),
		dim:    color.New(color.Faint),
	}
	if !colored {
		c.yellow.DisableColor()
		c.green.DisableColor()
		c.dim.DisableColor()
	}
	return c
}

func (c *Console) ShowToolStart(ctx context.Context, toolName, arguments string) {
	c.dim.Fprintln(c.out, banner)
	c.yellow.Fprintf(c.out, "DEBUG:  %s function being called with %s\n", toolName, formatToolArguments(toolName, arguments))
	c.dim.Fprintln(c.out, banner)
}

func (c *Console) ShowToolResult(ctx context.Context, toolName, result string) {
	c.green.Fprintf(c.out, "✓ %s -> %s\n", toolName, truncate(result, 300))
}

// ShowResponse prints the provider's response object as indented JSON.
func (c *Console) ShowResponse(ctx context.Context, response any) error {
	data, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	_, err = fmt.Fprintln(c.out, string(data))
	return err
}

func formatToolArguments(toolName, arguments string) string {
	var args map[string]interface{}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "arguments: " + truncate(arguments, 200)
	}

	switch entity.ToolName(toolName) {
	case entity.ToolGetCurrentWeather:
		location, _ := args["location"].(string)
		unit, ok := args["unit"].(string)
		if !ok {
			unit = "None"
		}
		return fmt.Sprintf("location:  %s unit:  %s", location, unit)
	}

	return "arguments: " + truncate(arguments, 200)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
