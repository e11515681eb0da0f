package output

import "context"

type ConsolePort interface {
	ShowToolStart(ctx context.Context, toolName, arguments string)
	ShowToolResult(ctx context.Context, toolName, result string)
	ShowResponse(ctx context.Context, response any) error
}
