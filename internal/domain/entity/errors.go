package entity

import (
	"errors"
	"fmt"
)

var (
	ErrCredentialMissing = errors.New("api credential is not set")
	ErrNoChoices         = errors.New("no choices in response")
)

// NetworkError means the request never produced an HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RemoteServiceError is a non-2xx answer from the completion service.
type RemoteServiceError struct {
	Status int
	Body   string
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("remote service returned status %d: %s", e.Status, e.Body)
}

type ArgumentDecodeError struct {
	Tool      ToolName
	Arguments string
	Err       error
}

func (e *ArgumentDecodeError) Error() string {
	return fmt.Sprintf("decode arguments for %s: %v", e.Tool, e.Err)
}

func (e *ArgumentDecodeError) Unwrap() error {
	return e.Err
}

type UnknownToolError struct {
	Name ToolName
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", string(e.Name))
}
