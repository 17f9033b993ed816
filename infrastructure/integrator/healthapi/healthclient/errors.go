package healthclient

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// NetworkError indica que a API remota não pôde ser alcançada
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("health api unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError indica que a API respondeu com um status de erro
type ServerError struct {
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("health api returned status %d", e.Status)
}

// TimeoutError indica que a requisição excedeu o timeout configurado
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("health api request timed out: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// classifyTransportError separa timeouts de falhas de rede genéricas
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Err: err}
	}

	return &NetworkError{Err: err}
}
