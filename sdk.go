package sdk

import (
	"errors"

	wapc "github.com/wapc/wapc-guest-tinygo"
)

// DefaultNamespace is the namespace used for host interactions when the
// caller does not provide one.
const DefaultNamespace = "wasmbridge"

var (
	// ErrHandlerNil is returned when no guest handler is provided.
	ErrHandlerNil = errors.New("function handler cannot be nil")
)

// Config provides configuration options for SDK initialization.
type Config struct {
	// Namespace scopes all host interactions made by capability clients.
	// If empty, DefaultNamespace is used.
	Namespace string

	// Handler is registered as the guest's main WebAssembly entry point.
	Handler func([]byte) ([]byte, error)
}

// RuntimeConfig is the configuration snapshot handed to capability clients.
type RuntimeConfig struct {
	// Namespace is the function namespace used to scope host interactions.
	Namespace string
}

// SDK is an initialized guest runtime with a registered waPC handler.
type SDK struct {
	runtime RuntimeConfig
}

// New applies namespace defaults and registers the handler with waPC.
func New(config Config) (*SDK, error) {
	if config.Handler == nil {
		return nil, ErrHandlerNil
	}

	cfg := RuntimeConfig{Namespace: config.Namespace}
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}

	wapc.RegisterFunction("handler", config.Handler)

	return &SDK{runtime: cfg}, nil
}

// Config returns the current runtime configuration snapshot.
func (s *SDK) Config() RuntimeConfig { return s.runtime }
