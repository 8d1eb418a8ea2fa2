package console

import (
	"fmt"

	sdk "github.com/wasmbridge-project/sdk"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName = "console"
	fnLog          = "log"
)

// HostCall defines the waPC host function signature used for console writes.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Client writes lines of text to the host console.
type Client interface {
	// Log delivers message to the host console exactly once, byte for byte
	// unmodified. Empty messages are delivered, not skipped.
	Log(message string)

	// LogValue renders v into its diagnostic string form and delivers the
	// result the same way Log does. Rendering uses fmt's %+v verb: scalars
	// print as their literal form, slices as bracketed lists, structs with
	// field names.
	LogValue(v any)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig sdk.RuntimeConfig

	// HostCall overrides the waPC host function used for console writes.
	HostCall HostCall
}

// client implements Client using the configured host call entrypoint.
type client struct {
	runtime  sdk.RuntimeConfig
	hostCall HostCall
}

// Ensure client satisfies the Client interface at compile time.
var _ Client = (*client)(nil)

// New creates a Client that writes through the host console capability.
func New(cfg Config) (Client, error) {
	runtimeCfg := cfg.SDKConfig
	if runtimeCfg.Namespace == "" {
		runtimeCfg.Namespace = sdk.DefaultNamespace
	}

	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &client{
		runtime:  runtimeCfg,
		hostCall: hostCall,
	}, nil
}

// Log forwards the message to the host console.
func (c *client) Log(message string) {
	// Best effort; the console contract defines no error path.
	_, _ = c.hostCall(c.runtime.Namespace, capabilityName, fnLog, []byte(message))
}

// LogValue renders the value, then forwards it along the same path as Log.
func (c *client) LogValue(v any) {
	c.Log(fmt.Sprintf("%+v", v))
}
