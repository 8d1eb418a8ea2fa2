/*
Package hostmock provides a pretend host for waPC calls.

It is designed for SDK development and tests that need to validate exactly
what a component sends to the wasmbridge host without a real host running.
Every call is recorded in order, so tests can assert how many deliveries
happened and what each one carried.

Why use hostmock?

  - Validate routing: ensure calls use the expected namespace, capability, and function when you set them.
  - Inspect deliveries: read back Calls, or plug in a PayloadValidator for inline assertions.
  - Script responses: return custom bytes or simulate failures.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "wasmbridge",
	  ExpectedCapability: "console",
	  ExpectedFunction:   "log",
	})

	// Inject into a component under test, then assert on m.Calls.

Behavior

  - Every call is appended to Calls before any validation runs.
  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise, HostCall enforces the Expected fields that were set and runs
    PayloadValidator when provided. If everything is in order, Response (when
    set) provides the return bytes; otherwise it returns nil.
  - Leave Expected fields blank for a wildcard; only set values are enforced.
*/
package hostmock
