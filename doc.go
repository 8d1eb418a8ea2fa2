/*
Package sdk provides the core entry point and runtime configuration for
building WebAssembly guest functions that talk to a wasmbridge host.

The package exposes New to register a waPC handler and a RuntimeConfig that
is shared by capability clients (e.g., console). DefaultNamespace is used
when a namespace is not explicitly provided.
*/
package sdk
