/*
Package console offers a client for writing lines of text from wasmbridge
WebAssembly functions to the host console.

The package exposes a small interface with two entry points: Log forwards a
string verbatim, and LogValue renders an arbitrary value into its diagnostic
string form before forwarding it along the same path. A client instance
handles the host interaction behind the scenes, so guest code can focus on
what to write.
*/
package console
