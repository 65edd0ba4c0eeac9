// Package app contains the core application logic. It wires the
// specification loader, the feature registry, the linker and the engine
// together behind a small App type, decoupled from any specific entrypoint
// like a CLI or server.
package app
