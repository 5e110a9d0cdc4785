// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the orchestration lifecycle that feeds
// manifest passes to the round driver, decoupled from any specific
// entrypoint like a CLI.
package app
