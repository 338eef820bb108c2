package server

import "errors"

var (
	// ErrMissingAddress is returned when server address is not provided.
	ErrMissingAddress = errors.New("server address is required")

	// ErrServerAlreadyRunning is returned by Start on a running server.
	ErrServerAlreadyRunning = errors.New("server is already running")

	// ErrAddrInUse is returned when the listen address is held by another process.
	ErrAddrInUse = errors.New("address already in use")

	// ErrBindFailed is returned for bind failures other than a busy address.
	ErrBindFailed = errors.New("failed to bind listen address")
)
