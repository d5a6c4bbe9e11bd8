package session_mocks

//go:generate mockgen -source=../interfaces.go -destination=session_mocks.go -package=session_mocks

// This file contains the go:generate directive to generate mocks for session interfaces.
// To regenerate the mocks, run:
//   go generate ./internal/session/session_mocks
