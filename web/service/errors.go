package service

import "errors"

// Service-level failures handlers translate into HTTP statuses. The
// messages double as the client-facing {error} bodies.
var (
	ErrDuplicateEmail       = errors.New("User already exists or invalid data")
	ErrInvalidCredentials   = errors.New("Invalid credentials")
	ErrInvalidToken         = errors.New("Invalid token")
	ErrInvalidAction        = errors.New("Invalid action")
	ErrAddressAlreadyLinked = errors.New("Wallet linked to another account")
	ErrNotConnected         = errors.New("No wallet connected")
)
