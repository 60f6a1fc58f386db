package app

import "github.com/rs/zerolog"

// Config holds runtime wiring options for building one worker context.
type Config struct {
	Logger zerolog.Logger // optional; defaults to zerolog.Nop()
}
