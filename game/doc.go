// Package game runs the "decodoku" puzzle: hidden errors (one by default,
// WithErrors for more) are placed on a register, the player sees the
// syndrome and names the faulty units.
//
// Randomness comes only from the injected *rand.Rand (WithRand / WithSeed),
// so a seed replays the same rounds. Round outcomes go to a Recorder
// (internal/telemetry) and are logged through log/slog.
package game
