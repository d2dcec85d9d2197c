// SPDX-License-Identifier: MIT
// Package: decodoku/game
//
// errors.go - sentinel errors for the round loop.

package game

import "errors"

var (
	// ErrNoRound indicates a guess or hint before any round was started.
	ErrNoRound = errors.New("game: no round in progress")

	// ErrRoundOver indicates a second guess on a finished round.
	ErrRoundOver = errors.New("game: round already finished")

	// ErrTooManyErrors indicates more errors per round than the spec has units.
	ErrTooManyErrors = errors.New("game: more errors than units")

	// ErrEmptyGuess indicates a guess naming no unit.
	ErrEmptyGuess = errors.New("game: empty guess")

	// ErrDuplicateGuess indicates a guess naming a unit twice.
	ErrDuplicateGuess = errors.New("game: unit guessed twice")

	// ErrNeedRandSource indicates a game built without an RNG.
	ErrNeedRandSource = errors.New("game: rng is required")
)
