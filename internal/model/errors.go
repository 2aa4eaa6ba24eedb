package model

import "errors"

// Settlement error taxonomy. Each failure is a typed, caller-recoverable
// result; a failed operation leaves ledger and registry state untouched.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidDuration   = errors.New("invalid swap duration")
	ErrNotFound          = errors.New("swap request not found")
	ErrSameRequest       = errors.New("cannot execute a swap request against itself")
	ErrExpired           = errors.New("swap request expired")
	ErrIncompatible      = errors.New("swap requests are not compatible")
	ErrUnsupportedChain  = errors.New("unsupported chain")
	ErrInvalidAddress    = errors.New("invalid target address")

	// ErrOverflow signals a balance that would exceed the storable amount
	// range (a signed 64-bit column). It is a precondition violation, not
	// a recoverable result.
	ErrOverflow = errors.New("balance amount overflow")
)
