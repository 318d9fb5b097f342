package domain

import "errors"

// Recoverable business errors. Every operation that returns one of these
// leaves the entity exactly as it was.
var (
	// ErrInsufficientWalletValue rejects a wallet creation whose initial
	// consumption exceeds the offered value.
	ErrInsufficientWalletValue = errors.New("initial deduction exceeds wallet value")

	// ErrInsufficientWalletBalance rejects a redemption larger than the
	// wallet's current balance.
	ErrInsufficientWalletBalance = errors.New("insufficient wallet balance")

	// ErrNoSittingsRemaining rejects a sitting redemption on an exhausted bundle.
	ErrNoSittingsRemaining = errors.New("no sittings remaining")

	// ErrNoActiveSubscription is returned when an invoice tries to settle
	// against a wallet the customer does not hold.
	ErrNoActiveSubscription = errors.New("no active package subscription for customer")

	// ErrActiveWalletExists enforces one active value wallet per customer per salon.
	ErrActiveWalletExists = errors.New("customer already holds an active value wallet")

	// ErrInvalidAttendanceMark covers unknown statuses and malformed clock pairs.
	ErrInvalidAttendanceMark = errors.New("invalid attendance mark")
)
