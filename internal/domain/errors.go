package domain

import "errors"

var (
	// ErrInvalidArgument marks operation calls that violate a contract,
	// such as adding an entry with a negative price.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotLoggedIn is returned when a gated action is attempted by a
	// logged-out session. Handlers translate it into a sign-in redirect.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrEmptyCart is returned when checkout is attempted with no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrUnknownItem is returned when a catalog lookup misses.
	ErrUnknownItem = errors.New("unknown catalog item")

	// ErrUnknownStore is returned when a store id has no listing.
	ErrUnknownStore = errors.New("unknown store")
)
