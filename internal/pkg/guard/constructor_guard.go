// Package guard provides ConstructorGuard, a marker that lets value objects,
// commands and queries detect whether they were built by their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs that must only be created through a
// constructor. A zero-value guard fails validation.
//
// Example:
//
//	type CloseWorkdayCommand struct {
//	    transporterID kernel.UUID
//	    guard         guard.ConstructorGuard
//	}
//
//	func (c CloseWorkdayCommand) Validate() error {
//	    return c.guard.Validate(ErrCloseWorkdayCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
