// Package guard provides ConstructorGuard, a marker embedded in value objects,
// aggregates and commands to tell a constructor-built value from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard when the
// caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was built through the owner's constructor.
//
// Embed it as an unexported field and set it from the constructor only:
//
//	type Item struct {
//	    flavor string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewItem(flavor string) (Item, error) {
//	    if flavor == "" {
//	        return Item{}, errs.NewValueIsRequiredError("flavor")
//	    }
//	    return Item{flavor: flavor, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (i Item) Validate() error {
//	    return i.guard.Validate(ErrItemIsNotConstructed)
//	}
//
// The guard is a plain value and is safe to copy and share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
