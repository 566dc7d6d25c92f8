package order

import (
	"errors"
	"strings"

	"icecream/internal/core/domain/model/kernel"
	"icecream/internal/pkg/errs"
	"icecream/internal/pkg/guard"
)

const (
	MinItemQuantity = 1
	MaxItemQuantity = 50
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a flavor in a size, a quantity, a unit price and
// optional toppings. Items are values; they never change once the order exists.
type Item struct { //nolint:recvcheck //using for validation
	flavor    string
	size      string
	quantity  int
	unitPrice kernel.Money
	toppings  string
	guard     guard.ConstructorGuard
}

// NewItem validates and builds an order line.
//
// Rules:
//   - flavor and size are non-blank, at most MaxFlavorLength and MaxSizeLength characters
//   - quantity is within [MinItemQuantity, MaxItemQuantity]
//   - unitPrice is a constructed, strictly positive amount
//   - toppings is free text, may be empty, at most MaxToppingsLength characters
func NewItem(flavor, size string, quantity int, unitPrice kernel.Money, toppings string) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setFlavor(flavor),
		item.setSize(size),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setToppings(toppings),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Flavor() string {
	return i.flavor
}

func (i Item) Size() string {
	return i.size
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i Item) Toppings() string {
	return i.toppings
}

// Subtotal is unit price times quantity, computed exactly. A zero-value Item has a
// zero subtotal.
func (i Item) Subtotal() kernel.Money {
	if i.Validate() != nil {
		return kernel.ZeroMoney()
	}
	return i.unitPrice.Mul(i.quantity)
}

func (i *Item) setFlavor(flavor string) error {
	if strings.TrimSpace(flavor) == "" {
		return errs.NewValueIsRequiredError("flavor")
	}
	if err := checkLength("flavor", flavor, MaxFlavorLength); err != nil {
		return err
	}
	i.flavor = flavor
	return nil
}

func (i *Item) setSize(size string) error {
	if strings.TrimSpace(size) == "" {
		return errs.NewValueIsRequiredError("size")
	}
	if err := checkLength("size", size, MaxSizeLength); err != nil {
		return err
	}
	i.size = size
	return nil
}

func (i *Item) setToppings(toppings string) error {
	if err := checkLength("toppings", toppings, MaxToppingsLength); err != nil {
		return err
	}
	i.toppings = toppings
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < MinItemQuantity || quantity > MaxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinItemQuantity, MaxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unitPrice", err)
	}
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", errors.New("must be greater than 0"))
	}
	i.unitPrice = unitPrice
	return nil
}

// TotalQuantity sums the quantities of items.
func TotalQuantity(items []Item) int {
	total := 0
	for _, item := range items {
		total += item.quantity
	}
	return total
}
