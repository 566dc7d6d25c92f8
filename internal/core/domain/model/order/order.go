package order

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"icecream/internal/core/domain/model/kernel"
	"icecream/internal/pkg/errs"
)

// Text limits, in characters. They match the column widths of the PostgreSQL store
// so that a value the domain accepts is always storable.
const (
	MaxCustomerNameLength         = 255
	MaxCustomerEmailLength        = 255
	MaxCustomerPhoneLength        = 50
	MaxDeliveryAddressLength      = 500
	MaxFlavorLength               = 100
	MaxSizeLength                 = 20
	MaxToppingsLength             = 500
	MaxPaymentTransactionIDLength = 255
	MaxSpecialInstructionsLength  = 1000
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is the cause attached when an order is built without lines.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")

	// ErrIDAlreadyAssigned is returned when the store tries to number an order twice.
	ErrIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// ID is the store-assigned identifier of an order. Zero means "not yet persisted".
type ID int64

// ParseID parses a decimal identifier such as "42".
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	id := ID(n)
	if err = id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate rejects zero and negative identifiers.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Details is the customer-supplied part of an order. It is validated as a whole by
// NewOrder and RestoreOrder.
type Details struct {
	Customer             Customer
	DeliveryAddress      string
	Items                []Item
	TotalAmount          kernel.Money
	PaymentMethod        PaymentMethod
	PaymentTransactionID string
	SpecialInstructions  string
}

// Order is the aggregate root of the shop: who ordered what, where it goes, how much it
// costs and where it stands in the lifecycle.
//
// Order follows these invariants:
//   - It holds at least one item
//   - Customer, address, total amount and optional fields satisfy their format rules
//   - createdAt is set once at construction
//   - updatedAt is nil until the first status change
//   - The identifier is assigned exactly once, by the store
//
// The total amount is taken as supplied; it is not recomputed from the items.
type Order struct {
	id                    ID
	details               Details
	status                Status
	estimatedDeliveryTime *time.Time
	createdAt             time.Time
	updatedAt             *time.Time

	events []Event

	isConstructed bool
}

// NewOrder creates a Pending order stamped with createdAt and the given delivery
// estimate. The identifier stays zero until the store calls AssignID.
//
// Example:
//
//	customer, _ := order.NewCustomer("Alice Johnson", "alice@example.com", "+1-555-0101")
//	price, _ := kernel.MoneyFromString("5.99")
//	item, _ := order.NewItem("Vanilla", "Medium", 2, price, "Sprinkles")
//	total, _ := kernel.MoneyFromString("11.98")
//	o, err := order.NewOrder(order.Details{
//	    Customer:        customer,
//	    DeliveryAddress: "123 Main St",
//	    Items:           []order.Item{item},
//	    TotalAmount:     total,
//	}, now, now.Add(45*time.Minute))
func NewOrder(details Details, createdAt time.Time, estimatedDeliveryTime time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setDetails(details),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.estimatedDeliveryTime = &estimatedDeliveryTime
	return o, nil
}

// NewHistoricalOrder builds an unpersisted order that has already progressed to status,
// such as sample data or an import. It has no delivery estimate and updatedAt stays nil.
func NewHistoricalOrder(details Details, status Status, createdAt time.Time) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setDetails(details),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order. It applies the same checks as NewOrder
// plus identifier and status validation, and raises no events.
func RestoreOrder(
	id ID,
	details Details,
	status Status,
	estimatedDeliveryTime *time.Time,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Order, error) {
	o := &Order{
		estimatedDeliveryTime: estimatedDeliveryTime,
		updatedAt:             updatedAt,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or zero before persistence.
func (o *Order) ID() ID {
	return o.id
}

// HasID reports whether the store has numbered the order.
func (o *Order) HasID() bool {
	return o.id != 0
}

func (o *Order) Customer() Customer {
	return o.details.Customer
}

func (o *Order) DeliveryAddress() string {
	return o.details.DeliveryAddress
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.details.Items)
}

func (o *Order) TotalAmount() kernel.Money {
	return o.details.TotalAmount
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.details.PaymentMethod
}

func (o *Order) PaymentTransactionID() string {
	return o.details.PaymentTransactionID
}

func (o *Order) SpecialInstructions() string {
	return o.details.SpecialInstructions
}

// Details returns a copy of the customer-supplied part of the order.
func (o *Order) Details() Details {
	d := o.details
	d.Items = slices.Clone(d.Items)
	return d
}

func (o *Order) Status() Status {
	return o.status
}

// EstimatedDeliveryTime returns nil when no estimate was recorded.
func (o *Order) EstimatedDeliveryTime() *time.Time {
	return o.estimatedDeliveryTime
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns nil until the first status change.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// AssignID records the identifier handed out by the store on first insert and raises
// EventOrderCreated.
func (o *Order) AssignID(id ID) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if err := o.setID(id); err != nil {
		return err
	}

	o.raise(newEvent(EventOrderCreated, o, Unknown, o.createdAt))
	return nil
}

// ChangeStatus moves the order to status and stamps updatedAt with at. Any valid
// status may follow any other, including itself. Raises EventOrderStatusChanged.
func (o *Order) ChangeStatus(status Status, at time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	previous := o.status
	o.status = status
	o.updatedAt = &at

	o.raise(newEvent(EventOrderStatusChanged, o, previous, at))
	return nil
}

// Cancel is ChangeStatus(Cancelled, at).
func (o *Order) Cancel(at time.Time) error {
	return o.ChangeStatus(Cancelled, at)
}

// MarkDelivered is ChangeStatus(Delivered, at).
func (o *Order) MarkDelivered(at time.Time) error {
	return o.ChangeStatus(Delivered, at)
}

// DomainEvents returns the events raised since the last ClearDomainEvents.
func (o *Order) DomainEvents() []Event {
	return slices.Clone(o.events)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(event Event) {
	o.events = append(o.events, event)
}

func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setDetails(d Details) error {
	var problems []error

	if err := d.Customer.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("customer", err))
	}

	switch {
	case strings.TrimSpace(d.DeliveryAddress) == "":
		problems = append(problems, errs.NewValueIsRequiredError("deliveryAddress"))
	default:
		problems = append(problems, checkLength("deliveryAddress", d.DeliveryAddress, MaxDeliveryAddressLength))
	}

	if len(d.Items) == 0 {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("items", ErrOrderHasNoItems))
	}
	for i, item := range d.Items {
		if err := item.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d]", i), err))
		}
	}

	if err := d.TotalAmount.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("totalAmount", err))
	} else if !d.TotalAmount.IsPositive() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			errors.New("must be greater than 0"),
		))
	}

	if err := d.PaymentMethod.Validate(); err != nil {
		problems = append(problems, err)
	}

	problems = append(problems,
		checkLength("paymentTransactionId", d.PaymentTransactionID, MaxPaymentTransactionIDLength),
		checkLength("specialInstructions", d.SpecialInstructions, MaxSpecialInstructionsLength),
	)

	if err := errors.Join(problems...); err != nil {
		return err
	}

	d.Items = slices.Clone(d.Items)
	o.details = d
	return nil
}

// checkLength rejects values longer than limit characters; nil otherwise.
func checkLength(paramName, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("longer than %d characters", limit))
	}
	return nil
}
