package commands

import (
	"context"
	"errors"
	"time"

	"icecream/internal/core/domain/model/kernel"
	"icecream/internal/core/domain/model/order"
	"icecream/internal/pkg/clock"
)

// SeedSampleOrdersCommandHandler inserts four sample orders when, and only when,
// the store is empty. It reports how many orders were created.
type SeedSampleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

func NewSeedSampleOrdersCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) SeedSampleOrdersCommandHandler {
	return SeedSampleOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (h *SeedSampleOrdersCommandHandler) Handle(ctx context.Context, cmd SeedSampleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	samples, err := sampleOrders(h.clock.Now())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	count, err := orderRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	if err = orderRepo.AddAll(ctx, samples); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(samples), nil
}

type sampleItem struct {
	flavor, size string
	quantity     int
	unitPrice    string
	toppings     string
}

type sampleOrder struct {
	name, email, phone, address string
	items                       []sampleItem
	total                       string
	payment                     order.PaymentMethod
	transactionID               string
	instructions                string
	status                      order.Status
	age                         time.Duration
}

func sampleOrders(now time.Time) ([]*order.Order, error) {
	samples := []sampleOrder{
		{
			name: "Alice Johnson", email: "alice.johnson@email.com", phone: "+1-555-101-2345",
			address: "456 Oak Avenue, Sweet Town, ST 67890",
			items: []sampleItem{
				{"Vanilla", "Large", 2, "5.99", "Chocolate chips"},
				{"Chocolate", "Medium", 1, "4.99", "Nuts"},
			},
			total: "16.97", payment: order.CreditCard, transactionID: "txn_abc123def456",
			instructions: "Please leave at front door", status: order.Delivered, age: 2 * time.Hour,
		},
		{
			name: "Bob Smith", email: "bob.smith@email.com", phone: "+1-555-202-3456",
			address: "789 Pine Street, Flavor City, FC 13579",
			items: []sampleItem{
				{"Strawberry", "Small", 3, "3.99", "Sprinkles"},
			},
			total: "11.97", payment: order.PayPal, transactionID: "pp_xyz789uvw012",
			instructions: "Extra napkins please", status: order.Preparing, age: 30 * time.Minute,
		},
		{
			name: "Carol Williams", email: "carol.williams@email.com", phone: "+1-555-303-4567",
			address: "321 Elm Drive, Sundae City, SC 24680",
			items: []sampleItem{
				{"Mint Chocolate Chip", "Large", 1, "6.49", ""},
				{"Rocky Road", "Medium", 2, "5.49", "Extra marshmallows"},
			},
			total: "17.47", payment: order.Stripe,
			instructions: "Birthday surprise - please add candles", status: order.Pending, age: 10 * time.Minute,
		},
		{
			name: "David Brown", email: "david.brown@email.com", phone: "+1-555-404-5678",
			address: "654 Maple Lane, Cream Valley, CV 35791",
			items: []sampleItem{
				{"Cookies and Cream", "Large", 2, "5.99", "Oreo pieces"},
			},
			total: "11.98", payment: order.ApplePay, transactionID: "ap_mno345pqr678",
			instructions: "Call when arriving", status: order.OutForDelivery, age: 45 * time.Minute,
		},
	}

	orders := make([]*order.Order, 0, len(samples))
	for _, s := range samples {
		o, err := s.build(now)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (s sampleOrder) build(now time.Time) (*order.Order, error) {
	customer, err := order.NewCustomer(s.name, s.email, s.phone)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(s.items))
	for _, si := range s.items {
		price, priceErr := kernel.MoneyFromString(si.unitPrice)
		item, itemErr := order.NewItem(si.flavor, si.size, si.quantity, price, si.toppings)
		if err = errors.Join(priceErr, itemErr); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	total, err := kernel.MoneyFromString(s.total)
	if err != nil {
		return nil, err
	}

	return order.NewHistoricalOrder(order.Details{
		Customer:             customer,
		DeliveryAddress:      s.address,
		Items:                items,
		TotalAmount:          total,
		PaymentMethod:        s.payment,
		PaymentTransactionID: s.transactionID,
		SpecialInstructions:  s.instructions,
	}, s.status, now.Add(-s.age))
}
