package http

import (
	"errors"
	"fmt"

	"icecream/internal/core/domain/model/kernel"
	"icecream/internal/core/domain/model/order"
	"icecream/internal/generated/servers"
	"icecream/internal/pkg/errs"
)

// toDetails turns the request body into domain values, collecting every field error.
func toDetails(req servers.OrderRequest) (order.Details, error) {
	customer, customerErr := order.NewCustomer(req.CustomerName, req.CustomerEmail, req.CustomerPhone)

	items := make([]order.Item, 0, len(req.Items))
	itemErrs := make([]error, 0)
	for i, line := range req.Items {
		item, err := toItem(line)
		if err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		items = append(items, item)
	}

	total, totalErr := kernel.NewMoney(req.TotalAmount.Decimal)
	if totalErr != nil {
		totalErr = errs.NewValueIsInvalidErrorWithCause("totalAmount", totalErr)
	}

	var method string
	if req.PaymentMethod != nil {
		method = string(*req.PaymentMethod)
	}
	paymentMethod, methodErr := order.ParsePaymentMethod(method)

	if err := errors.Join(customerErr, errors.Join(itemErrs...), totalErr, methodErr); err != nil {
		return order.Details{}, err
	}

	return order.Details{
		Customer:             customer,
		DeliveryAddress:      req.DeliveryAddress,
		Items:                items,
		TotalAmount:          total,
		PaymentMethod:        paymentMethod,
		PaymentTransactionID: deref(req.PaymentTransactionId),
		SpecialInstructions:  deref(req.SpecialInstructions),
	}, nil
}

func toItem(line servers.OrderItemRequest) (order.Item, error) {
	price, err := kernel.NewMoney(line.UnitPrice.Decimal)
	if err != nil {
		return order.Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", err)
	}
	return order.NewItem(line.Flavor, line.Size, line.Quantity, price, deref(line.Toppings))
}

func toOrder(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = servers.OrderItem{
			Flavor:    item.Flavor(),
			Size:      item.Size(),
			Quantity:  item.Quantity(),
			UnitPrice: servers.NewAmount(item.UnitPrice().Amount()),
			Toppings:  optional(item.Toppings()),
			Subtotal:  servers.NewAmount(item.Subtotal().Amount()),
		}
	}

	var method *servers.PaymentMethod
	if o.PaymentMethod().IsSpecified() {
		m := servers.PaymentMethod(o.PaymentMethod().String())
		method = &m
	}

	customer := o.Customer()
	return servers.Order{
		Id:                    int64(o.ID()),
		CustomerName:          customer.Name(),
		CustomerEmail:         customer.Email(),
		CustomerPhone:         customer.Phone(),
		DeliveryAddress:       o.DeliveryAddress(),
		Items:                 items,
		TotalAmount:           servers.NewAmount(o.TotalAmount().Amount()),
		Status:                servers.OrderStatus(o.Status().String()),
		StatusDescription:     optional(o.Status().Description()),
		PaymentMethod:         method,
		PaymentTransactionId:  optional(o.PaymentTransactionID()),
		SpecialInstructions:   optional(o.SpecialInstructions()),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
}

func toOrders(orders []*order.Order) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return response
}

func toStatistics(stats order.Statistics) servers.Statistics {
	return servers.Statistics{
		TotalOrders:     stats.TotalOrders,
		PendingOrders:   stats.PendingOrders,
		ConfirmedOrders: stats.ConfirmedOrders,
		DeliveredOrders: stats.DeliveredOrders,
		CancelledOrders: stats.CancelledOrders,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
