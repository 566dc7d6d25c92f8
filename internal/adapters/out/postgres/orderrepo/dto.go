// Package orderrepo persists order aggregates with GORM. An order is one row in
// ice_cream_orders plus one row per line in order_items.
package orderrepo

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"icecream/internal/core/domain/model/kernel"
	"icecream/internal/core/domain/model/order"
)

// OrderDTO is the ice_cream_orders row. Timestamps are owned by the domain, so GORM's
// automatic stamping is switched off.
type OrderDTO struct {
	ID                    int64           `gorm:"primaryKey;autoIncrement"`
	CustomerName          string          `gorm:"size:255;not null"`
	CustomerEmail         string          `gorm:"size:255;not null;index"`
	CustomerPhone         string          `gorm:"size:50;not null;index"`
	DeliveryAddress       string          `gorm:"size:500;not null"`
	TotalAmount           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status                string          `gorm:"size:32;not null;index"`
	PaymentMethod         *string         `gorm:"size:32"`
	PaymentTransactionID  string          `gorm:"size:255"`
	SpecialInstructions   string          `gorm:"size:1000"`
	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time  `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt             *time.Time `gorm:"autoUpdateTime:false"`
	Items                 []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "ice_cream_orders"
}

// OrderItemDTO is one order line. Position keeps the lines in the order they were
// submitted.
type OrderItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	Position  int             `gorm:"not null"`
	Flavor    string          `gorm:"size:100;not null"`
	Size      string          `gorm:"size:20;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Toppings  string          `gorm:"size:500"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var payment *string
	if o.PaymentMethod().IsSpecified() {
		name := o.PaymentMethod().String()
		payment = &name
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			Position:  i,
			Flavor:    item.Flavor(),
			Size:      item.Size(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
			Toppings:  item.Toppings(),
		})
	}

	return OrderDTO{
		ID:                    int64(o.ID()),
		CustomerName:          o.Customer().Name(),
		CustomerEmail:         o.Customer().Email(),
		CustomerPhone:         o.Customer().Phone(),
		DeliveryAddress:       o.DeliveryAddress(),
		TotalAmount:           o.TotalAmount().Amount(),
		Status:                o.Status().String(),
		PaymentMethod:         payment,
		PaymentTransactionID:  o.PaymentTransactionID(),
		SpecialInstructions:   o.SpecialInstructions(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
		Items:                 items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerEmail, dto.CustomerPhone)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, line := range dto.Items {
		price, priceErr := kernel.NewMoney(line.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(line.Flavor, line.Size, line.Quantity, price, line.Toppings)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, totalErr := kernel.NewMoney(dto.TotalAmount)
	status, statusErr := order.ParseStatus(dto.Status)
	var payment order.PaymentMethod
	var paymentErr error
	if dto.PaymentMethod != nil {
		payment, paymentErr = order.ParsePaymentMethod(*dto.PaymentMethod)
	}
	if err = errors.Join(totalErr, statusErr, paymentErr); err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		order.ID(dto.ID),
		order.Details{
			Customer:             customer,
			DeliveryAddress:      dto.DeliveryAddress,
			Items:                items,
			TotalAmount:          total,
			PaymentMethod:        payment,
			PaymentTransactionID: dto.PaymentTransactionID,
			SpecialInstructions:  dto.SpecialInstructions,
		},
		status,
		dto.EstimatedDeliveryTime,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
