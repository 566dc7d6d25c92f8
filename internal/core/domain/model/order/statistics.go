package order

// Statistics is a point-in-time count of orders. Each count is taken independently,
// so the status counts need not add up to TotalOrders (Preparing, Ready,
// OutForDelivery and Refunded are not broken out).
type Statistics struct {
	TotalOrders     int64 `json:"totalOrders"`
	PendingOrders   int64 `json:"pendingOrders"`
	ConfirmedOrders int64 `json:"confirmedOrders"`
	DeliveredOrders int64 `json:"deliveredOrders"`
	CancelledOrders int64 `json:"cancelledOrders"`
}
