package cache

const (
	KeyProducts = "products:"
	KeyOrders   = "orders:"
)
