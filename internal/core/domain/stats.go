package domain

// ShopStats is the admin dashboard's shop approval breakdown.
type ShopStats struct {
	Pending  int
	Approved int
	Rejected int
}
