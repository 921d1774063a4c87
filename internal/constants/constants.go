package constants

// Order status constants.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusCancelled = "CANCELLED"
)

// User role constants.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

// User status constants.
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Queue and task name constants.
const (
	QueueDefault = "default"

	TaskOrderPaidEmail = "order:paid_email"
)

// AdminEmailDomain marks registrations that receive the ADMIN role.
const AdminEmailDomain = "@admin.com"
