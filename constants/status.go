package constants

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// Property status
const (
	PropertyStatusDraft    = 0
	PropertyStatusActive   = 1
	PropertyStatusInactive = 2
)

// Room type status
const (
	RoomTypeStatusDraft    = 0
	RoomTypeStatusActive   = 1
	RoomTypeStatusInactive = 2
)

// Room number status
const (
	RoomNumberStatusMaintenance = 0
	RoomNumberStatusAvailable   = 1
)

// Price rule status
const (
	PriceRuleStatusInactive = 0
	PriceRuleStatusActive   = 1
)
