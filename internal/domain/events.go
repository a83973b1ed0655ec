package domain

// Event types published by the inventory
const (
	EventTypeInventoryAged = "inventory.aged"
	EventTypeItemStocked   = "item.stocked"
	EventTypeItemRemoved   = "item.removed"
)
