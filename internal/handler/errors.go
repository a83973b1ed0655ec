package handler

// HTTP error messages returned to API clients
const (
	// Request handling
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"

	// Stock
	ErrMsgMissingItemID    = "Missing item ID"
	ErrMsgInvalidItemID    = "Invalid item ID"
	ErrMsgInvalidCategory  = "Invalid category"
	ErrMsgAddItemFailed    = "Failed to add item"
	ErrMsgRemoveItemFailed = "Failed to remove item"
	ErrMsgGetItemFailed    = "Failed to get item"
	ErrMsgListItemsFailed  = "Failed to list items"

	// Aging
	ErrMsgInvalidDay      = "Invalid day"
	ErrMsgAdvanceFailed   = "Failed to advance inventory"
	ErrMsgGetReportFailed = "Failed to get aging report"
)

// Success messages
const (
	MsgItemStocked  = "Item stocked"
	MsgItemRemoved  = "Item removed"
	MsgDaysAdvanced = "Inventory advanced"
)
