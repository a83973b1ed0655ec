package handler

import (
	"net/http"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// InventoryHandler handles stock HTTP endpoints
type InventoryHandler struct {
	service inventory.Service
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service inventory.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// AddItemRequest is the request body for stocking an item
type AddItemRequest struct {
	Name    string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality" validate:"min=0"`
}

// ListItemsQuery holds the optional list filter
type ListItemsQuery struct {
	Category string `json:"category" validate:"omitempty,category"`
}

// ItemsResponse wraps a stock listing
type ItemsResponse struct {
	Items []domain.StockItem `json:"items"`
	Count int                `json:"count"`
}

// ItemResponse wraps a single stock item
type ItemResponse struct {
	Message string            `json:"message,omitempty"`
	Item    *domain.StockItem `json:"item"`
}

// HandleListItems lists stock, optionally filtered by ?category=
// @Summary List stock
// @Description List stocked items, optionally filtered by aging category
// @Tags inventory
// @Produce json
// @Security ApiKeyAuth
// @Param category query string false "Category key (normal, aged_brie, backstage_pass, legendary, conjured)"
// @Success 200 {object} ItemsResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /items [get]
func (h *InventoryHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	query := ListItemsQuery{Category: GetOptionalQueryParam(r, "category", "")}
	if err := GetValidator().ValidateStruct(query); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidCategory,
			Fields: FormatValidationError(err),
		})
		return
	}

	var filter *domain.Category
	if query.Category != "" {
		c, err := domain.ParseCategory(query.Category)
		if err != nil {
			respondServiceError(w, r, ErrMsgListItemsFailed, err)
			return
		}
		filter = &c
	}

	items, err := h.service.ListItems(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, ErrMsgListItemsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, ItemsResponse{Items: items, Count: len(items)})
}

// HandleAddItem stocks a new item
// @Summary Stock item
// @Description Add an item; its aging category is derived from the name
// @Tags inventory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AddItemRequest true "Item details"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items [post]
func (h *InventoryHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
		return
	}

	item, err := h.service.AddItem(r.Context(), req.Name, req.SellIn, req.Quality)
	if err != nil {
		respondServiceError(w, r, ErrMsgAddItemFailed, err)
		return
	}

	logger.FromContext(r.Context()).Debug("Item stocked via API", "item_id", item.ID)
	respondJSON(w, http.StatusCreated, ItemResponse{Message: MsgItemStocked, Item: item})
}

// HandleGetItem returns a single stock item
// @Summary Get item
// @Tags inventory
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Item ID (UUID)"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{id} [get]
func (h *InventoryHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := getItemID(w, r)
	if !ok {
		return
	}

	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetItemFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, ItemResponse{Item: item})
}

// HandleRemoveItem takes an item out of stock
// @Summary Remove item
// @Tags inventory
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Item ID (UUID)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{id} [delete]
func (h *InventoryHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := getItemID(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveItem(r.Context(), id); err != nil {
		respondServiceError(w, r, ErrMsgRemoveItemFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemRemoved})
}
