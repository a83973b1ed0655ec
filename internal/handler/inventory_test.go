package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/mocks"
)

func sampleStockItem(name string, category domain.Category) domain.StockItem {
	return domain.StockItem{
		ID:       uuid.New(),
		Item:     *domain.NewItem(name, 5, 10),
		Category: category,
		AddedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestHandleListItems(t *testing.T) {
	conjured := domain.CategoryConjured
	cake := sampleStockItem("Conjured Mana Cake", domain.CategoryConjured)

	tests := []struct {
		name           string
		target         string
		setupMocks     func(*mocks.MockInventoryService)
		expectedStatus int
		expectedCount  int
		expectedBody   string
	}{
		{
			name:   "All items",
			target: "/items",
			setupMocks: func(m *mocks.MockInventoryService) {
				m.On("ListItems", mock.Anything, (*domain.Category)(nil)).
					Return([]domain.StockItem{cake, sampleStockItem("Aged Brie", domain.CategoryAgedBrie)}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:   "Filtered, case-insensitive",
			target: "/items?category=CONJURED",
			setupMocks: func(m *mocks.MockInventoryService) {
				m.On("ListItems", mock.Anything, &conjured).Return([]domain.StockItem{cake}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:           "Unknown category",
			target:         "/items?category=cursed",
			setupMocks:     func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidCategory,
		},
		{
			name:   "Service error is not leaked",
			target: "/items",
			setupMocks: func(m *mocks.MockInventoryService) {
				m.On("ListItems", mock.Anything, (*domain.Category)(nil)).Return(nil, errors.New("disk on fire"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockInventoryService(t)
			tt.setupMocks(svc)

			w := doRequest(t, newTestRouter(svc), http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
				assert.NotContains(t, w.Body.String(), "disk on fire")
			}
			if tt.expectedStatus == http.StatusOK {
				var resp ItemsResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedCount, resp.Count)
				assert.Len(t, resp.Items, tt.expectedCount)
			}
		})
	}
}

func TestHandleAddItem(t *testing.T) {
	created := sampleStockItem("Elixir of the Mongoose", domain.CategoryNormal)

	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockInventoryService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: AddItemRequest{Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7},
			setupMocks: func(m *mocks.MockInventoryService) {
				m.On("AddItem", mock.Anything, "Elixir of the Mongoose", 5, 7).Return(&created, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   MsgItemStocked,
		},
		{
			name: "Legendary quality above fifty accepted",
			body: AddItemRequest{Name: domain.ItemNameSulfuras, SellIn: 0, Quality: 80},
			setupMocks: func(m *mocks.MockInventoryService) {
				m.On("AddItem", mock.Anything, domain.ItemNameSulfuras, 0, 80).Return(&created, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing name",
			body:           AddItemRequest{SellIn: 5, Quality: 7},
			setupMocks:     func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "This field is required",
		},
		{
			name:           "Negative quality",
			body:           AddItemRequest{Name: "Vest", Quality: -1},
			setupMocks:     func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Must be at least 0",
		},
		{
			name:           "Control characters in name",
			body:           AddItemRequest{Name: "Vest\n", Quality: 1},
			setupMocks:     func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Contains invalid characters",
		},
		{
			name:           "Malformed JSON",
			body:           `{"name":`,
			setupMocks:     func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Unknown field",
			body:           `{"name":"Vest","price":3}`,
			setupMocks:     func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockInventoryService(t)
			tt.setupMocks(svc)

			w := doRequest(t, newTestRouter(svc), http.MethodPost, "/items", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleGetItem(t *testing.T) {
	item := sampleStockItem("Aged Brie", domain.CategoryAgedBrie)
	missing := uuid.New()

	tests := []struct {
		name           string
		id             string
		setupMocks     func(*mocks.MockInventoryService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Found",
			id:   item.ID.String(),
			setupMocks: func(m *mocks.MockInventoryService) {
				m.On("GetItem", mock.Anything, item.ID).Return(&item, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"category":"aged_brie"`,
		},
		{
			name: "Not found",
			id:   missing.String(),
			setupMocks: func(m *mocks.MockInventoryService) {
				m.On("GetItem", mock.Anything, missing).
					Return(nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, missing))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgItemNotFoundError,
		},
		{
			name:           "Bad ID",
			id:             "not-a-uuid",
			setupMocks:     func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidItemID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockInventoryService(t)
			tt.setupMocks(svc)

			w := doRequest(t, newTestRouter(svc), http.MethodGet, "/items/"+tt.id, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleRemoveItem(t *testing.T) {
	id := uuid.New()

	t.Run("Removed", func(t *testing.T) {
		svc := mocks.NewMockInventoryService(t)
		svc.On("RemoveItem", mock.Anything, id).Return(nil)

		w := doRequest(t, newTestRouter(svc), http.MethodDelete, "/items/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgItemRemoved)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := mocks.NewMockInventoryService(t)
		svc.On("RemoveItem", mock.Anything, id).Return(domain.ErrItemNotFound)

		w := doRequest(t, newTestRouter(svc), http.MethodDelete, "/items/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
