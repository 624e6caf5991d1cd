package handlers

import (
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"github.com/Abdul1ayev/Tickets/services"
)

type CatalogHandler struct {
	app     *pocketbase.PocketBase
	catalog *services.CatalogService
}

func NewCatalogHandler(app *pocketbase.PocketBase, catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		app:     app,
		catalog: catalog,
	}
}

// GetCategory - list the products of one catalog category
func (h *CatalogHandler) GetCategory(e *core.RequestEvent) error {
	categoryID, err := strconv.Atoi(e.Request.PathValue("categoryId"))
	if err != nil {
		return apis.NewBadRequestError("Invalid category id", err)
	}

	products, err := h.catalog.ProductsByCategory(e.Request.Context(), categoryID)
	if err != nil {
		return apis.NewBadRequestError("Failed to fetch catalog", err)
	}

	return e.JSON(http.StatusOK, products)
}
