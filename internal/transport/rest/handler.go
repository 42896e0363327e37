// Package rest provides the HTTP handlers for the storefront and admin APIs.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Allison-thonio/TTTSL/internal/catalog"
	"github.com/Allison-thonio/TTTSL/internal/checkout"
	apperrors "github.com/Allison-thonio/TTTSL/internal/errors"
	"github.com/Allison-thonio/TTTSL/internal/platform/web"
	"github.com/Allison-thonio/TTTSL/internal/service"
	"github.com/Allison-thonio/TTTSL/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// CheckoutClient creates hosted payment sessions from cart line items.
type CheckoutClient interface {
	CreateSession(items []checkout.LineItem) (string, error)
}

// ViewVersions exposes the current stale-view version counters.
type ViewVersions interface {
	Versions() map[string]uint64
}

type Handler struct {
	service    service.StoreService
	checkout   CheckoutClient
	views      ViewVersions
	adminToken string
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewHandler creates a new Handler with the provided collaborators.
func NewHandler(svc service.StoreService, co CheckoutClient, views ViewVersions, adminToken string, logger *slog.Logger) *Handler {
	return &Handler{
		service:    svc,
		checkout:   co,
		views:      views,
		adminToken: adminToken,
		validate:   validator.New(),
		logger:     logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the storefront service.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/orders", h.ListOrders)
		r.Get("/site-images", h.SiteImages)
		r.Get("/catalog", h.Catalog)
		r.Get("/search", h.Search)
		r.Get("/search/preview", h.SearchPreview)
		r.Post("/checkout", h.Checkout)
		r.Get("/views", h.Views)

		// admin mutations
		r.Group(func(r chi.Router) {
			r.Use(web.RequireToken(h.adminToken))
			r.Post("/products", h.UpsertProduct)
			r.Delete("/products/{id}", h.DeleteProduct)
			r.Patch("/site-images", h.UpdateSiteImages)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// productPayload is the admin upsert request body. The store itself trusts
// its input shape; validation lives here at the boundary.
type productPayload struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name" validate:"required"`
	Price          float64           `json:"price" validate:"gte=0"`
	Stock          int               `json:"stock" validate:"gte=0"`
	Status         string            `json:"status"`
	Image          *string           `json:"image"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Specifications map[string]string `json:"specifications"`
	SKU            string            `json:"sku"`
	Brand          string            `json:"brand"`
	CreatedAt      int64             `json:"createdAt"`
}

func (p productPayload) toProduct() store.Product {
	return store.Product{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		Stock:          p.Stock,
		Status:         p.Status,
		Image:          p.Image,
		Description:    p.Description,
		Category:       p.Category,
		Specifications: p.Specifications,
		SKU:            p.SKU,
		Brand:          p.Brand,
		CreatedAt:      p.CreatedAt,
	}
}

// ListProducts returns the catalog in storage order.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	products, err := h.service.FetchProducts()
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(products))
	web.RespondJSON(w, mLogger, http.StatusOK, products)
}

// UpsertProduct inserts or replaces a product by ID.
func (h *Handler) UpsertProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var payload productPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.validateStruct(w, r, mLogger, payload) {
		return
	}

	product := payload.toProduct()
	// New products get a time-derived ID and creation stamp; an edit keeps
	// whatever the admin screen sent.
	if product.ID == 0 {
		now := time.Now().UnixMilli()
		product.ID = now
		product.CreatedAt = now
	}

	saved, err := h.service.UpsertProduct(product)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error saving product", "ID", product.ID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to save product")
		return
	}
	mLogger.InfoContext(r.Context(), "Product saved successfully", "ID", saved.ID, "Name", saved.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]any{"success": true, "product": saved})
}

// DeleteProduct removes a product by ID. Unknown IDs still succeed.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	if err := h.service.RemoveProduct(id); err != nil {
		mLogger.ErrorContext(r.Context(), "Error deleting product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]any{"success": true})
}

// ListOrders returns all orders as stored.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	orders, err := h.service.FetchOrders()
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving order list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, orders)
}

// SiteImages returns the full placement-key mapping.
func (h *Handler) SiteImages(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	images, err := h.service.FetchSiteImages()
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving site images", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch site images")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, images)
}

// UpdateSiteImages shallow-merges the request body into the stored mapping.
func (h *Handler) UpdateSiteImages(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var patch store.SiteImages
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	merged, err := h.service.UpdateSiteImages(patch)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error updating site images", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to update site images")
		return
	}
	mLogger.InfoContext(r.Context(), "Site images updated", "keys", len(patch))
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]any{"success": true, "siteImages": merged})
}

// Catalog serves a category page listing: category filter, optional price
// range, then one active sort key.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	category := r.URL.Query().Get("category")
	if category == "" {
		web.RespondError(w, mLogger, http.StatusBadRequest, "category url parameter is required")
		return
	}
	priceRange := catalog.PriceRange(r.URL.Query().Get("price"))
	if priceRange == "" {
		priceRange = catalog.RangeAll
	}
	sortKey := catalog.SortKey(r.URL.Query().Get("sort"))
	if sortKey == "" {
		sortKey = catalog.SortNewest
	}

	products, err := h.service.FetchProducts()
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	listed := catalog.Sort(catalog.FilterCategory(products, category, priceRange), sortKey)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]any{
		"products": listed,
		"count":    len(listed),
	})
}

// Search serves the full search page: free-text query, then independent
// category and sort controls over the matches.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	query := r.URL.Query().Get("q")
	filterCategory := r.URL.Query().Get("category")
	sortKey := catalog.SortKey(r.URL.Query().Get("sort"))
	if sortKey == "" {
		sortKey = catalog.SortRelevance
	}

	products, err := h.service.FetchProducts()
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	matches := catalog.Search(products, query)
	if filterCategory != "" && filterCategory != "all" {
		matches = catalog.FilterCategory(matches, filterCategory, catalog.RangeAll)
	}
	matches = catalog.Sort(matches, sortKey)

	web.RespondJSON(w, mLogger, http.StatusOK, map[string]any{
		"products":   matches,
		"count":      len(matches),
		"categories": catalog.Categories(products),
	})
}

// SearchPreview serves the live search dropdown: at most five matches, and
// nothing at all for an empty query.
func (h *Handler) SearchPreview(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	query := r.URL.Query().Get("q")

	products, err := h.service.FetchProducts()
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	web.RespondJSON(w, mLogger, http.StatusOK, map[string]any{
		"products": catalog.Preview(products, query),
	})
}

type checkoutRequest struct {
	Items []checkout.LineItem `json:"items" validate:"required,min=1,dive"`
}

// Checkout hands the cart to the hosted payment provider and returns the
// redirect URL.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.validateStruct(w, r, mLogger, req) {
		return
	}

	url, err := h.checkout.CreateSession(req.Items)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyCart) {
			web.RespondError(w, mLogger, http.StatusBadRequest, "At least one line item is required")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error creating checkout session", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}
	mLogger.InfoContext(r.Context(), "Checkout session created", "items", len(req.Items))
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]string{"url": url})
}

// Views returns the per-view version counters used for cache invalidation.
func (h *Handler) Views(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, h.views.Versions())
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// validateStruct runs the validator over a decoded payload and writes the
// field-level error response on failure.
func (h *Handler) validateStruct(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, payload any) bool {
	if err := h.validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
