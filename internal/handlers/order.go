package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"flipkartplus/internal/database"
	"flipkartplus/internal/models"
)

/* =========================
   REQUEST DTOs
========================= */

// Pointer fields distinguish "absent" from a literal zero, so defaults apply
// only when the client omitted the field.

type createOrderItemRequest struct {
	ProductID string   `json:"product_id"`
	Title     string   `json:"title"`
	Price     *float64 `json:"price"`
	Qty       *int     `json:"qty"`
	Image     string   `json:"image"`
}

type createOrderRequest struct {
	Items    []createOrderItemRequest `json:"items"`
	Subtotal float64                  `json:"subtotal"`
	Shipping *float64                 `json:"shipping"`
	Total    float64                  `json:"total"`
	Address  models.Address           `json:"address"`
	Payment  models.Payment           `json:"payment"`
	PlacedAt *time.Time               `json:"placed_at"`
}

/* =========================
   CREATE ORDER
========================= */

// CreateOrder validates the payload, recomputes the totals server-side and
// persists the order. Client-supplied subtotal/total are never trusted.
func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithFieldErrors(c, route, models.ValidationErrors{
				{Field: "body", Message: "invalid request body"},
			})
			return
		}

		order, errs := buildOrderFromRequest(req, time.Now())
		if len(errs) > 0 {
			respondWithFieldErrors(c, route, errs)
			return
		}

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		orderID, err := database.InsertDocument(ctx, db, database.OrderCollection, order)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] order created: %s total=%v", route, orderID.Hex(), order.Total)

		c.JSON(http.StatusCreated, gin.H{
			"order_id": orderID.Hex(),
			"status":   "received",
		})
	}
}

/* =========================
   BUILD ORDER
========================= */

// buildOrderFromRequest applies defaults, validates, and derives the totals.
// The returned order carries server-computed subtotal/total regardless of
// what the request claimed.
func buildOrderFromRequest(req createOrderRequest, now time.Time) (models.Order, models.ValidationErrors) {
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		qty := 1
		if item.Qty != nil {
			qty = *item.Qty
		}

		var price float64
		if item.Price != nil {
			price = *item.Price
		}

		items = append(items, models.OrderItem{
			ProductID: strings.TrimSpace(item.ProductID),
			Title:     strings.TrimSpace(item.Title),
			Price:     price,
			Qty:       qty,
			Image:     item.Image,
		})
	}

	var shipping float64
	if req.Shipping != nil {
		shipping = *req.Shipping
	}

	payment := req.Payment
	if strings.TrimSpace(payment.Status) == "" {
		payment.Status = models.PaymentStatusPending
	}

	order := models.Order{
		Items:    items,
		Shipping: shipping,
		Address:  req.Address,
		Payment:  payment,
		PlacedAt: req.PlacedAt,
	}

	errs := order.Validate()
	for i, item := range req.Items {
		if item.Price == nil {
			errs = append(errs, models.FieldError{
				Field:   "items[" + strconv.Itoa(i) + "].price",
				Message: "price is required",
			})
		}
	}
	if len(errs) > 0 {
		return models.Order{}, errs
	}

	order.Subtotal, order.Total = models.ComputeTotals(order.Items, order.Shipping)

	if order.PlacedAt == nil {
		order.PlacedAt = &now
	}

	return order, nil
}
