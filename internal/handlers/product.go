package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"flipkartplus/internal/database"
	"flipkartplus/internal/models"
)

const defaultProductLimit = 24

// buildProductFilter translates the optional q/category params into a store
// filter. q is a literal substring test on the title, case-insensitive;
// category is an exact match. Both combine with AND.
func buildProductFilter(q, category string) bson.M {
	filter := bson.M{}

	if q = strings.TrimSpace(q); q != "" {
		filter["title"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}}
	}
	if category = strings.TrimSpace(category); category != "" {
		filter["category"] = category
	}

	return filter
}

// parseProductLimit accepts any positive limit. There is deliberately no
// upper bound; that matches the observed behavior of the API.
func parseProductLimit(limitStr string) (int64, error) {
	if strings.TrimSpace(limitStr) == "" {
		return defaultProductLimit, nil
	}

	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("invalid limit %q", limitStr)
	}
	return limit, nil
}

/*
GET /products
- ?q=        case-insensitive substring on title
- ?category= exact slug match
- ?limit=    default 24, no enforced maximum
*/
func GetProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		log.Printf(
			"[%s] hit q=%s category=%s limit=%s",
			route,
			c.Query("q"),
			c.Query("category"),
			c.Query("limit"),
		)

		limit, err := parseProductLimit(c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid limit")
			return
		}

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		filter := buildProductFilter(c.Query("q"), c.Query("category"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		products := make([]models.Product, 0)
		if err := database.FindDocuments(ctx, db, database.ProductCollection, filter, limit, &products); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

/*
GET /products/:id
- 400 when the id is not a well-formed ObjectID
- 404 when no product matches
*/
func GetProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var product models.Product
		err = database.FindDocumentByID(ctx, db, database.ProductCollection, id, &product)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
