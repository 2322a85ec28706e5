package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"flipkartplus/internal/database"
	"flipkartplus/internal/models"
)

func demoCategories() []models.Category {
	return []models.Category{
		{Name: "Mobiles", Slug: "mobiles", Icon: "Smartphone"},
		{Name: "Electronics", Slug: "electronics", Icon: "Tv"},
		{Name: "Fashion", Slug: "fashion", Icon: "Shirt"},
		{Name: "Home", Slug: "home", Icon: "Home"},
	}
}

func demoBanners() []models.Banner {
	return []models.Banner{
		{
			Title:    "Festival of Deals",
			Subtitle: "Top offers across categories",
			Image:    "https://images.unsplash.com/photo-1512295767273-ac109ac3acfa",
			CTAText:  "Shop Now",
			CTALink:  "/",
		},
		{
			Title:    "Smartphone Bonanza",
			Subtitle: "Latest 5G phones",
			Image:    "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9",
			CTAText:  "Explore",
			CTALink:  "/",
		},
	}
}

func demoProducts() []models.Product {
	return []models.Product{
		{
			Title:       "Pixel 8 Pro",
			Description: "Google's flagship with AI features",
			Price:       999,
			MRP:         1099,
			Brand:       "Google",
			Category:    "mobiles",
			Rating:      4.6,
			RatingCount: 2143,
			Images:      []string{"https://images.unsplash.com/photo-1696446676203-8fd2c6ad38ef"},
			Specs:       map[string]interface{}{"storage": "256GB", "ram": "12GB"},
			Stock:       50,
		},
		{
			Title:       "Sony WH-1000XM5",
			Description: "Industry-leading noise cancelling",
			Price:       349,
			MRP:         399,
			Brand:       "Sony",
			Category:    "electronics",
			Rating:      4.8,
			RatingCount: 9812,
			Images:      []string{"https://images.unsplash.com/photo-1518449007433-6f1ec0bc8e88"},
			Specs:       map[string]interface{}{"type": "Over-ear", "battery": "30h"},
			Stock:       120,
		},
	}
}

// Seed populates the demo catalog. Each collection is checked independently
// and only filled when empty, so repeat calls never duplicate records.
func Seed(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /seed"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		created := gin.H{"categories": 0, "products": 0, "banners": 0}

		count, err := seedCollection(ctx, db, database.CategoryCollection, func() []interface{} {
			return asDocuments(demoCategories())
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		created["categories"] = count

		count, err = seedCollection(ctx, db, database.BannerCollection, func() []interface{} {
			return asDocuments(demoBanners())
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		created["banners"] = count

		count, err = seedCollection(ctx, db, database.ProductCollection, func() []interface{} {
			return asDocuments(demoProducts())
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		created["products"] = count

		log.Printf("[%s] seeded %v", route, created)
		c.JSON(http.StatusOK, gin.H{"seeded": created})
	}
}

func seedCollection(ctx context.Context, db *mongo.Database, collection string, docs func() []interface{}) (int, error) {
	existing, err := database.CountAll(ctx, db, collection)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	inserted := 0
	for _, doc := range docs() {
		if _, err := database.InsertDocument(ctx, db, collection, doc); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func asDocuments[T any](records []T) []interface{} {
	docs := make([]interface{}, 0, len(records))
	for _, r := range records {
		docs = append(docs, r)
	}
	return docs
}
