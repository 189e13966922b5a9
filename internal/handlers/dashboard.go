package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Tahabaig044/luxury-admin/internal/models"
)

type MonthlySales struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

/*
GET /dashboard
- Totals plus the per-calendar-month sales buckets the chart renders.
  Recomputed from all orders on every load, no caching.
*/
func GetDashboard(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /dashboard"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("orders").Find(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var orders []models.Order
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		totalCustomers, err := db.Collection("customers").CountDocuments(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		totalRevenue := 0.0
		for _, order := range orders {
			totalRevenue += order.TotalAmount
		}

		c.JSON(http.StatusOK, gin.H{
			"totalRevenue":   totalRevenue,
			"totalOrders":    len(orders),
			"totalCustomers": totalCustomers,
			"salesPerMonth":  bucketSalesPerMonth(orders),
		})
	}
}

// bucketSalesPerMonth groups order totals by calendar month, oldest first.
func bucketSalesPerMonth(orders []models.Order) []MonthlySales {
	type monthKey struct {
		year  int
		month time.Month
	}

	totals := map[monthKey]float64{}
	for _, order := range orders {
		key := monthKey{year: order.CreatedAt.Year(), month: order.CreatedAt.Month()}
		totals[key] += order.TotalAmount
	}

	keys := make([]monthKey, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	buckets := make([]MonthlySales, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, MonthlySales{
			Month: time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006"),
			Sales: totals[key],
		})
	}
	return buckets
}
