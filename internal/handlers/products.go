package handlers

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Tahabaig044/luxury-admin/internal/models"
)

type ProductCreateRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Media       []string `json:"media"`
	Category    string   `json:"category"`
	Collections []string `json:"collections"`
	Tags        []string `json:"tags"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Price       *float64 `json:"price" binding:"required"`
	Cost        *float64 `json:"cost"`
}

type ProductUpdateRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Media       *[]string `json:"media"`
	Category    *string   `json:"category"`
	Collections *[]string `json:"collections"`
	Tags        *[]string `json:"tags"`
	Sizes       *[]string `json:"sizes"`
	Colors      *[]string `json:"colors"`
	Price       *float64  `json:"price"`
	Cost        *float64  `json:"cost"`
}

/*
GET /products
- Newest first, searchable and paginated for the dashboard table
*/
func GetProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePaginationParams(
			c.Query("page"),
			c.Query("limit"),
		)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		filter := bson.M{}

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			filter["$or"] = []bson.M{
				{"title": bson.M{"$regex": search, "$options": "i"}},
				{"category": bson.M{"$regex": search, "$options": "i"}},
				{"tags": bson.M{"$regex": search, "$options": "i"}},
			}
		}

		if category := strings.TrimSpace(c.Query("category")); category != "" {
			filter["category"] = category
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		total, err := db.Collection("products").CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		totalPages := int64(0)
		if total > 0 {
			totalPages = int64(math.Ceil(float64(total) / float64(limit)))
		}

		opts := options.Find().
			SetSkip((page - 1) * limit).
			SetLimit(limit).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := db.Collection("products").Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer cursor.Close(ctx)

		products := []models.Product{}
		if err := cursor.All(ctx, &products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "decode error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": products,
			"pagination": gin.H{
				"page":       page,
				"limit":      limit,
				"total":      total,
				"totalPages": totalPages,
			},
		})
	}
}

/*
GET /products/:id
*/
func GetProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var product models.Product
		err = db.Collection("products").
			FindOne(ctx, bson.M{"_id": id}).
			Decode(&product)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

/*
POST /products
*/
func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and price are required"})
			return
		}

		title := strings.TrimSpace(req.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
			return
		}

		cost := 0.0
		if req.Cost != nil {
			cost = *req.Cost
		}
		if err := validateProductPricing(*req.Price, cost); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		collectionIDs, err := parseCollectionIDs(req.Collections)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if len(collectionIDs) > 0 {
			count, err := db.Collection("collections").CountDocuments(
				ctx,
				bson.M{"_id": bson.M{"$in": collectionIDs}},
			)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
				return
			}
			if count != int64(len(collectionIDs)) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown collection id"})
				return
			}
		}

		now := time.Now()
		product := models.Product{
			Title:       title,
			Description: strings.TrimSpace(req.Description),
			Media:       normalizeStringList(req.Media),
			Category:    strings.TrimSpace(req.Category),
			Collections: collectionIDs,
			Tags:        normalizeStringList(req.Tags),
			Sizes:       normalizeStringList(req.Sizes),
			Colors:      normalizeStringList(req.Colors),
			Price:       *req.Price,
			Cost:        cost,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		res, err := db.Collection("products").InsertOne(ctx, product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		product.ID = res.InsertedID.(primitive.ObjectID)
		c.JSON(http.StatusCreated, product)
	}
}

/*
POST /products/:id
- Partial update
*/
func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req ProductUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		update := bson.M{}

		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "title cannot be empty"})
				return
			}
			update["title"] = title
		}
		if req.Description != nil {
			update["description"] = strings.TrimSpace(*req.Description)
		}
		if req.Media != nil {
			update["media"] = normalizeStringList(*req.Media)
		}
		if req.Category != nil {
			update["category"] = strings.TrimSpace(*req.Category)
		}
		if req.Tags != nil {
			update["tags"] = normalizeStringList(*req.Tags)
		}
		if req.Sizes != nil {
			update["sizes"] = normalizeStringList(*req.Sizes)
		}
		if req.Colors != nil {
			update["colors"] = normalizeStringList(*req.Colors)
		}
		if req.Price != nil {
			if *req.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
				return
			}
			update["price"] = *req.Price
		}
		if req.Cost != nil {
			if *req.Cost < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cost must be zero or greater"})
				return
			}
			update["cost"] = *req.Cost
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if req.Collections != nil {
			collectionIDs, err := parseCollectionIDs(*req.Collections)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if len(collectionIDs) > 0 {
				count, err := db.Collection("collections").CountDocuments(
					ctx,
					bson.M{"_id": bson.M{"$in": collectionIDs}},
				)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
					return
				}
				if count != int64(len(collectionIDs)) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "unknown collection id"})
					return
				}
			}
			update["collections"] = collectionIDs
		}

		if len(update) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}
		update["updatedAt"] = time.Now()

		var updated models.Product
		err = db.Collection("products").
			FindOneAndUpdate(
				ctx,
				bson.M{"_id": id},
				bson.M{"$set": update},
				options.FindOneAndUpdate().SetReturnDocument(options.After),
			).
			Decode(&updated)

		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

/*
DELETE /products/:id
- Hard delete, no soft-delete flag
*/
func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("products").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
