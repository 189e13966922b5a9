package handlers

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseCollectionIDs converts the form's hex ids to object ids, dropping
// blanks and duplicates while keeping submission order.
func parseCollectionIDs(values []string) ([]primitive.ObjectID, error) {
	seen := map[primitive.ObjectID]struct{}{}
	out := make([]primitive.ObjectID, 0, len(values))

	for _, raw := range values {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		objectID, err := primitive.ObjectIDFromHex(value)
		if err != nil {
			return nil, fmt.Errorf("invalid collection id: %s", value)
		}
		if _, ok := seen[objectID]; ok {
			continue
		}
		seen[objectID] = struct{}{}
		out = append(out, objectID)
	}

	return out, nil
}

func normalizeStringList(values []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(values))

	for _, v := range values {
		value := strings.TrimSpace(v)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

func validateProductPricing(price, cost float64) error {
	if price <= 0 {
		return fmt.Errorf("price must be greater than 0")
	}
	if cost < 0 {
		return fmt.Errorf("cost must be zero or greater")
	}
	return nil
}
