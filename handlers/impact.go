package handlers

import (
	"context"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Fred-Edwin/Taka-Tena/database"
	"github.com/Fred-Edwin/Taka-Tena/models"
)

type ImpactHandler struct {
	Store *database.Store
}

// avgListingWeightKG is a placeholder heuristic: no real weights are
// recorded, so impact assumes 25 kg diverted per completed exchange.
const avgListingWeightKG = 25

var materialLabels = map[models.MaterialType]string{
	models.MaterialPlastic:      "Plastic",
	models.MaterialOrganic:      "Organic",
	models.MaterialConstruction: "Construction",
	models.MaterialEwaste:       "E-waste",
}

type materialBreakdown struct {
	Type       models.MaterialType `json:"type"`
	Name       string              `json:"name"`
	Count      int64               `json:"count"`
	Percentage int                 `json:"percentage"`
}

// GET /api/impact
func (h *ImpactHandler) Global(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	total, err := h.Store.CountListings(ctx, database.ListingFilter{})
	if err != nil {
		storeFailed(c, "fetch impact data", err)
		return
	}

	completed, err := h.Store.CountListings(ctx, database.ListingFilter{Status: models.StatusCompleted})
	if err != nil {
		storeFailed(c, "fetch impact data", err)
		return
	}

	activeUsers, err := h.Store.CountActiveUsers(ctx)
	if err != nil {
		storeFailed(c, "fetch impact data", err)
		return
	}

	denominator := total
	if denominator == 0 {
		denominator = 1 // avoid division by zero
	}

	materials := make([]materialBreakdown, 0, len(models.MaterialTypes))
	for _, materialType := range models.MaterialTypes {
		count, err := h.Store.CountListings(ctx, database.ListingFilter{MaterialType: materialType})
		if err != nil {
			storeFailed(c, "fetch impact data", err)
			return
		}
		materials = append(materials, materialBreakdown{
			Type:       materialType,
			Name:       materialLabels[materialType],
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(denominator) * 100)),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"totalListings":     total,
			"completedListings": completed,
			"estimatedWeight":   completed * avgListingWeightKG,
			"activeUsers":       activeUsers,
		},
		"materials": materials,
	})
}
