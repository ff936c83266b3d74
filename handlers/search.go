package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Fred-Edwin/Taka-Tena/database"
)

type SearchHandler struct {
	Store *database.Store
}

// GET /api/search?q=
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	// An empty query is a defined empty result, not an error, and it
	// never touches the store.
	if query == "" {
		c.JSON(http.StatusOK, gin.H{
			"results": []database.ListingWithUser{},
			"total":   0,
			"query":   "",
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	results, err := h.Store.SearchListings(ctx, query)
	if err != nil {
		storeFailed(c, "search listings", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"total":   len(results),
		"query":   query,
	})
}
