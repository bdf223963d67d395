package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tulynx-storefront/internal/catalog"
)

func listPerfumesHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.Filter{
			Category: c.Query("category"),
			Gender:   c.Query("gender"),
			Search:   c.Query("search"),
		}
		var err error
		if filter.MinPriceCents, err = parseCents(c.Query("minPrice")); err != nil {
			badRequest(c, "minPrice must be a number")
			return
		}
		if filter.MaxPriceCents, err = parseCents(c.Query("maxPrice")); err != nil {
			badRequest(c, "maxPrice must be a number")
			return
		}
		c.JSON(http.StatusOK, cat.List(filter))
	}
}

func bestSellersHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.BestSellers())
	}
}

func getPerfumeHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := cat.Get(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// parseCents reads a dollar amount query param into cents. Empty means
// unset.
func parseCents(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	dollars, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return int64(dollars*100 + 0.5), nil
}
