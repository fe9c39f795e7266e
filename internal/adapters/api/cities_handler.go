package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// searchCities handles GET /api/cities?q= requests
func (s *HTTPServerAdapter) searchCities(c *gin.Context) {
	query := c.Query("q")
	slog.Debug("Searching cities", "query", query)

	options, err := s.cities.Search(c.Request.Context(), query)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, options)
}
