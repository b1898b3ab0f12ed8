package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"logistics_dashboard/internal/filter"
	"logistics_dashboard/internal/obs"
	"logistics_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

func bindID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// bindCriteria reads ?q=, the category selector named by categoryParam, and
// ?alerts=.
func bindCriteria(c *gin.Context, categoryParam string) (filter.Criteria, bool) {
	criteria := filter.Criteria{
		Query:    c.Query("q"),
		Category: c.Query(categoryParam),
	}

	if raw := c.Query("alerts"); raw != "" {
		flagOnly, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "alerts must be true or false"})
			return filter.Criteria{}, false
		}
		criteria.FlagOnly = flagOnly
	}

	return criteria, true
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "fields": validationErr.Fields})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrUnauthorized), errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("req_id=%s method=%s path=%s err=%v", obs.RequestID(c.Request.Context()), c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
