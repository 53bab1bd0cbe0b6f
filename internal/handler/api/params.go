package api

import (
	"strconv"
	"time"

	"trust-rewards/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func pageRequest(c *gin.Context) queries.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	return queries.PageRequest{Page: page, PerPage: perPage}.Normalize()
}

func uuidQuery(c *gin.Context, key string) *uuid.UUID {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func stringQuery(c *gin.Context, key string) *string {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	return &raw
}

func timeQuery(c *gin.Context, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Date-only filters are common from admin dashboards.
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil
		}
	}
	return &t
}
