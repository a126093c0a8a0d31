package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/v1/products?page=0&limit=500&category=Shoes", nil)

	params := GetPaginationParams(c)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "Shoes", params.Category)
}

func TestPageBounds(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 3}

	start, end := PageBounds(params, 7)
	assert.Equal(t, 3, start)
	assert.Equal(t, 6, end)

	start, end = PageBounds(PaginationParams{Page: 3, Limit: 3}, 7)
	assert.Equal(t, 6, start)
	assert.Equal(t, 7, end)

	start, end = PageBounds(PaginationParams{Page: 9, Limit: 3}, 7)
	assert.Equal(t, 7, start)
	assert.Equal(t, 7, end)
}

func TestCreatePaginationResult(t *testing.T) {
	result := CreatePaginationResult([]string{"a"}, 41, PaginationParams{Page: 1, Limit: 20})
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, int64(41), result.Total)
}
