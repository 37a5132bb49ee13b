package handlers

import (
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
)

func TestGetHealth(t *testing.T) {
	_, api := humatest.New(t)
	NewHealthHandler("1.0.0").RegisterRoutes(api)

	resp := api.Get("/api/health")

	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"ok"`)
	assert.Contains(t, resp.Body.String(), `"version":"1.0.0"`)
}
