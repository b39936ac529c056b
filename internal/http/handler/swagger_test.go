package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSwagger(t *testing.T) {
	app := fiber.New()
	RegisterSwagger(app, "quickcal.example.com")

	var wg sync.WaitGroup
	for _, host := range []string{"evil.example.com", "other.example.com", "third.example.com"} {
		wg.Add(1)
		go func(host string) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
			req.Host = host
			req.Header.Set("X-Forwarded-Proto", "gopher")
			resp, err := app.Test(req)
			if assert.NoError(t, err) {
				assert.Equal(t, http.StatusOK, resp.StatusCode)
			}
		}(host)
	}
	wg.Wait()

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	req.Host = "evil.example.com"
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var spec struct {
		Host    string   `json:"host"`
		Schemes []string `json:"schemes"`
		Paths   map[string]any
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&spec))
	assert.Equal(t, "quickcal.example.com", spec.Host)
	assert.Equal(t, []string{"http", "https"}, spec.Schemes)
	assert.Contains(t, spec.Paths, "/process_text")
}
