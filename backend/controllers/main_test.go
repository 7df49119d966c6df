package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"hrmarket/backend/config"
	"hrmarket/backend/gateway"
	"hrmarket/backend/gateway/gatewaytest"
	"hrmarket/backend/models"
	"hrmarket/backend/routes"
	"hrmarket/backend/utils"
)

var testCfg = &config.Config{
	JWTSecret:  "testsecret",
	ServerPort: "8080",
	LogLevel:   "error",
}

func newTestApp(gw gateway.Gateway) *fiber.App {
	app := fiber.New()
	routes.SetupRoutes(app, gw, testCfg)
	return app
}

func userToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("user-1", models.RoleUser, testCfg)
	require.NoError(t, err)
	return token
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("admin-1", models.RoleAdmin, testCfg)
	require.NoError(t, err)
	return token
}

func jsonRequest(t *testing.T, method, target string, body interface{}, token string) *http.Request {
	t.Helper()
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(data)
	}
	req := httptest.NewRequest(method, target, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// fakeDetails resolves every ID except those listed as dead.
func fakeDetails(dead ...string) *gatewaytest.Fake {
	gone := make(map[string]bool, len(dead))
	for _, id := range dead {
		gone[id] = true
	}
	return &gatewaytest.Fake{
		GetProductDetailsFn: func(ctx context.Context, id string) (*models.ProductDetails, error) {
			if gone[id] {
				return nil, nil
			}
			return &models.ProductDetails{ProductID: id, ProductName: "Product " + id, Tier: models.TierGold}, nil
		},
	}
}
