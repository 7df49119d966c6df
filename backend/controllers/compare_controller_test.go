package controllers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compareData(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "missing data envelope")
	return data
}

func productIDs(t *testing.T, data map[string]interface{}) []string {
	t.Helper()
	raw, ok := data["products"].([]interface{})
	require.True(t, ok)
	out := make([]string, len(raw))
	for i, p := range raw {
		out[i] = p.(map[string]interface{})["product_id"].(string)
	}
	return out
}

// Walks the whole comparison flow: empty state, add A, add B, remove A,
// checking the shareable parameter and the table guard at every step.
func TestCompareAddRemoveFlow(t *testing.T) {
	app := newTestApp(fakeDetails())

	// empty comparison
	resp, err := app.Test(httptest.NewRequest("GET", "/api/compare/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := compareData(t, decodeBody(t, resp))
	assert.Equal(t, "", data["products_param"])
	assert.Equal(t, false, data["table_visible"])

	// add A
	resp, err = app.Test(jsonRequest(t, "POST", "/api/compare/add",
		fiber.Map{"products": "", "product_id": "A"}, ""))
	require.NoError(t, err)
	data = compareData(t, decodeBody(t, resp))
	assert.Equal(t, "A", data["products_param"])
	assert.Equal(t, false, data["table_visible"])

	// add B: two slots plus the default feature set make the table visible
	resp, err = app.Test(jsonRequest(t, "POST", "/api/compare/add",
		fiber.Map{"products": "A", "product_id": "B"}, ""))
	require.NoError(t, err)
	data = compareData(t, decodeBody(t, resp))
	assert.Equal(t, "A,B", data["products_param"])
	assert.Equal(t, true, data["table_visible"])

	// remove A: back below the two-slot guard
	resp, err = app.Test(jsonRequest(t, "POST", "/api/compare/remove",
		fiber.Map{"products": "A,B", "product_id": "A"}, ""))
	require.NoError(t, err)
	data = compareData(t, decodeBody(t, resp))
	assert.Equal(t, "B", data["products_param"])
	assert.Equal(t, false, data["table_visible"])
}

func TestCompareAddDuplicateIsNoOp(t *testing.T) {
	app := newTestApp(fakeDetails())

	resp, err := app.Test(jsonRequest(t, "POST", "/api/compare/add",
		fiber.Map{"products": "A,B", "product_id": "A"}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := compareData(t, decodeBody(t, resp))
	assert.Equal(t, "A,B", data["products_param"])
	assert.Equal(t, []string{"A", "B"}, productIDs(t, data))
}

func TestCompareAddBeyondCapacityIsNoOp(t *testing.T) {
	app := newTestApp(fakeDetails())

	resp, err := app.Test(jsonRequest(t, "POST", "/api/compare/add",
		fiber.Map{"products": "a,b,c,d,e", "product_id": "f"}, ""))
	require.NoError(t, err)

	data := compareData(t, decodeBody(t, resp))
	assert.Equal(t, "a,b,c,d,e", data["products_param"])
}

func TestCompareDropsStaleIDsFromSharedURL(t *testing.T) {
	app := newTestApp(fakeDetails("dead"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/compare/?products=a,dead,b,c", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := compareData(t, decodeBody(t, resp))
	// three resolved products, original order, no error surfaced
	assert.Equal(t, []string{"a", "b", "c"}, productIDs(t, data))
	assert.Equal(t, "a,b,c", data["products_param"])
}

func TestCompareToggleFeature(t *testing.T) {
	app := newTestApp(fakeDetails())

	resp, err := app.Test(jsonRequest(t, "POST", "/api/compare/features/toggle",
		fiber.Map{"features": "pricing,rating", "key": "rating"}, ""))
	require.NoError(t, err)

	data := compareData(t, decodeBody(t, resp))
	assert.Equal(t, []interface{}{"pricing"}, data["selected"])

	// unknown keys are rejected
	resp, err = app.Test(jsonRequest(t, "POST", "/api/compare/features/toggle",
		fiber.Map{"features": "pricing", "key": "nope"}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
