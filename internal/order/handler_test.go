package order

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darlingboutique/boutique-backend/internal/payment"
)

func setupApp(gw payment.Gateway) (*fiber.App, *fakeRepo, *fakeCarts) {
	repo := newFakeRepo()
	carts := &fakeCarts{}
	h := NewHandler(NewService(repo, carts, gw, time.Second))

	app := fiber.New()
	h.RegisterPublicRoutes(app)
	return app, repo, carts
}

type testResponse struct {
	Code int
	Body []byte
}

func postOrder(t *testing.T, app *fiber.App, body map[string]any) testResponse {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/orders", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return testResponse{Code: res.StatusCode, Body: raw}
}

func validBody() map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{"product_id": "p1", "product_name": "Collier Élégant Doré", "product_price": 25000.0, "product_image": "/img/collier.jpg", "quantity": 2, "subtotal": 50000.0},
		},
		"payment_method": "moov",
		"phone_number":   "01234567",
		"session_id":     "sess-1",
	}
}

func TestCreateOrder_Success(t *testing.T) {
	app, repo, carts := setupApp(&fakeGateway{result: payment.Result{Success: true}})

	rec := postOrder(t, app, validBody())
	require.Equal(t, fiber.StatusOK, rec.Code)

	var ord Order
	require.NoError(t, json.Unmarshal(rec.Body, &ord))
	assert.Equal(t, StatusConfirmed, ord.Status)
	assert.Equal(t, 50000.0, ord.Total)
	assert.Equal(t, "DRB", ord.Number[:3])
	assert.Equal(t, 1, repo.count())
	assert.Equal(t, []string{"sess-1"}, carts.deleted)
}

func TestCreateOrder_InvalidPhone(t *testing.T) {
	app, repo, _ := setupApp(&fakeGateway{result: payment.Result{Success: true}})

	body := validBody()
	body["phone_number"] = "07234567" // airtel prefix with moov method

	rec := postOrder(t, app, body)
	require.Equal(t, fiber.StatusBadRequest, rec.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body, &errBody))
	assert.Equal(t, "invalid phone number for moov", errBody["detail"])
	assert.Zero(t, repo.count())
}

func TestCreateOrder_GatewayDecline(t *testing.T) {
	app, _, carts := setupApp(&fakeGateway{result: payment.Result{Success: false, Error: "service temporarily unavailable"}})

	rec := postOrder(t, app, validBody())
	require.Equal(t, fiber.StatusBadRequest, rec.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body, &errBody))
	assert.Equal(t, "payment failed: service temporarily unavailable", errBody["detail"])
	assert.Empty(t, carts.deleted)
}

func TestGetOrder_NotFound(t *testing.T) {
	app, _, _ := setupApp(&fakeGateway{result: payment.Result{Success: true}})

	req := httptest.NewRequest("GET", "/api/orders/does-not-exist", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestGetOrder_RepeatedReadsAreIdentical(t *testing.T) {
	app, _, _ := setupApp(&fakeGateway{result: payment.Result{Success: true}})

	rec := postOrder(t, app, validBody())
	require.Equal(t, fiber.StatusOK, rec.Code)
	var ord Order
	require.NoError(t, json.Unmarshal(rec.Body, &ord))

	read := func() []byte {
		req := httptest.NewRequest("GET", "/api/orders/"+ord.ID, nil)
		res, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
		b, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		return b
	}

	assert.Equal(t, read(), read(), "reads without intervening writes must match byte for byte")
}

func TestListOrders_FiltersBySession(t *testing.T) {
	app, _, _ := setupApp(&fakeGateway{result: payment.Result{Success: true}})

	first := validBody()
	rec := postOrder(t, app, first)
	require.Equal(t, fiber.StatusOK, rec.Code)

	second := validBody()
	second["session_id"] = "sess-2"
	rec = postOrder(t, app, second)
	require.Equal(t, fiber.StatusOK, rec.Code)

	req := httptest.NewRequest("GET", "/api/orders?session_id=sess-2", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var orders []Order
	require.NoError(t, json.NewDecoder(res.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "sess-2", *orders[0].SessionID)
}
