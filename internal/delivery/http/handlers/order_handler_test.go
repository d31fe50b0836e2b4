package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bundl-protocol/orderbook-service/internal/domain"
	orderdto "github.com/bundl-protocol/orderbook-service/internal/usecase/dto/order"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderUsecase struct {
	order    *domain.LimitOrder
	page     *orderdto.PageOutput
	book     *domain.Orderbook
	err      error
	lastPage int
	lastLim  int
}

func (s *stubOrderUsecase) SubmitOrder(raw *orderdto.RawSubmission) (*domain.LimitOrder, error) {
	return s.order, s.err
}

func (s *stubOrderUsecase) CancelOrder(orderHash string) (*domain.LimitOrder, error) {
	return s.order, s.err
}

func (s *stubOrderUsecase) GetOrderByHash(orderHash string) (*domain.LimitOrder, error) {
	return s.order, s.err
}

func (s *stubOrderUsecase) GetOrdersByMaker(maker, status string, page, limit int) (*orderdto.PageOutput, error) {
	s.lastPage, s.lastLim = page, limit
	return s.page, s.err
}

func (s *stubOrderUsecase) GetActiveOrders(maker, makerAsset, takerAsset string, page, limit int) (*orderdto.PageOutput, error) {
	s.lastPage, s.lastLim = page, limit
	return s.page, s.err
}

func (s *stubOrderUsecase) GetOrderbook(makerAsset, takerAsset string) (*domain.Orderbook, error) {
	return s.book, s.err
}

func (s *stubOrderUsecase) StartStatusEventWorker(ctx context.Context) {}

func sampleOrder() *domain.LimitOrder {
	return &domain.LimitOrder{
		OrderHash:    "0xabc",
		NetworkID:    1,
		MakerAsset:   "0xAAA",
		TakerAsset:   "0xBBB",
		MakingAmount: "1000000000000000000000",
		TakingAmount: "1",
		Maker:        "0xmaker",
		MakerTraits:  "0",
		Signature:    "0xsig",
		Status:       domain.StatusActive,
		FilledAmount: "0",
		Extension:    &domain.Extension{ID: "ext-1", Predicate: "0xff"},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func newTestRouter(uc *stubOrderUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewOrderHandler(uc)

	r := gin.New()
	orders := r.Group("/orders")
	{
		orders.POST("", h.SubmitOrder)
		orders.GET("/active", h.GetActiveOrders)
		orders.GET("/maker/:address", h.GetOrdersByMaker)
		orders.GET("/:hash", h.GetOrderByHash)
		orders.GET("/:hash/status", h.GetOrderStatus)
		orders.POST("/:hash/cancel", h.CancelOrder)
	}
	r.GET("/orderbook", h.GetOrderbook)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitOrderCreated(t *testing.T) {
	uc := &stubOrderUsecase{order: sampleOrder()}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodPost, "/orders", `{"orderHash":"0xabc","signature":"0xsig","data":{}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Order submitted successfully", body["message"])

	order := body["order"].(map[string]interface{})
	assert.Equal(t, "0xabc", order["order_hash"])
	// big-integer string not coerced to a number
	assert.Equal(t, "1000000000000000000000", order["making_amount"])
}

func TestSubmitOrderValidationError(t *testing.T) {
	uc := &stubOrderUsecase{err: domain.ValidationErrors{"makerAsset": "Missing required field in data: makerAsset"}}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodPost, "/orders", `{"data":{}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid order data", body["error"])
	details := body["details"].(map[string]interface{})
	assert.Contains(t, details, "makerAsset")
}

func TestSubmitOrderDuplicate(t *testing.T) {
	uc := &stubOrderUsecase{err: domain.ErrDuplicateOrder}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodPost, "/orders", `{"orderHash":"0xabc","signature":"0xsig","data":{}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Order already exists")
}

func TestSubmitOrderMalformedBody(t *testing.T) {
	uc := &stubOrderUsecase{order: sampleOrder()}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodPost, "/orders", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderByHashNotFound(t *testing.T) {
	uc := &stubOrderUsecase{err: domain.ErrOrderNotFound}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodGet, "/orders/0xmissing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderStatus(t *testing.T) {
	uc := &stubOrderUsecase{order: sampleOrder()}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodGet, "/orders/0xabc/status", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "0xabc", body["orderHash"])
	assert.Equal(t, "ACTIVE", body["status"])
	assert.Equal(t, "0", body["filledAmount"])
	assert.Contains(t, body, "createdAt")
	assert.Contains(t, body, "updatedAt")
}

func TestCancelOrderInvalidTransition(t *testing.T) {
	uc := &stubOrderUsecase{err: domain.NewInvalidTransitionError(domain.StatusCancelled)}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodPost, "/orders/0xabc/cancel", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CANCELLED")
}

func TestCancelOrderSuccess(t *testing.T) {
	order := sampleOrder()
	order.Status = domain.StatusCancelled
	uc := &stubOrderUsecase{order: order}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodPost, "/orders/0xabc/cancel", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Order cancelled successfully")
}

func TestGetActiveOrdersEnvelope(t *testing.T) {
	uc := &stubOrderUsecase{page: &orderdto.PageOutput{
		Orders: []*domain.LimitOrder{sampleOrder()},
		Total:  120,
		Page:   2,
		Limit:  50,
	}}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodGet, "/orders/active?maker=0xMAKER&limit=50&page=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, uc.lastPage)
	assert.Equal(t, 50, uc.lastLim)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 120, body["count"])
	assert.EqualValues(t, 3, body["next"])
	assert.EqualValues(t, 1, body["previous"])
	results := body["results"].([]interface{})
	require.Len(t, results, 1)
}

func TestGetOrderbook(t *testing.T) {
	uc := &stubOrderUsecase{book: &domain.Orderbook{
		BuyOrders:  []*domain.LimitOrder{sampleOrder()},
		SellOrders: []*domain.LimitOrder{},
		Pair:       "0xAAA/0xBBB",
	}}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodGet, "/orderbook?makerAsset=0xAAA&takerAsset=0xBBB", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "0xAAA/0xBBB", body["pair"])
	assert.Len(t, body["buyOrders"].([]interface{}), 1)
	assert.Empty(t, body["sellOrders"])
}

func TestGetOrderbookMissingParams(t *testing.T) {
	uc := &stubOrderUsecase{err: domain.ErrMissingParameter}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodGet, "/orderbook?takerAsset=0xBBB", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "makerAsset and takerAsset parameters required")
}
