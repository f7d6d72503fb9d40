package http

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/catalog"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/store"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAssistant отвечает эхом. Если release задан, ответ ждёт значения из канала.
type stubAssistant struct {
	mu      sync.Mutex
	release chan struct{}
	texts   []string
}

func (s *stubAssistant) Converse(_ context.Context, text string, _ []domain.Turn) string {
	s.mu.Lock()
	s.texts = append(s.texts, text)
	s.mu.Unlock()

	if s.release != nil {
		<-s.release
	}
	return "eco: " + text
}

type testEnv struct {
	handler   http.Handler
	uc        *usecase.StorefrontUseCase
	assistant *stubAssistant
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cat, err := catalog.New(catalog.SeedProducts())
	require.NoError(t, err)

	log := logger.NewDiscardLogger()
	assistant := &stubAssistant{}
	uc := usecase.NewStorefrontUC(store.New(cat), assistant, nil, nil, log)

	r := chi.NewRouter()
	NewRouter(r, log).Init(uc)

	return &testEnv{handler: r, uc: uc, assistant: assistant}
}

func (env *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]ProductResponse](t, rec), 12)

	rec = env.do(t, http.MethodGet, "/api/v1/products?category=Pintura", "")
	require.Equal(t, http.StatusOK, rec.Code)
	products := decode[[]ProductResponse](t, rec)
	require.Len(t, products, 2)
	assert.Equal(t, "3", products[0].ID)
	assert.Equal(t, "65.00", products[0].Price)
	assert.Equal(t, "https://picsum.photos/400/300?random=3", products[0].ImageURL)

	rec = env.do(t, http.MethodGet, "/api/v1/products?search=TALADRO", "")
	require.Equal(t, http.StatusOK, rec.Code)
	products = decode[[]ProductResponse](t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)

	rec = env.do(t, http.MethodGet, "/api/v1/products?category=Juguetes", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decode[ErrorResponse](t, rec).Code)
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/products/5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[ProductResponse](t, rec)
	assert.Equal(t, "Cemento Portland 50kg", p.Name)
	assert.Equal(t, "12.50", p.Price)
	assert.Equal(t, "Construcción", p.Category)

	rec = env.do(t, http.MethodGet, "/api/v1/products/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCategories(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		[]string{"Todos", "Herramientas", "Construcción", "Pintura", "Fontanería", "Electricidad", "Jardín"},
		decode[[]string](t, rec))
}

func TestSetFilters(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPut, "/api/v1/ui/menu", `{"open":true}`)

	rec := env.do(t, http.MethodPut, "/api/v1/filters", `{"search":"rodillo","category":"Pintura"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[StateResponse](t, rec)
	assert.Equal(t, "rodillo", st.Filters.Search)
	assert.Equal(t, "Pintura", st.Filters.Category)
	assert.False(t, st.Panels.MenuOpen)
	require.Len(t, st.VisibleProducts, 1)
	assert.Equal(t, "4", st.VisibleProducts[0].ID)

	rec = env.do(t, http.MethodPut, "/api/v1/filters", `{"category":"Juguetes"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/v1/filters", `{"query":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResetFilters(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPut, "/api/v1/filters", `{"search":"rodillo","category":"Pintura"}`)

	rec := env.do(t, http.MethodDelete, "/api/v1/filters", "")
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[StateResponse](t, rec)
	assert.Empty(t, st.Filters.Search)
	assert.Equal(t, "Todos", st.Filters.Category)
	assert.Len(t, st.VisibleProducts, 12)
	assert.Equal(t, uint64(2), st.Version)
}

func TestCartFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"5"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decode[CartResponse](t, rec)
	assert.True(t, cart.Open)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	rec = env.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"5"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decode[CartResponse](t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "25.00", cart.Items[0].Subtotal)
	assert.Equal(t, "25.00", cart.Total)

	rec = env.do(t, http.MethodPatch, "/api/v1/cart/items/5", `{"delta":-5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decode[CartResponse](t, rec)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	env.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"1"}`)
	rec = env.do(t, http.MethodDelete, "/api/v1/cart/items/5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decode[CartResponse](t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "1", cart.Items[0].ID)
	assert.Equal(t, 1, cart.TotalItems)

	rec = env.do(t, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "85.99", decode[CartResponse](t, rec).Total)
}

func TestCart_BadRequests(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
	}{
		{name: "unknown product", method: http.MethodPost, path: "/api/v1/cart/items", body: `{"product_id":"999"}`, code: http.StatusNotFound},
		{name: "empty product id", method: http.MethodPost, path: "/api/v1/cart/items", body: `{"product_id":" "}`, code: http.StatusBadRequest},
		{name: "malformed body", method: http.MethodPost, path: "/api/v1/cart/items", body: `{`, code: http.StatusBadRequest},
		{name: "missing delta", method: http.MethodPatch, path: "/api/v1/cart/items/1", body: `{}`, code: http.StatusBadRequest},
		{name: "trailing data", method: http.MethodPatch, path: "/api/v1/cart/items/1", body: `{"delta":1}{}`, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.code, decode[ErrorResponse](t, rec).Code)
		})
	}
}

func TestCheckout(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"5"}`)
	env.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"5"}`)

	rec := env.do(t, http.MethodPost, "/api/v1/cart/checkout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[CheckoutResponse](t, rec)
	assert.Equal(t, usecase.CheckoutMessage, res.Message)
	assert.Equal(t, "25.00", res.Total)
	assert.Equal(t, 2, res.TotalItems)

	cart := decode[CartResponse](t, env.do(t, http.MethodGet, "/api/v1/cart", ""))
	assert.Empty(t, cart.Items)
	assert.False(t, cart.Open)
	assert.Equal(t, "0.00", cart.Total)
}

func TestSetPanel(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/v1/ui/chat", `{"open":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, PanelsResponse{ChatOpen: true}, decode[PanelsResponse](t, rec))

	rec = env.do(t, http.MethodPut, "/api/v1/ui/sidebar", `{"open":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/v1/ui/chat", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/chat/messages", "")
	require.Equal(t, http.StatusOK, rec.Code)
	messages := decode[[]ChatMessageResponse](t, rec)
	require.Len(t, messages, 1)
	assert.Equal(t, "model", messages[0].Role)

	rec = env.do(t, http.MethodPost, "/api/v1/chat/messages", `{"text":"¿Qué taladro me recomiendas?"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	sent := decode[ChatMessageResponse](t, rec)
	assert.Equal(t, "user", sent.Role)
	assert.NotEmpty(t, sent.ID)

	require.NoError(t, env.uc.Wait(context.Background()))

	messages = decode[[]ChatMessageResponse](t, env.do(t, http.MethodGet, "/api/v1/chat/messages", ""))
	require.Len(t, messages, 3)
	assert.Equal(t, "eco: ¿Qué taladro me recomiendas?", messages[2].Text)
	assert.Equal(t, "model", messages[2].Role)

	rec = env.do(t, http.MethodPost, "/api/v1/chat/messages", `{"text":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat_BusyWhileWaitingForReply(t *testing.T) {
	env := newTestEnv(t)
	env.assistant.release = make(chan struct{})

	rec := env.do(t, http.MethodPost, "/api/v1/chat/messages", `{"text":"hola"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	st := decode[StateResponse](t, env.do(t, http.MethodGet, "/api/v1/state", ""))
	assert.True(t, st.IsSending)

	rec = env.do(t, http.MethodPost, "/api/v1/chat/messages", `{"text":"otra vez"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	close(env.assistant.release)
	require.NoError(t, env.uc.Wait(context.Background()))

	st = decode[StateResponse](t, env.do(t, http.MethodGet, "/api/v1/state", ""))
	assert.False(t, st.IsSending)
	assert.Len(t, st.Messages, 3)
}

func TestGetState(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"7"}`)

	rec := env.do(t, http.MethodGet, "/api/v1/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[StateResponse](t, rec)
	assert.Equal(t, uint64(1), st.Version)
	assert.Equal(t, "Todos", st.Filters.Category)
	assert.Len(t, st.VisibleProducts, 12)
	assert.Equal(t, "4.20", st.Cart.Total)
	assert.True(t, st.Panels.CartOpen)
}

func TestStreamEvents(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.handler)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/events", nil)
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	kind, data := readEvent(t, reader)
	assert.Equal(t, "snapshot", kind)
	assert.Equal(t, uint64(0), decodeState(t, data).Version)

	_, err = env.uc.AddToCart(ctx, "2")
	require.NoError(t, err)

	kind, data = readEvent(t, reader)
	assert.Equal(t, string(store.EventCartChanged), kind)
	st := decodeState(t, data)
	assert.Equal(t, uint64(1), st.Version)
	assert.Equal(t, "24.50", st.Cart.Total)
}

// readEvent читает один кадр SSE и возвращает его тип и данные.
func readEvent(t *testing.T, r *bufio.Reader) (string, string) {
	t.Helper()

	var kind, data string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)

		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			if kind != "" {
				return kind, data
			}
		case strings.HasPrefix(line, "event: "):
			kind = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func decodeState(t *testing.T, data string) StateResponse {
	t.Helper()

	var st StateResponse
	require.NoError(t, json.Unmarshal([]byte(data), &st))
	return st
}
