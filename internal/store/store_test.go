package store

import (
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/catalog"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	c, err := catalog.New(catalog.SeedProducts())
	require.NoError(t, err)

	fixed := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	return New(c, WithClock(func() time.Time { return fixed }))
}

func mustProduct(t *testing.T, s *Store, id string) domain.Product {
	t.Helper()
	p, ok := s.Catalog().ByID(id)
	require.True(t, ok)
	return p
}

func TestNew_InitialState(t *testing.T) {
	s := newTestStore(t)
	st := s.Snapshot()

	assert.Equal(t, uint64(0), st.Version)
	assert.Equal(t, domain.CategoryAll, st.Category)
	assert.Empty(t, st.Cart)
	assert.False(t, st.IsSending)
	require.Len(t, st.Messages, 1)
	assert.Equal(t, domain.RoleModel, st.Messages[0].Role)
	assert.Equal(t, WelcomeMessage, st.Messages[0].Text)
	assert.Len(t, s.VisibleProducts(), 12)
}

func TestFilters(t *testing.T) {
	s := newTestStore(t)

	s.SetFilters("taladro", domain.CategoryAll)
	visible := s.VisibleProducts()
	require.Len(t, visible, 1)
	assert.Equal(t, "1", visible[0].ID)

	s.SetPanel(PanelMenu, true)
	s.SetFilters("taladro", domain.CategoryPaint)
	st := s.Snapshot()
	assert.Empty(t, s.VisibleProducts())
	assert.False(t, st.Panels.MenuOpen)

	s.ResetFilters()
	assert.Len(t, s.VisibleProducts(), 12)
}

func TestSetFilters_SingleEvent(t *testing.T) {
	s := newTestStore(t)
	s.SetPanel(PanelMenu, true)

	var events []Event
	unsubscribe := s.Subscribe(func(ev Event) { events = append(events, ev) })
	defer unsubscribe()

	s.SetFilters("rodillo", domain.CategoryPaint)

	require.Len(t, events, 1)
	assert.Equal(t, EventFiltersChanged, events[0].Kind)
	assert.Equal(t, "rodillo", events[0].State.SearchTerm)
	assert.Equal(t, domain.CategoryPaint, events[0].State.Category)
	assert.False(t, events[0].State.Panels.MenuOpen)

	s.SetPanel(PanelMenu, true)
	s.SetFilters("brocha", domain.CategoryPaint)
	assert.True(t, s.Snapshot().Panels.MenuOpen)

	before := s.Snapshot().Version
	s.SetFilters("brocha", domain.CategoryPaint)
	assert.Equal(t, before, s.Snapshot().Version)
}

func TestAddToCart_OpensCartAndMerges(t *testing.T) {
	s := newTestStore(t)
	p := mustProduct(t, s, "1")

	s.AddToCart(p)
	s.AddToCart(p)

	st := s.Snapshot()
	require.Len(t, st.Cart, 1)
	assert.Equal(t, 2, st.Cart[0].Quantity)
	assert.True(t, st.Panels.CartOpen)
}

func TestUpdateQuantityAndTotal(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart(mustProduct(t, s, "1"))
	s.AddToCart(mustProduct(t, s, "4"))
	s.UpdateQuantity("4", 1)

	st := s.Snapshot()
	assert.Equal(t, "103.79", st.Total().StringFixed(2))
	assert.Equal(t, 3, st.TotalItems())

	s.UpdateQuantity("4", -100)
	assert.Equal(t, 1, s.Snapshot().Cart[1].Quantity)
}

func TestNoOpsDoNotBumpVersion(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart(mustProduct(t, s, "1"))
	before := s.Snapshot()

	s.UpdateQuantity("404", 5)
	s.RemoveFromCart("404")
	s.UpdateQuantity("1", -1)
	s.SetPanel(PanelCart, true)

	after := s.Snapshot()
	assert.Equal(t, before.Version, after.Version)
	assert.Equal(t, before.Cart, after.Cart)
}

func TestCheckout(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart(mustProduct(t, s, "5"))
	s.UpdateQuantity("5", 1)

	res := s.Checkout()
	require.Len(t, res.Items, 1)
	assert.Equal(t, "25.00", res.Total.StringFixed(2))
	assert.Equal(t, 2, res.TotalItems)

	st := s.Snapshot()
	assert.Empty(t, st.Cart)
	assert.False(t, st.Panels.CartOpen)
}

func TestChat_StateMachine(t *testing.T) {
	s := newTestStore(t)

	_, _, err := s.BeginSend("   ")
	assert.ErrorIs(t, err, e.ErrEmptyMessage)

	history, userMsg, err := s.BeginSend("¿Qué cemento tienen?")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.RoleModel, history[0].Role)
	assert.Equal(t, domain.RoleUser, userMsg.Role)
	assert.True(t, s.Snapshot().IsSending)

	_, _, err = s.BeginSend("otra pregunta")
	assert.ErrorIs(t, err, e.ErrAssistantBusy)
	assert.Len(t, s.Snapshot().Messages, 2)

	reply := s.CompleteSend("Tenemos Cemento Portland 50kg a $12.50.")
	st := s.Snapshot()
	assert.False(t, st.IsSending)
	require.Len(t, st.Messages, 3)
	assert.Equal(t, reply, st.Messages[2])
	assert.Equal(t, domain.RoleModel, reply.Role)

	history, _, err = s.BeginSend("gracias")
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestChat_MessageIDsAreUnique(t *testing.T) {
	s := newTestStore(t)
	_, _, err := s.BeginSend("hola")
	require.NoError(t, err)
	s.CompleteSend("hola")

	seen := map[string]bool{}
	for _, m := range s.Snapshot().Messages {
		assert.False(t, seen[m.ID])
		seen[m.ID] = true
	}
}

func TestSubscribe_OrderedEvents(t *testing.T) {
	s := newTestStore(t)

	var (
		mu     sync.Mutex
		events []Event
	)
	unsubscribe := s.Subscribe(func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
	})

	p := mustProduct(t, s, "2")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddToCart(p)
		}()
	}
	wg.Wait()

	mu.Lock()
	require.Len(t, events, 20)
	for i, ev := range events {
		assert.Equal(t, EventCartChanged, ev.Kind)
		assert.Equal(t, uint64(i+1), ev.State.Version)
	}
	mu.Unlock()

	assert.Equal(t, 20, s.Snapshot().Cart[0].Quantity)

	unsubscribe()
	s.SetFilters("pintura", domain.CategoryAll)
	mu.Lock()
	assert.Len(t, events, 20)
	mu.Unlock()
}

func TestSnapshot_IsImmutable(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart(mustProduct(t, s, "1"))
	snap := s.Snapshot()

	s.AddToCart(mustProduct(t, s, "1"))
	s.RemoveFromCart("1")

	require.Len(t, snap.Cart, 1)
	assert.Equal(t, 1, snap.Cart[0].Quantity)
}

func TestParsePanel(t *testing.T) {
	p, err := ParsePanel("chat")
	require.NoError(t, err)
	assert.Equal(t, PanelChat, p)

	_, err = ParsePanel("footer")
	assert.ErrorIs(t, err, e.ErrUnknownPanel)
}
