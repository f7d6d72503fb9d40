// Package store — единственный контейнер состояния витрины: фильтры, корзина, диалог с ассистентом
// и флаги панелей. Все изменения атомарны; после каждого изменения подписчики получают событие.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/catalog"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/shopspring/decimal"
)

// WelcomeMessage — первое сообщение ассистента в новом диалоге.
const WelcomeMessage = `¡Hola! Soy "El Maestro". ¿En qué proyecto estás trabajando hoy? Puedo ayudarte a encontrar herramientas o darte consejos de bricolaje.`

// EventKind — тип изменения состояния.
type EventKind string

const (
	EventFiltersChanged EventKind = "filters_changed"
	EventCartChanged    EventKind = "cart_changed"
	EventCheckout       EventKind = "checkout"
	EventPanelsChanged  EventKind = "panels_changed"
	EventChatSending    EventKind = "chat_sending"
	EventChatReply      EventKind = "chat_reply"
)

// Event — уведомление об изменении состояния. State — снимок сразу после изменения.
type Event struct {
	Kind  EventKind
	State State
}

// State — снимок состояния. Срезы в снимке не изменяются после выдачи.
type State struct {
	Version    uint64
	SearchTerm string
	Category   domain.Category
	Cart       []domain.LineItem
	Messages   []domain.ChatMessage
	IsSending  bool
	Panels     Panels
}

// Total пересчитывается при каждом вызове.
func (s State) Total() decimal.Decimal {
	return Total(s.Cart)
}

func (s State) TotalItems() int {
	return TotalItems(s.Cart)
}

// CheckoutResult — содержимое корзины на момент оформления.
type CheckoutResult struct {
	Items      []domain.LineItem
	Total      decimal.Decimal
	TotalItems int
}

// Listener вызывается синхронно и по порядку версий. Listener не должен вызывать методы Store:
// всё нужное уже есть в Event.State.
type Listener func(Event)

type Store struct {
	mu       sync.Mutex
	notifyMu sync.Mutex
	state    State
	catalog  *catalog.Catalog
	now      func() time.Time

	listeners map[uint64]Listener
	nextSubID uint64
}

type Option func(*Store)

// WithClock подменяет источник времени для сообщений диалога.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(c *catalog.Catalog, opts ...Option) *Store {
	s := &Store{
		catalog:   c,
		now:       time.Now,
		listeners: make(map[uint64]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state = State{
		Category: domain.CategoryAll,
		Messages: []domain.ChatMessage{domain.NewChatMessage(domain.RoleModel, WelcomeMessage, s.now())},
	}

	return s
}

// Catalog возвращает каталог, по которому работает витрина.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// Snapshot возвращает текущее состояние.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// VisibleProducts применяет текущие фильтры к каталогу.
func (s *Store) VisibleProducts() []domain.Product {
	st := s.Snapshot()
	return s.catalog.Filter(st.SearchTerm, st.Category)
}

// Subscribe регистрирует слушателя и возвращает функцию отписки.
func (s *Store) Subscribe(l Listener) func() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = l

	return func() {
		s.notifyMu.Lock()
		defer s.notifyMu.Unlock()
		delete(s.listeners, id)
	}
}

// SetFilters заменяет строку поиска и категорию одним изменением. Смена категории закрывает мобильное меню.
// Возвращает состояние сразу после изменения.
func (s *Store) SetFilters(searchTerm string, category domain.Category) State {
	return s.update(EventFiltersChanged, func(st *State) bool {
		categoryChanged := st.Category != category
		if st.SearchTerm == searchTerm && !categoryChanged {
			return false
		}
		st.SearchTerm = searchTerm
		st.Category = category
		if categoryChanged {
			st.Panels.MenuOpen = false
		}
		return true
	})
}

// ResetFilters возвращает витрину к полному каталогу.
func (s *Store) ResetFilters() State {
	return s.SetFilters("", domain.CategoryAll)
}

// AddToCart добавляет единицу товара и открывает корзину. Остаток на складе не проверяется.
func (s *Store) AddToCart(product domain.Product) {
	s.update(EventCartChanged, func(st *State) bool {
		st.Cart = addLineItem(st.Cart, product)
		st.Panels.CartOpen = true
		return true
	})
}

// UpdateQuantity изменяет количество позиции на delta, но не ниже 1. Отсутствующий id игнорируется.
func (s *Store) UpdateQuantity(id string, delta int) {
	s.update(EventCartChanged, func(st *State) bool {
		var changed bool
		st.Cart, changed = updateLineItemQuantity(st.Cart, id, delta)
		return changed
	})
}

// RemoveFromCart удаляет позицию. Отсутствующий id игнорируется.
func (s *Store) RemoveFromCart(id string) {
	s.update(EventCartChanged, func(st *State) bool {
		var changed bool
		st.Cart, changed = removeLineItem(st.Cart, id)
		return changed
	})
}

// Checkout очищает корзину, закрывает её панель и возвращает оформленное содержимое.
func (s *Store) Checkout() CheckoutResult {
	var res CheckoutResult
	s.update(EventCheckout, func(st *State) bool {
		res = CheckoutResult{
			Items:      st.Cart,
			Total:      Total(st.Cart),
			TotalItems: TotalItems(st.Cart),
		}
		st.Cart = nil
		st.Panels.CartOpen = false
		return true
	})
	return res
}

// SetPanel открывает или закрывает панель.
func (s *Store) SetPanel(panel Panel, open bool) {
	s.update(EventPanelsChanged, func(st *State) bool {
		return st.Panels.set(panel, open)
	})
}

// BeginSend переводит диалог в состояние отправки и добавляет сообщение пользователя.
// Возвращает историю до этого сообщения. Пока ответ не получен, повторная отправка отклоняется.
func (s *Store) BeginSend(text string) ([]domain.Turn, domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ChatMessage{}, e.ErrEmptyMessage
	}

	var (
		history []domain.Turn
		msg     domain.ChatMessage
		busy    bool
	)
	s.update(EventChatSending, func(st *State) bool {
		if st.IsSending {
			busy = true
			return false
		}

		history = make([]domain.Turn, len(st.Messages))
		for i, m := range st.Messages {
			history[i] = m.ToTurn()
		}

		msg = domain.NewChatMessage(domain.RoleUser, text, s.now())
		st.Messages = appendMessage(st.Messages, msg)
		st.IsSending = true
		return true
	})

	if busy {
		return nil, domain.ChatMessage{}, e.ErrAssistantBusy
	}
	return history, msg, nil
}

// CompleteSend добавляет ровно одно сообщение ассистента и возвращает диалог в состояние ожидания.
func (s *Store) CompleteSend(reply string) domain.ChatMessage {
	var msg domain.ChatMessage
	s.update(EventChatReply, func(st *State) bool {
		msg = domain.NewChatMessage(domain.RoleModel, reply, s.now())
		st.Messages = appendMessage(st.Messages, msg)
		st.IsSending = false
		return true
	})
	return msg
}

// update применяет mutate под блокировкой. Если mutate вернул true, версия увеличивается
// и подписчики получают событие. Уведомления упорядочены по версии.
// Возвращает состояние после mutate.
func (s *Store) update(kind EventKind, mutate func(st *State) bool) State {
	s.mu.Lock()
	if !mutate(&s.state) {
		st := s.state
		s.mu.Unlock()
		return st
	}
	s.state.Version++
	ev := Event{Kind: kind, State: s.state}

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, l := range s.listeners {
		l(ev)
	}
	return ev.State
}

func appendMessage(messages []domain.ChatMessage, msg domain.ChatMessage) []domain.ChatMessage {
	res := make([]domain.ChatMessage, len(messages), len(messages)+1)
	copy(res, messages)
	return append(res, msg)
}
