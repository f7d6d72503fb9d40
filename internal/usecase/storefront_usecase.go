package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/store"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// CheckoutMessage — ответ на оформление заказа. Оплата не проводится.
const CheckoutMessage = "¡Gracias por tu compra! Esta es una demo."

// StorefrontUseCase переводит намерения пользователя в изменения store.
// publisher и images могут быть nil.
type StorefrontUseCase struct {
	store     *store.Store
	assistant AssistantUC
	publisher CheckoutPublisher
	images    ImagesInfra
	logger    logger.Logger
	now       func() time.Time

	wg sync.WaitGroup
}

func NewStorefrontUC(
	st *store.Store,
	assistant AssistantUC,
	publisher CheckoutPublisher,
	images ImagesInfra,
	logger logger.Logger,
) *StorefrontUseCase {
	return &StorefrontUseCase{
		store:     st,
		assistant: assistant,
		publisher: publisher,
		images:    images,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *StorefrontUseCase) State() store.State {
	return s.store.Snapshot()
}

func (s *StorefrontUseCase) Subscribe(l store.Listener) func() {
	return s.store.Subscribe(l)
}

// Products фильтрует каталог, не трогая фильтры витрины.
func (s *StorefrontUseCase) Products(ctx context.Context, req *ListProductsReq) ([]ProductView, error) {
	const op = "StorefrontUseCase.Products"

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return s.toProductViews(ctx, s.store.Catalog().Filter(req.Search, category)), nil
}

func (s *StorefrontUseCase) Product(ctx context.Context, id string) (*ProductView, error) {
	const op = "StorefrontUseCase.Product"

	p, ok := s.store.Catalog().ByID(id)
	if !ok {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	view := NewProductView(p, s.imageURL(ctx, p.ImageRef))
	return &view, nil
}

// VisibleProducts применяет фильтры из снимка st. Используется, когда снимок уже получен из события.
func (s *StorefrontUseCase) VisibleProducts(ctx context.Context, st store.State) []ProductView {
	return s.toProductViews(ctx, s.store.Catalog().Filter(st.SearchTerm, st.Category))
}

// View строит представление снимка st. Store при этом не вызывается, поэтому View безопасно
// использовать для состояния, полученного из события.
func (s *StorefrontUseCase) View(ctx context.Context, st store.State) *StateView {
	return &StateView{
		State:           st,
		VisibleProducts: s.VisibleProducts(ctx, st),
		Cart:            s.cartView(ctx, st),
	}
}

func (s *StorefrontUseCase) Categories() []domain.Category {
	return append([]domain.Category{domain.CategoryAll}, domain.Categories()...)
}

func (s *StorefrontUseCase) SetFilters(req *SetFiltersReq) (store.State, error) {
	const op = "StorefrontUseCase.SetFilters"

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return store.State{}, e.Wrap(op, err)
	}

	return s.store.SetFilters(req.Search, category), nil
}

// ResetFilters возвращает витрину к полному каталогу.
func (s *StorefrontUseCase) ResetFilters() store.State {
	return s.store.ResetFilters()
}

func (s *StorefrontUseCase) Cart(ctx context.Context) *CartView {
	return s.cartView(ctx, s.store.Snapshot())
}

// AddToCart добавляет товар из каталога. Неизвестный id — ошибка, в отличие от операций над корзиной.
func (s *StorefrontUseCase) AddToCart(ctx context.Context, productID string) (*CartView, error) {
	const op = "StorefrontUseCase.AddToCart"

	p, ok := s.store.Catalog().ByID(productID)
	if !ok {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	s.store.AddToCart(p)
	return s.Cart(ctx), nil
}

func (s *StorefrontUseCase) UpdateQuantity(ctx context.Context, productID string, delta int) *CartView {
	s.store.UpdateQuantity(productID, delta)
	return s.Cart(ctx)
}

func (s *StorefrontUseCase) RemoveFromCart(ctx context.Context, productID string) *CartView {
	s.store.RemoveFromCart(productID)
	return s.Cart(ctx)
}

// Checkout очищает корзину и публикует событие. Ошибка публикации только логируется.
func (s *StorefrontUseCase) Checkout(ctx context.Context) *CheckoutRes {
	const op = "StorefrontUseCase.Checkout"

	res := s.store.Checkout()
	out := &CheckoutRes{
		Message:    CheckoutMessage,
		Items:      s.toCartLines(ctx, res.Items),
		Total:      res.Total,
		TotalItems: res.TotalItems,
	}

	if len(res.Items) == 0 {
		return out
	}

	event := domain.NewCheckoutEvent(res.Items, res.Total, res.TotalItems, s.now())
	if s.publisher == nil {
		s.logger.Infof("checkout completed: event_id=%s items=%d total=%s",
			event.EventID, event.TotalItems, event.Total.StringFixed(2))
		return out
	}

	if err := s.publisher.PublishCheckout(ctx, event); err != nil {
		s.logger.Errorf(e.Wrap(op, err), "failed to publish checkout event %s", event.EventID)
	}

	return out
}

func (s *StorefrontUseCase) SetPanel(panel string, open bool) (store.Panels, error) {
	const op = "StorefrontUseCase.SetPanel"

	p, err := store.ParsePanel(panel)
	if err != nil {
		return store.Panels{}, e.Wrap(op, err)
	}

	s.store.SetPanel(p, open)
	return s.store.Snapshot().Panels, nil
}

func (s *StorefrontUseCase) Messages() []domain.ChatMessage {
	return s.store.Snapshot().Messages
}

// SendMessage добавляет сообщение пользователя и запускает запрос к ассистенту в фоне.
// Запрос не отменяется вместе с ctx: ответ добавляется в диалог, даже если клиент ушёл.
func (s *StorefrontUseCase) SendMessage(ctx context.Context, text string) (domain.ChatMessage, error) {
	const op = "StorefrontUseCase.SendMessage"

	history, msg, err := s.store.BeginSend(text)
	if err != nil {
		return domain.ChatMessage{}, e.Wrap(op, err)
	}

	bgCtx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		reply := s.assistant.Converse(bgCtx, msg.Text, history)
		s.store.CompleteSend(reply)
	}()

	return msg, nil
}

// Wait дожидается ответов ассистента, которые ещё в пути.
func (s *StorefrontUseCase) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return e.Wrap("StorefrontUseCase.Wait", ctx.Err())
	}
}

func (s *StorefrontUseCase) cartView(ctx context.Context, st store.State) *CartView {
	return &CartView{
		Items:      s.toCartLines(ctx, st.Cart),
		Total:      st.Total(),
		TotalItems: st.TotalItems(),
		Open:       st.Panels.CartOpen,
	}
}

func (s *StorefrontUseCase) toCartLines(ctx context.Context, items []domain.LineItem) []CartLineView {
	res := make([]CartLineView, 0, len(items))
	for _, item := range items {
		res = append(res, CartLineView{
			ProductView: NewProductView(item.Product, s.imageURL(ctx, item.ImageRef)),
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal(),
		})
	}
	return res
}

func (s *StorefrontUseCase) toProductViews(ctx context.Context, products []domain.Product) []ProductView {
	res := make([]ProductView, 0, len(products))
	for _, p := range products {
		res = append(res, NewProductView(p, s.imageURL(ctx, p.ImageRef)))
	}
	return res
}

// imageURL при ошибке возвращает исходную ссылку.
func (s *StorefrontUseCase) imageURL(ctx context.Context, ref string) string {
	if s.images == nil || ref == "" {
		return ref
	}

	url, err := s.images.ResolveImage(ctx, ref)
	if err != nil {
		s.logger.Warnf("failed to resolve image %q: %v", ref, err)
		return ref
	}
	return url
}
