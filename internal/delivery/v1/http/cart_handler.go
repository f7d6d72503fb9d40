package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	storefrontUsecase usecase.StorefrontUC
	logger            logger.Logger
}

func NewCartHandler(storefrontUsecase usecase.StorefrontUC, logger logger.Logger) *CartHandler {
	return &CartHandler{storefrontUsecase: storefrontUsecase, logger: logger}
}

// getCart
//
//	@Summary	Корзина
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Router		/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toCartResponse(c.storefrontUsecase.Cart(r.Context())))
}

// addItem
//
//	@Summary		Добавить товар в корзину
//	@Description	Увеличивает количество на 1 или добавляет позицию; открывает корзину
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		AddToCartRequest	true	"Товар"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/cart/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := decodeJSON(w, r, &req); err != nil {
		c.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		WriteError(w, e.Wrap("product_id", e.ErrInvalidRequestBody))
		return
	}

	cart, err := c.storefrontUsecase.AddToCart(r.Context(), req.ProductID)
	if err != nil {
		c.logger.Warnf("add to cart: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// updateQuantity
//
//	@Summary		Изменить количество
//	@Description	Количество меняется на delta, но не опускается ниже 1. Отсутствующая позиция игнорируется
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"ID товара"
//	@Param			delta	body		UpdateQuantityRequest	true	"Изменение"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/cart/items/{id} [patch]
func (c *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		c.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}
	if req.Delta == nil {
		WriteError(w, e.Wrap("delta", e.ErrInvalidRequestBody))
		return
	}

	cart := c.storefrontUsecase.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), *req.Delta)
	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// removeItem
//
//	@Summary		Удалить позицию
//	@Description	Отсутствующая позиция игнорируется
//	@Tags			cart
//	@Produce		json
//	@Param			id	path		string	true	"ID товара"
//	@Success		200	{object}	CartResponse
//	@Router			/cart/items/{id} [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	cart := c.storefrontUsecase.RemoveFromCart(r.Context(), chi.URLParam(r, "id"))
	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// checkout
//
//	@Summary		Оформить заказ
//	@Description	Демонстрационное оформление: корзина очищается и закрывается, оплата не проводится
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	CheckoutResponse
//	@Router			/cart/checkout [post]
func (c *CartHandler) checkout(w http.ResponseWriter, r *http.Request) {
	res := c.storefrontUsecase.Checkout(r.Context())
	c.logger.Infof("checkout: %d items, total %s", res.TotalItems, res.Total.StringFixed(2))
	WriteSuccess(w, http.StatusOK, toCheckoutResponse(res))
}
