package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	storefrontUsecase usecase.StorefrontUC
	logger            logger.Logger
}

func NewCatalogHandler(storefrontUsecase usecase.StorefrontUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{storefrontUsecase: storefrontUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Фильтрует каталог по строке поиска и категории, не меняя фильтры витрины
//	@Tags			catalog
//	@Produce		json
//	@Param			search		query		string				false	"Строка поиска"
//	@Param			category	query		string				false	"Категория (Todos по умолчанию)"
//	@Success		200			{array}		ProductResponse
//	@Failure		400			{object}	ErrorResponse	"Неизвестная категория"
//	@Router			/products [get]
func (c *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	products, err := c.storefrontUsecase.Products(r.Context(), usecase.NewListProductsReq(q.Get("search"), q.Get("category")))
	if err != nil {
		c.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(products))
}

// getProduct
//
//	@Summary		Товар по идентификатору
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		string	true	"ID товара"
//	@Success		200	{object}	ProductResponse
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id} [get]
func (c *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := c.storefrontUsecase.Product(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(*product))
}

// listCategories
//
//	@Summary		Категории
//	@Description	Значения фильтра категорий; первым идёт Todos
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	string
//	@Router			/categories [get]
func (c *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toCategoryResponses(c.storefrontUsecase.Categories()))
}

// setFilters
//
//	@Summary		Изменить фильтры витрины
//	@Description	Меняет строку поиска и категорию; смена категории закрывает мобильное меню
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			filters	body		SetFiltersRequest	true	"Фильтры"
//	@Success		200		{object}	StateResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/filters [put]
func (c *CatalogHandler) setFilters(w http.ResponseWriter, r *http.Request) {
	var req SetFiltersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		c.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	st, err := c.storefrontUsecase.SetFilters(usecase.NewSetFiltersReq(req.Search, req.Category))
	if err != nil {
		c.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toStateResponse(c.storefrontUsecase.View(r.Context(), st)))
}

// resetFilters
//
//	@Summary		Сбросить фильтры витрины
//	@Description	Очищает строку поиска и возвращает категорию Todos
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	StateResponse
//	@Router			/filters [delete]
func (c *CatalogHandler) resetFilters(w http.ResponseWriter, r *http.Request) {
	st := c.storefrontUsecase.ResetFilters()
	WriteSuccess(w, http.StatusOK, toStateResponse(c.storefrontUsecase.View(r.Context(), st)))
}
