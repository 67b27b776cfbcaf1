package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type CatalogHandler struct {
	catalogService service.ICatalogService
}

func NewCatalogHandler(catalogService service.ICatalogService) *CatalogHandler {
	if catalogService == nil {
		panic("catalogService cannot be nil")
	}
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.GetRootCategories(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, categories)
}

func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	category, children, err := h.catalogService.GetCategory(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, dto.CategoryDetailResponse{
		Category: *category,
		Children: children,
	})
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.GetAllProducts(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, product)
}

func (h *CatalogHandler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	products, err := h.catalogService.GetProductsByCategory(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, products)
}

// CreateCategory 管理端新增分類
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var categoryDTO dto.CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&categoryDTO); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}
	created, err := h.catalogService.CreateCategory(r.Context(), &model.Category{
		Name:        categoryDTO.Name,
		Description: categoryDTO.Description,
		ParentID:    categoryDTO.ParentID,
	})
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.CreatedJSON(w, created)
}

// CreateProduct 管理端新增商品
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	product, err := decodeProductDTO(r)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	created, err := h.catalogService.CreateProduct(r.Context(), product)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.CreatedJSON(w, created)
}

// UpdateProduct 管理端更新商品
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	product, err := decodeProductDTO(r)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	product.ProductID = id
	updated, err := h.catalogService.UpdateProduct(r.Context(), product)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, updated)
}

func decodeProductDTO(r *http.Request) (*model.Product, error) {
	var productDTO dto.ProductDTO
	if err := json.NewDecoder(r.Body).Decode(&productDTO); err != nil {
		return nil, apperr.New(apperr.BadRequestCode, "invalid request body")
	}
	price, err := decimal.NewFromString(productDTO.Price)
	if err != nil {
		return nil, apperr.New(apperr.BadRequestCode, "invalid price")
	}
	return &model.Product{
		Name:        productDTO.Name,
		Description: productDTO.Description,
		Price:       price,
		Stock:       productDTO.Stock,
		ImageURL:    productDTO.ImageURL,
		CategoryID:  productDTO.CategoryID,
	}, nil
}
