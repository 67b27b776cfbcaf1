package dto

import "github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"

type CreateCategoryDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id,omitempty"`
}

type CategoryDetailResponse struct {
	Category model.Category   `json:"category"`
	Children []model.Category `json:"children"`
}

type ProductDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	ImageURL    string `json:"image_url"`
	CategoryID  uint   `json:"category_id"`
}
