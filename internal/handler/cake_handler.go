package handler

import (
	"errors"
	"net/http"
	"strconv"

	"artistry/internal/domain"
	"artistry/internal/models"
	"artistry/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CakeHandler struct {
	repo *repository.CakeRepository
}

func NewCakeHandler(repo *repository.CakeRepository) *CakeHandler {
	return &CakeHandler{repo: repo}
}

// List returns all live cakes, newest first.
func (h *CakeHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cakes"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListAdmin serves the admin table: search over name/flavor, category
// filter, pagination.
func (h *CakeHandler) ListAdmin(c *gin.Context) {
	page, err := h.repo.ListPage(listOptions(c, 10, "category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cakes"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CakeHandler) Create(c *gin.Context) {
	var req struct {
		Name        string   `json:"name" binding:"required"`
		Flavor      string   `json:"flavor" binding:"required"`
		Description string   `json:"description" binding:"required"`
		Price       float64  `json:"price" binding:"required,gt=0"`
		Servings    int      `json:"servings" binding:"required,min=1"`
		ImageURL    string   `json:"imageUrl" binding:"required"`
		Category    string   `json:"category"`
		IsAvailable *bool    `json:"isAvailable"`
		Tags        []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Category == "" {
		req.Category = domain.CakeCategoryClassic
	}
	if !domain.CakeCategories[req.Category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}
	cake := &models.Cake{
		Name:        req.Name,
		Flavor:      req.Flavor,
		Description: req.Description,
		Price:       req.Price,
		Servings:    req.Servings,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		IsAvailable: req.IsAvailable == nil || *req.IsAvailable,
		Tags:        models.StringList(req.Tags),
	}
	if err := h.repo.Create(cake); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cake"})
		return
	}
	c.JSON(http.StatusCreated, cake)
}

func (h *CakeHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	cake, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cake not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cake"})
		return
	}
	var req struct {
		Name        *string   `json:"name"`
		Flavor      *string   `json:"flavor"`
		Description *string   `json:"description"`
		Price       *float64  `json:"price"`
		Servings    *int      `json:"servings"`
		ImageURL    *string   `json:"imageUrl"`
		Category    *string   `json:"category"`
		IsAvailable *bool     `json:"isAvailable"`
		Tags        *[]string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price != nil && *req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
		return
	}
	if req.Servings != nil && *req.Servings < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "servings must be positive"})
		return
	}
	if req.Category != nil && !domain.CakeCategories[*req.Category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}
	if req.Name != nil {
		cake.Name = *req.Name
	}
	if req.Flavor != nil {
		cake.Flavor = *req.Flavor
	}
	if req.Description != nil {
		cake.Description = *req.Description
	}
	if req.Price != nil {
		cake.Price = *req.Price
	}
	if req.Servings != nil {
		cake.Servings = *req.Servings
	}
	if req.ImageURL != nil {
		cake.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		cake.Category = *req.Category
	}
	if req.IsAvailable != nil {
		cake.IsAvailable = *req.IsAvailable
	}
	if req.Tags != nil {
		cake.Tags = models.StringList(*req.Tags)
	}
	if err := h.repo.Save(cake); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cake"})
		return
	}
	c.JSON(http.StatusOK, cake)
}

func (h *CakeHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cake not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cake"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
