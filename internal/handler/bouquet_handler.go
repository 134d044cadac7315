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

type BouquetHandler struct {
	repo *repository.BouquetRepository
}

func NewBouquetHandler(repo *repository.BouquetRepository) *BouquetHandler {
	return &BouquetHandler{repo: repo}
}

func (h *BouquetHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bouquets"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *BouquetHandler) ListAdmin(c *gin.Context) {
	page, err := h.repo.ListPage(listOptions(c, 10, "size"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bouquets"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *BouquetHandler) Create(c *gin.Context) {
	var req struct {
		Name          string  `json:"name" binding:"required"`
		Description   string  `json:"description" binding:"required"`
		Price         float64 `json:"price" binding:"required,gt=0"`
		ImageURL      string  `json:"imageUrl" binding:"required"`
		ChocolateType string  `json:"chocolateType" binding:"required"`
		Size          string  `json:"size"`
		Occasion      string  `json:"occasion"`
		IsAvailable   *bool   `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Size == "" {
		req.Size = domain.BouquetSizeMedium
	}
	if !domain.BouquetSizes[req.Size] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
		return
	}
	b := &models.Bouquet{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		ChocolateType: req.ChocolateType,
		Size:          req.Size,
		Occasion:      req.Occasion,
		IsAvailable:   req.IsAvailable == nil || *req.IsAvailable,
	}
	if err := h.repo.Create(b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bouquet"})
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BouquetHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	b, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bouquet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bouquet"})
		return
	}
	var req struct {
		Name          *string  `json:"name"`
		Description   *string  `json:"description"`
		Price         *float64 `json:"price"`
		ImageURL      *string  `json:"imageUrl"`
		ChocolateType *string  `json:"chocolateType"`
		Size          *string  `json:"size"`
		Occasion      *string  `json:"occasion"`
		IsAvailable   *bool    `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price != nil && *req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
		return
	}
	if req.Size != nil && !domain.BouquetSizes[*req.Size] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
		return
	}
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Price != nil {
		b.Price = *req.Price
	}
	if req.ImageURL != nil {
		b.ImageURL = *req.ImageURL
	}
	if req.ChocolateType != nil {
		b.ChocolateType = *req.ChocolateType
	}
	if req.Size != nil {
		b.Size = *req.Size
	}
	if req.Occasion != nil {
		b.Occasion = *req.Occasion
	}
	if req.IsAvailable != nil {
		b.IsAvailable = *req.IsAvailable
	}
	if err := h.repo.Save(b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bouquet"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BouquetHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bouquet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bouquet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
