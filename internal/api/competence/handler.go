package competence

import (
	"net/http"

	"portfolio-admin/database"
	"portfolio-admin/internal/app/http/middleware"
	"portfolio-admin/internal/domain/competence"
	"portfolio-admin/internal/storage"

	"github.com/gin-gonic/gin"
)

// GET /api/competence
func List(c *gin.Context) {
	var items []competence.Competence
	if err := database.DB.Order("created_at ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load competences"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/competence - multipart: title, image.
func Create(c *gin.Context) {
	title := middleware.SanitizeText(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	item := competence.Competence{Title: title}
	if fh, err := c.FormFile("image"); err == nil {
		path, err := storage.Uploads.Save(fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		item.Image = path
	}

	if err := database.DB.Create(&item).Error; err != nil {
		if item.Image != "" {
			_ = storage.Uploads.Remove(item.Image)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save competence"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /api/competence/:id
func Update(c *gin.Context) {
	var item competence.Competence
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Competence not found"})
		return
	}

	if title := c.PostForm("title"); title != "" {
		item.Title = middleware.SanitizeText(title)
	}
	if fh, err := c.FormFile("image"); err == nil {
		path, err := storage.Uploads.Save(fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		if item.Image != "" {
			_ = storage.Uploads.Remove(item.Image)
		}
		item.Image = path
	}

	if err := database.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update competence"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /api/competence/:id
func Delete(c *gin.Context) {
	var item competence.Competence
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Competence not found"})
		return
	}
	if err := database.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete competence"})
		return
	}
	if item.Image != "" {
		_ = storage.Uploads.Remove(item.Image)
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
