package scripts

import (
	"net/http"

	"portfolio-admin/database"
	"portfolio-admin/internal/app/http/middleware"
	"portfolio-admin/internal/domain/scripts"
	"portfolio-admin/internal/storage"

	"github.com/gin-gonic/gin"
)

// GET /api/scripts
func List(c *gin.Context) {
	var items []scripts.Script
	if err := database.DB.Order("created_at ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load scripts"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/scripts - multipart: title, description, image, pdf.
func Create(c *gin.Context) {
	title := middleware.SanitizeText(c.PostForm("title"))
	description := middleware.SanitizeText(c.PostForm("description"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	s := scripts.Script{Title: title, Description: description}
	var written []string
	if fh, err := c.FormFile("image"); err == nil {
		path, err := storage.Uploads.Save(fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		written = append(written, path)
		s.ImageURL = path
	}
	if fh, err := c.FormFile("pdf"); err == nil {
		path, err := storage.Uploads.Save(fh)
		if err != nil {
			storage.Uploads.RemoveAll(written)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store pdf"})
			return
		}
		written = append(written, path)
		s.PDFURL = path
	}

	if err := database.DB.Create(&s).Error; err != nil {
		storage.Uploads.RemoveAll(written)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save script"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

// PUT /api/scripts/:id
func Update(c *gin.Context) {
	id := c.Param("id")

	var s scripts.Script
	if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Script not found"})
		return
	}

	if title := c.PostForm("title"); title != "" {
		s.Title = middleware.SanitizeText(title)
	}
	s.Description = middleware.SanitizeText(c.PostForm("description"))

	if fh, err := c.FormFile("image"); err == nil {
		path, err := storage.Uploads.Save(fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		if s.ImageURL != "" {
			_ = storage.Uploads.Remove(s.ImageURL)
		}
		s.ImageURL = path
	}
	if fh, err := c.FormFile("pdf"); err == nil {
		path, err := storage.Uploads.Save(fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store pdf"})
			return
		}
		if s.PDFURL != "" {
			_ = storage.Uploads.Remove(s.PDFURL)
		}
		s.PDFURL = path
	}

	if err := database.DB.Save(&s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update script"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// DELETE /api/scripts/:id
func Delete(c *gin.Context) {
	id := c.Param("id")

	var s scripts.Script
	if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Script not found"})
		return
	}
	if err := database.DB.Delete(&s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete script"})
		return
	}
	if s.ImageURL != "" {
		_ = storage.Uploads.Remove(s.ImageURL)
	}
	if s.PDFURL != "" {
		_ = storage.Uploads.Remove(s.PDFURL)
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
