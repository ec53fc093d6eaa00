package about

import (
	"net/http"

	"portfolio-admin/database"
	"portfolio-admin/internal/app/http/middleware"
	"portfolio-admin/internal/domain/about"
	"portfolio-admin/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/about
func Get(c *gin.Context) {
	var a about.About
	err := database.DB.First(&a).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load about page"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /api/about - multipart upsert of the singleton. Text fields always
// overwrite; files only when a replacement was uploaded.
func Upsert(c *gin.Context) {
	var a about.About
	if err := database.DB.First(&a).Error; err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load about page"})
		return
	}

	a.Subheading = middleware.SanitizeText(c.PostForm("subheading"))
	a.Description = middleware.SanitizeText(c.PostForm("description"))
	a.PurpleText = middleware.SanitizeText(c.PostForm("purpleText"))

	if fh, err := c.FormFile("image"); err == nil {
		path, err := storage.Uploads.Save(fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		if a.Image != "" {
			_ = storage.Uploads.Remove(a.Image)
		}
		a.Image = path
	}
	if fh, err := c.FormFile("pdf"); err == nil {
		path, err := storage.Uploads.Save(fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store pdf"})
			return
		}
		if a.PDF != "" {
			_ = storage.Uploads.Remove(a.PDF)
		}
		a.PDF = path
	}

	if err := database.DB.Save(&a).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save about page"})
		return
	}
	c.JSON(http.StatusOK, a)
}
