package media

import (
	"net/http"

	"portfolio-admin/database"
	"portfolio-admin/internal/domain/media"
	"portfolio-admin/internal/storage"

	"github.com/gin-gonic/gin"
)

// GET /api/images
func ListImages(c *gin.Context) {
	var images []media.Image
	if err := database.DB.Order("created_at ASC").Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load images"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// POST /api/images/upload - accepts multiple files under "images". The batch
// is all-or-nothing: if any row fails, every file written here is removed.
func UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required"})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one image required"})
		return
	}

	paths, err := storage.Uploads.SaveAll(files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store images"})
		return
	}

	created := make([]media.Image, 0, len(files))
	for i, fh := range files {
		created = append(created, media.Image{Filename: fh.Filename, Path: paths[i]})
	}
	if err := database.DB.Create(&created).Error; err != nil {
		storage.Uploads.RemoveAll(paths)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save images"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DELETE /api/images/:id
func DeleteImage(c *gin.Context) {
	id := c.Param("id")

	var img media.Image
	if err := database.DB.First(&img, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	if err := database.DB.Delete(&img).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	_ = storage.Uploads.Remove(img.Path)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
