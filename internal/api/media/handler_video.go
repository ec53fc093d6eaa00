package media

import (
	"net/http"

	"portfolio-admin/database"
	"portfolio-admin/internal/domain/media"
	"portfolio-admin/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/video/latest - the roll is append-only, the newest upload wins.
func LatestVideo(c *gin.Context) {
	var v media.Video
	err := database.DB.Order("created_at DESC").First(&v).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{"videoUrl": ""})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load video"})
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/video/add
func AddVideo(c *gin.Context) {
	fh, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file required"})
		return
	}

	path, err := storage.Uploads.Save(fh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store video"})
		return
	}

	v := media.Video{VideoURL: path}
	if err := database.DB.Create(&v).Error; err != nil {
		_ = storage.Uploads.Remove(path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save video"})
		return
	}
	c.JSON(http.StatusCreated, v)
}
