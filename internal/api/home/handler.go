package home

import (
	"net/http"

	"portfolio-admin/database"
	"portfolio-admin/internal/domain/home"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// The homepage text and link blocks are singletons, but the site consumes
// them array-wrapped, so the GETs keep that wire shape.

// GET /api/textLink/bigText
func GetBigText(c *gin.Context) {
	var rows []home.BigText
	if err := database.DB.Limit(1).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load text"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /api/textLink/bigText - upsert.
func SetBigText(c *gin.Context) {
	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var row home.BigText
	if err := database.DB.First(&row).Error; err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load text"})
		return
	}
	row.Text = input.Text
	if err := database.DB.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save text"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// GET /api/textLink/link
func GetLinks(c *gin.Context) {
	var rows []home.LinkSet
	if err := database.DB.Limit(1).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load links"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /api/textLink/link - upsert.
func SetLinks(c *gin.Context) {
	var input struct {
		GeneralTitle string `json:"generalTitle" binding:"required"`
		GeneralURL   string `json:"generalUrl" binding:"required"`
		InstaTitle   string `json:"instaTitle" binding:"required"`
		InstaURL     string `json:"instaUrl" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var row home.LinkSet
	if err := database.DB.First(&row).Error; err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load links"})
		return
	}
	row.GeneralTitle = input.GeneralTitle
	row.GeneralURL = input.GeneralURL
	row.InstaTitle = input.InstaTitle
	row.InstaURL = input.InstaURL
	if err := database.DB.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save links"})
		return
	}
	c.JSON(http.StatusOK, row)
}
