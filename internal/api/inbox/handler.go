package inbox

import (
	"net/http"

	"portfolio-admin/database"
	"portfolio-admin/internal/domain/inbox"

	"github.com/gin-gonic/gin"
)

// GET /api/queries - newest first, it is an inbox.
func List(c *gin.Context) {
	var items []inbox.Query
	if err := database.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load queries"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/queries - public endpoint behind the site's contact form.
func Create(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		InquiryType string `json:"inquiryType"`
		Budget      string `json:"budget"`
		Message     string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := inbox.Query{
		Name:        input.Name,
		Email:       input.Email,
		InquiryType: input.InquiryType,
		Budget:      input.Budget,
		Message:     input.Message,
	}
	if err := database.DB.Create(&q).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save query"})
		return
	}
	c.JSON(http.StatusCreated, q)
}

// DELETE /api/queries/:id
func Delete(c *gin.Context) {
	res := database.DB.Delete(&inbox.Query{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete query"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Query not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
