package skills

import (
	"net/http"

	"portfolio-admin/database"
	"portfolio-admin/internal/domain/skills"

	"github.com/gin-gonic/gin"
)

type entryInput struct {
	Name       string `json:"name" binding:"required"`
	Percentage *int   `json:"percentage" binding:"required,min=0,max=100"`
}

// GET /api/skills
func ListSkills(c *gin.Context) {
	var items []skills.Skill
	if err := database.DB.Order("created_at ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load skills"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/skills
func CreateSkill(c *gin.Context) {
	var input entryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := skills.Skill{Name: input.Name, Percentage: *input.Percentage}
	if err := database.DB.Create(&s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save skill"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

// PUT /api/skills/:id
func UpdateSkill(c *gin.Context) {
	var input entryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var s skills.Skill
	if err := database.DB.First(&s, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}
	s.Name = input.Name
	s.Percentage = *input.Percentage
	if err := database.DB.Save(&s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skill"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// DELETE /api/skills/:id
func DeleteSkill(c *gin.Context) {
	res := database.DB.Delete(&skills.Skill{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete skill"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GET /api/strength
func ListStrengths(c *gin.Context) {
	var items []skills.Strength
	if err := database.DB.Order("created_at ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load strengths"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/strength
func CreateStrength(c *gin.Context) {
	var input entryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := skills.Strength{Name: input.Name, Percentage: *input.Percentage}
	if err := database.DB.Create(&s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save strength"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

// PUT /api/strength/:id
func UpdateStrength(c *gin.Context) {
	var input entryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var s skills.Strength
	if err := database.DB.First(&s, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Strength not found"})
		return
	}
	s.Name = input.Name
	s.Percentage = *input.Percentage
	if err := database.DB.Save(&s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update strength"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// DELETE /api/strength/:id
func DeleteStrength(c *gin.Context) {
	res := database.DB.Delete(&skills.Strength{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete strength"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Strength not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
