package resume

import (
	"net/http"

	"portfolio-admin/database"
	"portfolio-admin/internal/domain/resume"

	"github.com/gin-gonic/gin"
)

// GET /api/education
func ListEducation(c *gin.Context) {
	var items []resume.Education
	if err := database.DB.Order("created_at ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load education"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/education
func CreateEducation(c *gin.Context) {
	var input struct {
		Degree     string `json:"degree" binding:"required"`
		School     string `json:"school" binding:"required"`
		Year       string `json:"year"`
		Percentage string `json:"percentage"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e := resume.Education{Degree: input.Degree, School: input.School, Year: input.Year, Percentage: input.Percentage}
	if err := database.DB.Create(&e).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save education"})
		return
	}
	c.JSON(http.StatusCreated, e)
}

// PUT /api/education/:id
func UpdateEducation(c *gin.Context) {
	var input struct {
		Degree     string `json:"degree" binding:"required"`
		School     string `json:"school" binding:"required"`
		Year       string `json:"year"`
		Percentage string `json:"percentage"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var e resume.Education
	if err := database.DB.First(&e, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Education entry not found"})
		return
	}
	e.Degree = input.Degree
	e.School = input.School
	e.Year = input.Year
	e.Percentage = input.Percentage
	if err := database.DB.Save(&e).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update education"})
		return
	}
	c.JSON(http.StatusOK, e)
}

// DELETE /api/education/:id
func DeleteEducation(c *gin.Context) {
	res := database.DB.Delete(&resume.Education{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete education"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Education entry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GET /api/experience
func ListExperience(c *gin.Context) {
	var items []resume.Experience
	if err := database.DB.Order("created_at ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load experience"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/experience
func CreateExperience(c *gin.Context) {
	var input struct {
		Position    string `json:"position" binding:"required"`
		Company     string `json:"company" binding:"required"`
		Years       string `json:"years"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e := resume.Experience{Position: input.Position, Company: input.Company, Years: input.Years, Description: input.Description}
	if err := database.DB.Create(&e).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save experience"})
		return
	}
	c.JSON(http.StatusCreated, e)
}

// PUT /api/experience/:id
func UpdateExperience(c *gin.Context) {
	var input struct {
		Position    string `json:"position" binding:"required"`
		Company     string `json:"company" binding:"required"`
		Years       string `json:"years"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var e resume.Experience
	if err := database.DB.First(&e, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Experience entry not found"})
		return
	}
	e.Position = input.Position
	e.Company = input.Company
	e.Years = input.Years
	e.Description = input.Description
	if err := database.DB.Save(&e).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update experience"})
		return
	}
	c.JSON(http.StatusOK, e)
}

// DELETE /api/experience/:id
func DeleteExperience(c *gin.Context) {
	res := database.DB.Delete(&resume.Experience{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete experience"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Experience entry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
