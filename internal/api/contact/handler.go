package contact

import (
	"net/http"

	"portfolio-admin/database"
	"portfolio-admin/internal/app/http/middleware"
	"portfolio-admin/internal/domain/contact"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// The contact screen posts its link entries as multipart even though they
// carry no files; both multipart and JSON are accepted here.

func bindLink(c *gin.Context) (heading, contactURL string, ok bool) {
	if c.ContentType() == "application/json" {
		var input struct {
			Heading    string `json:"heading"`
			ContactURL string `json:"contactUrl"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return "", "", false
		}
		heading, contactURL = input.Heading, input.ContactURL
	} else {
		heading = c.PostForm("heading")
		contactURL = c.PostForm("contactUrl")
	}

	heading = middleware.SanitizeText(heading)
	if heading == "" || contactURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "heading and contactUrl are required"})
		return "", "", false
	}
	return heading, contactURL, true
}

// GET /api/contact
func List(c *gin.Context) {
	var items []contact.Contact
	if err := database.DB.Order("created_at ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contacts"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/contact
func Create(c *gin.Context) {
	heading, contactURL, ok := bindLink(c)
	if !ok {
		return
	}

	item := contact.Contact{Heading: heading, ContactURL: contactURL}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /api/contact/:id
func Update(c *gin.Context) {
	var item contact.Contact
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	heading, contactURL, ok := bindLink(c)
	if !ok {
		return
	}
	item.Heading = heading
	item.ContactURL = contactURL
	if err := database.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /api/contact/:id
func Delete(c *gin.Context) {
	res := database.DB.Delete(&contact.Contact{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GET /api/contact/details
func GetDetails(c *gin.Context) {
	var d contact.ContactDetails
	err := database.DB.First(&d).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contact details"})
		return
	}
	c.JSON(http.StatusOK, d)
}

// POST /api/contact/details - upserts the singleton.
func UpsertDetails(c *gin.Context) {
	var input struct {
		PhoneNumber string `json:"phoneNumber" binding:"required"`
		MainID      string `json:"mainId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var d contact.ContactDetails
	if err := database.DB.First(&d).Error; err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contact details"})
		return
	}
	d.PhoneNumber = input.PhoneNumber
	d.MainID = input.MainID
	if err := database.DB.Save(&d).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact details"})
		return
	}
	c.JSON(http.StatusOK, d)
}
