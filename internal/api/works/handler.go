package works

import (
	"mime/multipart"
	"net/http"

	"portfolio-admin/database"
	"portfolio-admin/internal/app/http/middleware"
	"portfolio-admin/internal/domain/works"
	"portfolio-admin/internal/storage"

	"github.com/gin-gonic/gin"
)

// Characters live under /api/content and environments under
// /api/environment; both are served by the same handlers parameterized by
// kind.

// GET /api/<kind base>
func List(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []works.WorkItem
		err := database.DB.
			Where("kind = ?", kind).
			Order("created_at ASC").
			Find(&items).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load works"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /api/<kind base>/upload - multipart create. File writes precede the
// row create; on failure everything written is removed so a rejected payload
// uploads nothing.
func Create(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := middleware.SanitizeText(c.PostForm("title"))
		description := middleware.SanitizeText(c.PostForm("description"))
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required"})
			return
		}

		item := works.WorkItem{
			Kind:        kind,
			Title:       title,
			Description: description,
		}
		var written []string
		if err := saveFileFields(form, &item, &written); err != nil {
			storage.Uploads.RemoveAll(written)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store files"})
			return
		}

		if err := database.DB.Create(&item).Error; err != nil {
			storage.Uploads.RemoveAll(written)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save work item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /api/<kind base>/:id - text fields always overwrite; file fields only
// when replacements were uploaded, in which case the old files are removed.
func Update(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var item works.WorkItem
		if err := database.DB.First(&item, "id = ? AND kind = ?", id, kind).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Work item not found"})
			return
		}

		if title := c.PostForm("title"); title != "" {
			item.Title = middleware.SanitizeText(title)
		}
		item.Description = middleware.SanitizeText(c.PostForm("description"))

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required"})
			return
		}

		replaced := works.WorkItem{MainImages: item.MainImages, Images: item.Images, Videos: item.Videos}
		var written []string
		if err := saveFileFields(form, &item, &written); err != nil {
			storage.Uploads.RemoveAll(written)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store files"})
			return
		}

		if err := database.DB.Save(&item).Error; err != nil {
			storage.Uploads.RemoveAll(written)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update work item"})
			return
		}

		// drop files that were replaced in this request
		if len(written) > 0 {
			if len(form.File["mainImages"]) > 0 {
				storage.Uploads.RemoveAll(replaced.MainImages)
			}
			if len(form.File["images"]) > 0 {
				storage.Uploads.RemoveAll(replaced.Images)
			}
			if len(form.File["videos"]) > 0 {
				storage.Uploads.RemoveAll(replaced.Videos)
			}
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/<kind base>/:id
func Delete(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var item works.WorkItem
		if err := database.DB.First(&item, "id = ? AND kind = ?", id, kind).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Work item not found"})
			return
		}
		if err := database.DB.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete work item"})
			return
		}
		storage.Uploads.RemoveAll(item.AllFiles())

		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// saveFileFields stores the uploaded mainImages/images/videos files and
// rewrites the item's file lists for every field that got replacements.
// Written paths are appended to *written* for cleanup on later failure.
func saveFileFields(form *multipart.Form, item *works.WorkItem, written *[]string) error {
	if fhs := form.File["mainImages"]; len(fhs) > 0 {
		paths, err := storage.Uploads.SaveAll(fhs)
		if err != nil {
			return err
		}
		*written = append(*written, paths...)
		item.MainImages = paths
	}
	if fhs := form.File["images"]; len(fhs) > 0 {
		paths, err := storage.Uploads.SaveAll(fhs)
		if err != nil {
			return err
		}
		*written = append(*written, paths...)
		item.Images = paths
	}
	if fhs := form.File["videos"]; len(fhs) > 0 {
		paths, err := storage.Uploads.SaveAll(fhs)
		if err != nil {
			return err
		}
		*written = append(*written, paths...)
		item.Videos = paths
	}
	return nil
}
