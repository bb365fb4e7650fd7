package controllers

import (
	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// MaxProductImages caps the number of images per product
const MaxProductImages = 10

// DeleteImageRequest names the image to remove
type DeleteImageRequest struct {
	URL string `json:"url" binding:"required"`
}

// UploadProductImages accepts multipart "images" files and appends their URLs.
// Files go to the configured image host, or to the local uploads directory without one.
func UploadProductImages(c *gin.Context) {
	utils.LogInfo("UploadProductImages called")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequest(c, "Invalid multipart form", err.Error())
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequest(c, "No images provided", "Use the 'images' form field")
		return
	}
	for _, file := range files {
		if err := utils.ValidateImageFile(file); err != nil {
			utils.LogError("Rejected image %s: %v", file.Filename, err)
			utils.BadRequest(c, "Invalid image", gin.H{"file": file.Filename, "reason": err.Error()})
			return
		}
	}

	product, err := utils.GetProductByID(id)
	if err != nil {
		utils.RespondError(c, "Product", err)
		return
	}
	if len(product.Images)+len(files) > MaxProductImages {
		utils.BadRequest(c, "Too many images", gin.H{"max": MaxProductImages, "current": len(product.Images)})
		return
	}

	cfg := config.Current()
	host := utils.NewImageHost(cfg.ImageHostURL, cfg.ImageHostAPIKey)
	urls := make([]string, 0, len(files))
	for _, file := range files {
		var url string
		if host != nil {
			url, err = host.Upload(c.Request.Context(), file)
		} else {
			url, err = utils.SaveUploadedFile(file, utils.UploadDir)
		}
		if err != nil {
			utils.LogError("Image upload failed for product %d: %v", id, err)
			utils.Error(c, 502, "Image upload failed", nil)
			return
		}
		urls = append(urls, url)
	}

	product.Images = append(product.Images, urls...)
	if err := config.DB.Model(product).Select("images").Updates(product).Error; err != nil {
		utils.RespondError(c, "Failed to save images", err)
		return
	}

	utils.LogInfo("Uploaded %d images for product %d", len(urls), id)
	utils.Success(c, utils.MsgUploadSuccess, gin.H{"uploaded": urls, "images": product.Images})
}

// DeleteProductImage removes an image URL from a product
func DeleteProductImage(c *gin.Context) {
	utils.LogInfo("DeleteProductImage called")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req DeleteImageRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := utils.GetProductByID(id)
	if err != nil {
		utils.RespondError(c, "Product", err)
		return
	}

	remaining := make([]string, 0, len(product.Images))
	found := false
	for _, img := range product.Images {
		if img == req.URL && !found {
			found = true
			continue
		}
		remaining = append(remaining, img)
	}
	if !found {
		utils.NotFound(c, "Image not found on product")
		return
	}

	product.Images = remaining
	if err := config.DB.Model(product).Select("images").Updates(product).Error; err != nil {
		utils.RespondError(c, "Failed to remove image", err)
		return
	}
	if err := utils.DeleteLocalImage(req.URL, utils.UploadDir); err != nil {
		utils.LogError("Failed to delete local image %s: %v", req.URL, err)
	}

	utils.LogInfo("Removed image from product %d", id)
	utils.Success(c, "Image removed successfully", gin.H{"images": product.Images})
}
