package controllers

import (
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"simple-ecommerce/config"
	"simple-ecommerce/libs"
	"simple-ecommerce/models"
	"simple-ecommerce/services"
	"simple-ecommerce/utils"
)

type ProductController struct {
	products *services.ProductService
	cfg      *config.Config
}

func NewProductController(products *services.ProductService, cfg *config.Config) *ProductController {
	return &ProductController{products: products, cfg: cfg}
}

// GetAll godoc
// @Summary List products
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAll(c *gin.Context) {
	products, err := ctrl.products.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	for i := range products {
		withImageURL(c, &products[i])
	}
	respondOK(c, http.StatusOK, "Get all products successful", products)
}

// GetByID godoc
// @Summary Get product by ID
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	product, err := ctrl.products.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	withImageURL(c, product)
	respondOK(c, http.StatusOK, "Get product successful", product)
}

// GetByInventory godoc
// @Summary List products in an inventory
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param inventoryId path int true "Inventory ID"
// @Success 200 {object} models.Response
// @Router /products/inventory/{inventoryId} [get]
func (ctrl *ProductController) GetByInventory(c *gin.Context) {
	inventoryID, _ := strconv.Atoi(c.Param("inventoryId"))

	products, err := ctrl.products.ListByInventory(c.Request.Context(), inventoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	for i := range products {
		withImageURL(c, &products[i])
	}
	respondOK(c, http.StatusOK, "Get products by inventory successful", products)
}

// Create godoc
// @Summary Create product
// @Tags Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param price formData int true "Price"
// @Param stock formData int true "Stock"
// @Param description formData string true "Description"
// @Param inventoryId formData int true "Inventory ID"
// @Param image formData file true "Product image"
// @Success 201 {object} models.Response
// @Router /products [post]
func (ctrl *ProductController) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	if req.Name == "" || req.Price == 0 || req.Stock == 0 || req.Description == "" || req.InventoryID == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "All fields are required",
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Image is required",
		})
		return
	}

	image, err := ctrl.storeImage(c, fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Image:       image,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		InventoryID: req.InventoryID,
	}

	product, err = ctrl.products.Create(c.Request.Context(), product)
	if err != nil {
		// A rejected create must not leave the uploaded file behind.
		utils.DeleteImage(ctrl.cfg.UploadDir, image)
		respondError(c, err)
		return
	}

	withImageURL(c, product)
	respondOK(c, http.StatusCreated, "Product created successfully", product)
}

// Update godoc
// @Summary Update product
// @Tags Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /products/{id} [put]
func (ctrl *ProductController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	existing, err := ctrl.products.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	oldImage := existing.Image

	image := ""
	if fileHeader, err := c.FormFile("image"); err == nil {
		image, err = ctrl.storeImage(c, fileHeader)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}
	}

	product, err := ctrl.products.Update(c.Request.Context(), id, req, image)
	if err != nil {
		utils.DeleteImage(ctrl.cfg.UploadDir, image)
		respondError(c, err)
		return
	}

	if image != "" && oldImage != "" {
		utils.DeleteImage(ctrl.cfg.UploadDir, oldImage)
	}

	withImageURL(c, product)
	respondOK(c, http.StatusOK, "Product updated successfully", product)
}

// Delete godoc
// @Summary Delete product
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /products/{id} [delete]
func (ctrl *ProductController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	product, err := ctrl.products.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.DeleteImage(ctrl.cfg.UploadDir, product.Image)
	respondOK(c, http.StatusOK, "Product deleted successfully", nil)
}

// storeImage saves the upload locally and offloads it to Cloudinary
// when configured, returning either the filename or the hosted URL.
func (ctrl *ProductController) storeImage(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	filename, err := utils.SaveImage(c, fileHeader, ctrl.cfg.UploadDir, ctrl.cfg.MaxUploadSize)
	if err != nil {
		return "", err
	}

	if ctrl.cfg.CloudinaryURL != "" {
		url, err := libs.UploadToCloudinary(ctrl.cfg.CloudinaryURL, ctrl.cfg.UploadDir, filename)
		if err != nil {
			log.Println("Cloudinary upload failed, keeping local file:", err)
			return filename, nil
		}
		return url, nil
	}

	return filename, nil
}
