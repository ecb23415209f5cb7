package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"simple-ecommerce/models"
	"simple-ecommerce/services"
)

type InventoryController struct {
	inventories *services.InventoryService
}

func NewInventoryController(inventories *services.InventoryService) *InventoryController {
	return &InventoryController{inventories: inventories}
}

// GetAll godoc
// @Summary List inventories
// @Tags Inventories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /inventories [get]
func (ctrl *InventoryController) GetAll(c *gin.Context) {
	inventories, err := ctrl.inventories.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Get inventories successful", inventories)
}

// GetByID godoc
// @Summary Get inventory by ID
// @Tags Inventories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /inventories/{id} [get]
func (ctrl *InventoryController) GetByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	inventory, err := ctrl.inventories.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Get inventory successful", inventory)
}

// Create godoc
// @Summary Create inventory
// @Tags Inventories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.InventoryRequest true "Inventory"
// @Success 201 {object} models.Response
// @Router /inventories [post]
func (ctrl *InventoryController) Create(c *gin.Context) {
	var req models.InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	inventory, err := ctrl.inventories.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Inventory successfully created", inventory)
}

// Update godoc
// @Summary Update inventory
// @Tags Inventories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Inventory ID"
// @Param request body models.InventoryRequest true "Inventory"
// @Success 200 {object} models.Response
// @Router /inventories/{id} [put]
func (ctrl *InventoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	inventory, err := ctrl.inventories.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Update successful", inventory)
}

// Delete godoc
// @Summary Delete inventory
// @Tags Inventories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} models.Response
// @Router /inventories/{id} [delete]
func (ctrl *InventoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	inventory, err := ctrl.inventories.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Inventory deleted", inventory)
}
