package handler

import (
	"net/http"

	"procurehub/internal/middleware"
	"procurehub/internal/model"
	"procurehub/internal/service"
	"procurehub/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler exposes the engine's lookup tables for admin maintenance.
type ReferenceHandler struct {
	referenceService service.ReferenceService
}

func NewReferenceHandler(referenceService service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

func (h *ReferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	reference := router.Group("/api/reference")
	{
		reference.GET("/suppliers", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.ListSuppliers)
		reference.PUT("/suppliers", middleware.RequireRole(model.RoleAdmin), h.UpsertSupplier)
		reference.GET("/budgets", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.ListBudgets)
		reference.PUT("/budgets", middleware.RequireRole(model.RoleAdmin), h.UpsertBudget)
		reference.GET("/approval-limits", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.ListApprovalLimits)
		reference.PUT("/approval-limits", middleware.RequireRole(model.RoleAdmin), h.UpsertApprovalLimit)
		reference.GET("/inventory", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.ListInventory)
		reference.PUT("/inventory", middleware.RequireRole(model.RoleAdmin), h.UpsertInventory)
	}
}

// ListSuppliers returns supplier offers, optionally for a single item
// @Summary      List suppliers
// @Description  Returns the supplier catalog, optionally filtered by item
// @Tags         reference
// @Security     BearerAuth
// @Produce      json
// @Param        item  query     string  false  "Filter by item"
// @Success      200   {object}  response.Response{data=[]model.SupplierOffer}
// @Failure      500   {object}  response.Response
// @Router       /api/reference/suppliers [get]
func (h *ReferenceHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.referenceService.ListSuppliers(c.Request.Context(), c.Query("item"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, suppliers))
}

// UpsertSupplier creates or updates a supplier offer
// @Summary      Upsert supplier
// @Description  Creates or updates a supplier offer for an item
// @Tags         reference
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpsertSupplierDTO  true  "Supplier Payload"
// @Success      200      {object}  response.Response{data=model.SupplierOffer}
// @Failure      400      {object}  response.Response
// @Router       /api/reference/suppliers [put]
func (h *ReferenceHandler) UpsertSupplier(c *gin.Context) {
	var req service.UpsertSupplierDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, _ := c.Get("userID")
	userIDStr, _ := userID.(string)

	supplier, err := h.referenceService.UpsertSupplier(c.Request.Context(), userIDStr, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, supplier))
}

// ListBudgets returns all department budgets
// @Summary      List budgets
// @Description  Returns every department budget ledger
// @Tags         reference
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.DepartmentBudget}
// @Failure      500  {object}  response.Response
// @Router       /api/reference/budgets [get]
func (h *ReferenceHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.referenceService.ListBudgets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, budgets))
}

// UpsertBudget creates or updates a department budget
// @Summary      Upsert budget
// @Description  Creates or updates a department budget; remaining is derived from total minus used
// @Tags         reference
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpsertBudgetDTO  true  "Budget Payload"
// @Success      200      {object}  response.Response{data=model.DepartmentBudget}
// @Failure      400      {object}  response.Response
// @Router       /api/reference/budgets [put]
func (h *ReferenceHandler) UpsertBudget(c *gin.Context) {
	var req service.UpsertBudgetDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, _ := c.Get("userID")
	userIDStr, _ := userID.(string)

	budget, err := h.referenceService.UpsertBudget(c.Request.Context(), userIDStr, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, budget))
}

// ListApprovalLimits returns the approval matrix for every department
// @Summary      List approval limits
// @Description  Returns per-department approval tier thresholds
// @Tags         reference
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.ApprovalLimit}
// @Failure      500  {object}  response.Response
// @Router       /api/reference/approval-limits [get]
func (h *ReferenceHandler) ListApprovalLimits(c *gin.Context) {
	limits, err := h.referenceService.ListApprovalLimits(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, limits))
}

// UpsertApprovalLimit creates or updates a department's approval thresholds
// @Summary      Upsert approval limits
// @Description  Creates or updates approval tier thresholds; manager < director < vp is enforced
// @Tags         reference
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpsertApprovalLimitDTO  true  "Approval Limits Payload"
// @Success      200      {object}  response.Response{data=model.ApprovalLimit}
// @Failure      400      {object}  response.Response
// @Router       /api/reference/approval-limits [put]
func (h *ReferenceHandler) UpsertApprovalLimit(c *gin.Context) {
	var req service.UpsertApprovalLimitDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, _ := c.Get("userID")
	userIDStr, _ := userID.(string)

	limit, err := h.referenceService.UpsertApprovalLimit(c.Request.Context(), userIDStr, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, limit))
}

// ListInventory returns stock levels for every tracked item
// @Summary      List inventory
// @Description  Returns current stock levels for all tracked items
// @Tags         reference
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.InventoryLevel}
// @Failure      500  {object}  response.Response
// @Router       /api/reference/inventory [get]
func (h *ReferenceHandler) ListInventory(c *gin.Context) {
	inventory, err := h.referenceService.ListInventory(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, inventory))
}

// UpsertInventory creates or updates an item's stock record
// @Summary      Upsert inventory
// @Description  Creates or updates stock levels for an item; current must not exceed maximum
// @Tags         reference
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpsertInventoryDTO  true  "Inventory Payload"
// @Success      200      {object}  response.Response{data=model.InventoryLevel}
// @Failure      400      {object}  response.Response
// @Router       /api/reference/inventory [put]
func (h *ReferenceHandler) UpsertInventory(c *gin.Context) {
	var req service.UpsertInventoryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, _ := c.Get("userID")
	userIDStr, _ := userID.(string)

	record, err := h.referenceService.UpsertInventory(c.Request.Context(), userIDStr, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}
