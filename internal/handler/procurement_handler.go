package handler

import (
	"net/http"
	"strconv"

	"procurehub/internal/middleware"
	"procurehub/internal/model"
	"procurehub/internal/service"
	"procurehub/pkg/pagination"
	"procurehub/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProcurementHandler struct {
	procurementService service.ProcurementService
}

func NewProcurementHandler(procurementService service.ProcurementService) *ProcurementHandler {
	return &ProcurementHandler{procurementService: procurementService}
}

func (h *ProcurementHandler) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/api/requests")
	{
		requests.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.EvaluateRequest)
		requests.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.ListDecisions)
		requests.GET("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.GetDecision)
	}

	// Single-check previews for the request form
	preview := router.Group("/api/preview")
	{
		preview.GET("/suppliers", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.PreviewSuppliers)
		preview.GET("/budget", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.PreviewBudget)
		preview.GET("/approval", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.PreviewApproval)
		preview.GET("/inventory", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.PreviewInventory)
	}
}

// EvaluateRequest runs the full purchase evaluation pipeline and stores the decision
// @Summary      Evaluate purchase request
// @Description  Runs supplier selection, budget, approval-tier and inventory checks and persists the resulting decision
// @Tags         requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.EvaluateRequestDTO  true  "Purchase Request Payload"
// @Success      201      {object}  response.Response{data=service.DecisionResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/requests [post]
func (h *ProcurementHandler) EvaluateRequest(c *gin.Context) {
	var req service.EvaluateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, _ := c.Get("userID")
	userIDStr, _ := userID.(string)

	decision, err := h.procurementService.EvaluateRequest(c.Request.Context(), userIDStr, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, decision))
}

// ListDecisions returns a paginated decision history
// @Summary      List decisions
// @Description  Retrieves a paginated list of evaluated requests, optionally filtered by status, department or item
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        status      query     string  false  "Filter by status (approved, pending_approval, rejected)"
// @Param        department  query     string  false  "Filter by department"
// @Param        item        query     string  false  "Filter by item"
// @Param        page        query     int     false  "Page number (default 1)"
// @Param        limit       query     int     false  "Number of items per page (default 20)"
// @Success      200         {object}  response.Paginated{data=[]service.DecisionResponse}
// @Failure      500         {object}  response.Response
// @Router       /api/requests [get]
func (h *ProcurementHandler) ListDecisions(c *gin.Context) {
	params := pagination.Parse(c)

	filter := service.DecisionFilter{
		Status:     c.Query("status"),
		Department: c.Query("department"),
		Item:       c.Query("item"),
		Page:       params.Page,
		Limit:      params.Limit,
	}

	decisions, total, err := h.procurementService.ListDecisions(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, decisions, total, params.Page, params.Limit))
}

// GetDecision returns a stored decision by ID
// @Summary      Get decision
// @Description  Retrieves a single evaluated request with its full decision snapshot
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Decision ID"
// @Success      200  {object}  response.Response{data=service.DecisionResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/requests/{id} [get]
func (h *ProcurementHandler) GetDecision(c *gin.Context) {
	decision, err := h.procurementService.GetDecision(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, decision))
}

// PreviewSuppliers looks up suppliers that can fill an order
// @Summary      Preview suppliers
// @Description  Returns suppliers able to cover the requested quantity for an item
// @Tags         preview
// @Security     BearerAuth
// @Produce      json
// @Param        item      query     string  true  "Item name"
// @Param        quantity  query     int     true  "Requested quantity"
// @Success      200       {object}  response.Response{data=engine.SupplierResult}
// @Failure      400       {object}  response.Response
// @Router       /api/preview/suppliers [get]
func (h *ProcurementHandler) PreviewSuppliers(c *gin.Context) {
	item := c.Query("item")
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if item == "" || err != nil || quantity <= 0 {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "item and a positive quantity are required"))
		return
	}

	result, err := h.procurementService.PreviewSuppliers(c.Request.Context(), item, quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// PreviewBudget checks a department budget against an amount
// @Summary      Preview budget check
// @Description  Returns the budget verdict for a department and amount without recording anything
// @Tags         preview
// @Security     BearerAuth
// @Produce      json
// @Param        department  query     string  true  "Department name"
// @Param        amount      query     string  true  "Amount to check"
// @Success      200         {object}  response.Response{data=engine.BudgetResult}
// @Failure      400         {object}  response.Response
// @Router       /api/preview/budget [get]
func (h *ProcurementHandler) PreviewBudget(c *gin.Context) {
	department := c.Query("department")
	amount := c.Query("amount")
	if department == "" || amount == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "department and amount are required"))
		return
	}

	result, err := h.procurementService.PreviewBudget(c.Request.Context(), department, amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// PreviewApproval resolves the approval tier for an amount
// @Summary      Preview approval tier
// @Description  Returns the required approval tier and estimated turnaround for a department and amount
// @Tags         preview
// @Security     BearerAuth
// @Produce      json
// @Param        department  query     string  true  "Department name"
// @Param        amount      query     string  true  "Amount to check"
// @Success      200         {object}  response.Response{data=engine.ApprovalResult}
// @Failure      400         {object}  response.Response
// @Router       /api/preview/approval [get]
func (h *ProcurementHandler) PreviewApproval(c *gin.Context) {
	department := c.Query("department")
	amount := c.Query("amount")
	if department == "" || amount == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "department and amount are required"))
		return
	}

	result, err := h.procurementService.PreviewApproval(c.Request.Context(), department, amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// PreviewInventory reports stock levels and reorder advice for an item
// @Summary      Preview inventory check
// @Description  Returns current stock, reorder flag and suggested order size for an item
// @Tags         preview
// @Security     BearerAuth
// @Produce      json
// @Param        item  query     string  true  "Item name"
// @Success      200   {object}  response.Response{data=engine.InventoryResult}
// @Failure      400   {object}  response.Response
// @Router       /api/preview/inventory [get]
func (h *ProcurementHandler) PreviewInventory(c *gin.Context) {
	item := c.Query("item")
	if item == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "item is required"))
		return
	}

	result, err := h.procurementService.PreviewInventory(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
