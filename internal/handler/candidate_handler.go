package handler

import (
	"net/http"

	"procurehub/internal/middleware"
	"procurehub/internal/model"
	"procurehub/internal/service"
	"procurehub/pkg/pagination"
	"procurehub/pkg/response"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	screeningService service.ScreeningService
}

func NewCandidateHandler(screeningService service.ScreeningService) *CandidateHandler {
	return &CandidateHandler{screeningService: screeningService}
}

func (h *CandidateHandler) RegisterRoutes(router *gin.RouterGroup) {
	candidates := router.Group("/api/candidates")
	{
		candidates.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.CreateCandidate)
		candidates.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.ListCandidates)
		candidates.GET("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.GetCandidate)
		candidates.PUT("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.UpdateCandidate)
		candidates.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.DeleteCandidate)
		candidates.POST("/:id/screen", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.ScreenCandidate)
		candidates.POST("/screen", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.ScreenProfile)
	}
}

// CreateCandidate registers a new candidate in the pipeline
// @Summary      Create candidate
// @Description  Registers a new candidate with skills, experience and location
// @Tags         candidates
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateCandidateDTO  true  "Create Candidate Payload"
// @Success      201      {object}  response.Response{data=service.CandidateResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/candidates [post]
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req service.CreateCandidateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, _ := c.Get("userID")
	userIDStr, _ := userID.(string)

	candidate, err := h.screeningService.CreateCandidate(c.Request.Context(), userIDStr, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, candidate))
}

// ListCandidates returns a paginated candidate list
// @Summary      List candidates
// @Description  Retrieves a paginated list of candidates, optionally filtered by pipeline status
// @Tags         candidates
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "Filter by status (New, Screening, Interview, Hired, Rejected)"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Paginated{data=[]service.CandidateResponse}
// @Failure      500     {object}  response.Response
// @Router       /api/candidates [get]
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	params := pagination.Parse(c)

	candidates, total, err := h.screeningService.ListCandidates(c.Request.Context(), c.Query("status"), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, candidates, total, params.Page, params.Limit))
}

// GetCandidate returns a candidate by ID
// @Summary      Get candidate
// @Description  Retrieves a single candidate by ID
// @Tags         candidates
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=service.CandidateResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/candidates/{id} [get]
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	candidate, err := h.screeningService.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, candidate))
}

// UpdateCandidate modifies a candidate's profile or pipeline status
// @Summary      Update candidate
// @Description  Updates a candidate's name, skills, experience, location or status
// @Tags         candidates
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Candidate ID"
// @Param        payload  body      service.UpdateCandidateDTO  true  "Update Candidate Payload"
// @Success      200      {object}  response.Response{data=service.CandidateResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/candidates/{id} [put]
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	var req service.UpdateCandidateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, _ := c.Get("userID")
	userIDStr, _ := userID.(string)

	candidate, err := h.screeningService.UpdateCandidate(c.Request.Context(), userIDStr, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, candidate))
}

// DeleteCandidate removes a candidate
// @Summary      Delete candidate
// @Description  Removes a candidate from the pipeline
// @Tags         candidates
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/candidates/{id} [delete]
func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	userID, _ := c.Get("userID")
	userIDStr, _ := userID.(string)

	if err := h.screeningService.DeleteCandidate(c.Request.Context(), userIDStr, c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Candidate deleted"}))
}

// ScreenCandidate scores a stored candidate and updates its status
// @Summary      Screen candidate
// @Description  Scores a stored candidate and moves them to Interview or Rejected
// @Tags         candidates
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=service.ScreenCandidateResponse}
// @Failure      400  {object}  response.Response
// @Router       /api/candidates/{id}/screen [post]
func (h *CandidateHandler) ScreenCandidate(c *gin.Context) {
	userID, _ := c.Get("userID")
	userIDStr, _ := userID.(string)

	result, err := h.screeningService.ScreenCandidate(c.Request.Context(), userIDStr, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// ScreenProfile scores an ad-hoc profile without storing it
// @Summary      Screen ad-hoc profile
// @Description  Scores a skills/experience/location profile without creating a candidate
// @Tags         candidates
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ScreenProfileDTO  true  "Profile Payload"
// @Success      200      {object}  response.Response{data=engine.ScreeningResult}
// @Failure      400      {object}  response.Response
// @Router       /api/candidates/screen [post]
func (h *CandidateHandler) ScreenProfile(c *gin.Context) {
	var req service.ScreenProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.screeningService.ScreenProfile(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
