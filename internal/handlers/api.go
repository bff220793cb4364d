package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mertkaya/platformhub/internal/middleware"
	"github.com/mertkaya/platformhub/internal/models"
	"github.com/mertkaya/platformhub/internal/services"
)

// APIHandler serves the JSON surface consumed by API clients.
type APIHandler struct {
	authService    *services.AuthService
	projectService *services.ProjectService
	itemService    *services.ProjectItemService
}

func NewAPIHandler(authService *services.AuthService, projectService *services.ProjectService,
	itemService *services.ProjectItemService) *APIHandler {
	return &APIHandler{
		authService:    authService,
		projectService: projectService,
		itemService:    itemService,
	}
}

type createProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type updateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// UserProfile returns the signed-in user's profile
func (h *APIHandler) UserProfile(c *gin.Context) {
	session := middleware.GetSession(c)

	user := h.authService.CurrentUser(session.UserID)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":              user.ID,
			"email":           user.Email,
			"email_confirmed": user.EmailConfirmed,
			"created_at":      user.CreatedAt,
			"last_sign_in_at": user.LastSignInAt,
		},
	})
}

// Projects returns the user's projects with their items nested as resources
func (h *APIHandler) Projects(c *gin.Context) {
	session := middleware.GetSession(c)

	if _, err := uuid.Parse(session.UserID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	projects := h.projectService.ListProjects(session.UserID)

	payload := make([]gin.H, 0, len(projects))
	for _, project := range projects {
		items := h.itemService.ListItems(project.ID.String())
		if items == nil {
			items = []*models.ProjectItem{}
		}

		payload = append(payload, gin.H{
			"id":          project.ID,
			"title":       project.Title,
			"description": project.Description,
			"status":      project.Status,
			"created_at":  project.CreatedAt,
			"updated_at":  project.UpdatedAt,
			"resources":   items,
		})
	}

	c.JSON(http.StatusOK, gin.H{"projects": payload})
}

// CreateProject creates a project owned by the signed-in user
func (h *APIHandler) CreateProject(c *gin.Context) {
	session := middleware.GetSession(c)

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	project, err := h.projectService.CreateProject(session.UserID, req.Title, req.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// UpdateProject applies a partial update to a project
func (h *APIHandler) UpdateProject(c *gin.Context) {
	project := h.ownedProject(c)
	if project == nil {
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := h.projectService.UpdateProject(project.ID.String(), services.ProjectUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": updated})
}

// DeleteProject removes a project together with its items
func (h *APIHandler) DeleteProject(c *gin.Context) {
	project := h.ownedProject(c)
	if project == nil {
		return
	}

	if !h.projectService.DeleteProject(project.ID.String()) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *APIHandler) ownedProject(c *gin.Context) *models.Project {
	session := middleware.GetSession(c)

	project := h.projectService.GetProject(c.Param("id"))
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return nil
	}

	if project.OwnerID.String() != session.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return nil
	}

	return project
}
