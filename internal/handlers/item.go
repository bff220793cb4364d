package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mertkaya/platformhub/internal/middleware"
	"github.com/mertkaya/platformhub/internal/models"
	"github.com/mertkaya/platformhub/internal/services"
)

type ItemHandler struct {
	projectService *services.ProjectService
	itemService    *services.ProjectItemService
	profileService *services.GitHubProfileService
}

func NewItemHandler(projectService *services.ProjectService, itemService *services.ProjectItemService,
	profileService *services.GitHubProfileService) *ItemHandler {
	return &ItemHandler{
		projectService: projectService,
		itemService:    itemService,
		profileService: profileService,
	}
}

type createItemRequest struct {
	Platform string `json:"platform" binding:"required"`
	Username string `json:"username"`
	Link     string `json:"link"`
	Notes    string `json:"notes"`
}

type updateItemRequest struct {
	Platform *string `json:"platform"`
	Username *string `json:"username"`
	Link     *string `json:"link"`
	Notes    *string `json:"notes"`
}

// ListItems returns a project's items, newest first
func (h *ItemHandler) ListItems(c *gin.Context) {
	project := h.ownedProject(c)
	if project == nil {
		return
	}

	items := h.itemService.ListItems(project.ID.String())
	if items == nil {
		items = []*models.ProjectItem{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateItem adds an item to a project
func (h *ItemHandler) CreateItem(c *gin.Context) {
	project := h.ownedProject(c)
	if project == nil {
		return
	}

	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := h.itemService.CreateItem(project.ID.String(), req.Platform, req.Username, req.Link, req.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// UpdateItem applies a partial update to an item
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	item := h.ownedItem(c)
	if item == nil {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := h.itemService.UpdateItem(item.ID.String(), services.ItemUpdate{
		Platform: req.Platform,
		Username: req.Username,
		Link:     req.Link,
		Notes:    req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": updated})
}

// DeleteItem removes an item
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	item := h.ownedItem(c)
	if item == nil {
		return
	}

	if !h.itemService.DeleteItem(item.ID.String()) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ItemPreview returns a cached GitHub profile preview for GitHub items that
// reference a username
func (h *ItemHandler) ItemPreview(c *gin.Context) {
	item := h.ownedItem(c)
	if item == nil {
		return
	}

	if !strings.EqualFold(item.Platform, "github") || item.Username == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No preview available for this item"})
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), item.Username)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// ownedProject loads the project from the :id parameter and enforces
// ownership; on failure it writes the response and returns nil.
func (h *ItemHandler) ownedProject(c *gin.Context) *models.Project {
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

// ownedItem loads the item from the :item_id parameter and checks that it
// belongs to the requested project.
func (h *ItemHandler) ownedItem(c *gin.Context) *models.ProjectItem {
	project := h.ownedProject(c)
	if project == nil {
		return nil
	}

	item := h.itemService.GetItem(c.Param("item_id"))
	if item == nil || item.ProjectID != project.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return nil
	}

	return item
}
