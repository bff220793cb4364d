package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mertkaya/platformhub/internal/middleware"
	"github.com/mertkaya/platformhub/internal/models"
	"github.com/mertkaya/platformhub/internal/services"
	"github.com/mertkaya/platformhub/pkg/logger"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	itemService    *services.ProjectItemService
	exportService  *services.ExportService
}

func NewProjectHandler(projectService *services.ProjectService, itemService *services.ProjectItemService,
	exportService *services.ExportService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		itemService:    itemService,
		exportService:  exportService,
	}
}

// CreateProjectForm displays the create project form
func (h *ProjectHandler) CreateProjectForm(c *gin.Context) {
	session := middleware.GetSession(c)

	data := gin.H{
		"Title": "Create Project",
		"User":  session,
	}

	c.HTML(http.StatusOK, "create_project", data)
}

// CreateProject handles project creation
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	session := middleware.GetSession(c)

	title := c.PostForm("title")
	description := c.PostForm("description")

	project, err := h.projectService.CreateProject(session.UserID, title, description)
	if err != nil {
		data := gin.H{
			"Title":              "Create Project",
			"User":               session,
			"ProjectTitle":       title,
			"ProjectDescription": description,
			"Error":              err.Error(),
		}
		c.HTML(http.StatusBadRequest, "create_project", data)
		return
	}

	c.Redirect(http.StatusFound, "/projects/"+project.ID.String())
}

// ViewProject displays a single project with its items
func (h *ProjectHandler) ViewProject(c *gin.Context) {
	session := middleware.GetSession(c)

	project := h.ownedProject(c, session)
	if project == nil {
		return
	}

	c.SetCookie(lastProjectCookie, project.ID.String(), 86400*30, "/", "", false, false)

	var items []itemView
	for _, item := range h.itemService.ListItems(project.ID.String()) {
		items = append(items, itemView{ProjectItem: item, Style: models.StyleForPlatform(item.Platform)})
	}

	data := gin.H{
		"Title":   project.Title,
		"User":    session,
		"Project": project,
		"Items":   items,
	}

	c.HTML(http.StatusOK, "project_view", data)
}

// ProjectSettings displays the project settings page
func (h *ProjectHandler) ProjectSettings(c *gin.Context) {
	session := middleware.GetSession(c)

	project := h.ownedProject(c, session)
	if project == nil {
		return
	}

	data := gin.H{
		"Title":   project.Title + " - Settings",
		"User":    session,
		"Project": project,
		"Error":   c.Query("error"),
	}

	c.HTML(http.StatusOK, "project_settings", data)
}

// UpdateProject handles title/description/status edits
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	session := middleware.GetSession(c)

	project := h.ownedProject(c, session)
	if project == nil {
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	status := c.PostForm("status")

	update := services.ProjectUpdate{Title: &title, Description: &description}
	if status != "" {
		update.Status = &status
	}

	if _, err := h.projectService.UpdateProject(project.ID.String(), update); err != nil {
		c.Redirect(http.StatusFound, "/projects/"+project.ID.String()+"/settings?error="+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/projects/"+project.ID.String())
}

// DeleteProject removes a project and all of its items
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	session := middleware.GetSession(c)

	project := h.ownedProject(c, session)
	if project == nil {
		return
	}

	if !h.projectService.DeleteProject(project.ID.String()) {
		c.Redirect(http.StatusFound, "/projects/"+project.ID.String()+"/settings?error=delete_failed")
		return
	}

	c.SetCookie(lastProjectCookie, "", -1, "/", "", false, false)
	c.Redirect(http.StatusFound, "/dashboard")
}

// ExportProject streams the project's items as an xlsx workbook
func (h *ProjectHandler) ExportProject(c *gin.Context) {
	session := middleware.GetSession(c)

	project := h.ownedProject(c, session)
	if project == nil {
		return
	}

	items := h.itemService.ListItems(project.ID.String())

	workbook, err := h.exportService.BuildProjectWorkbook(project, items)
	if err != nil {
		logger.WithError(err).Error("Failed to build export workbook")
		c.Redirect(http.StatusFound, "/projects/"+project.ID.String())
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", project.Title+".xlsx"))

	if err := workbook.Write(c.Writer); err != nil {
		logger.WithError(err).Error("Failed to write export workbook")
	}
}

// ownedProject loads the requested project and enforces ownership; on
// failure it writes the response and returns nil.
func (h *ProjectHandler) ownedProject(c *gin.Context, session *middleware.SessionData) *models.Project {
	project := h.projectService.GetProject(c.Param("id"))
	if project == nil {
		c.HTML(http.StatusNotFound, "404", gin.H{
			"Title":         "404 - Project Not Found",
			"RequestedPath": c.Request.URL.Path,
		})
		return nil
	}

	if project.OwnerID.String() != session.UserID {
		c.Redirect(http.StatusFound, "/dashboard")
		c.Abort()
		return nil
	}

	return project
}
