package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mertkaya/platformhub/internal/middleware"
	"github.com/mertkaya/platformhub/internal/models"
	"github.com/mertkaya/platformhub/internal/services"
)

// lastProjectCookie remembers the last-selected project across reloads.
const lastProjectCookie = "phub_last_project"

type DashboardHandler struct {
	authService    *services.AuthService
	projectService *services.ProjectService
	itemService    *services.ProjectItemService
}

func NewDashboardHandler(authService *services.AuthService, projectService *services.ProjectService, itemService *services.ProjectItemService) *DashboardHandler {
	return &DashboardHandler{
		authService:    authService,
		projectService: projectService,
		itemService:    itemService,
	}
}

// itemView pairs an item with its platform display style for templates.
type itemView struct {
	*models.ProjectItem
	Style models.PlatformStyle
}

// Dashboard renders the project list with the selected project's items
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	session := middleware.GetSession(c)

	user := h.authService.CurrentUser(session.UserID)
	if user == nil {
		// Session outlived the user row, fall back to session data
		userID, err := uuid.Parse(session.UserID)
		if err != nil {
			middleware.ClearSession(c)
			c.Redirect(http.StatusFound, "/login")
			return
		}
		user = &models.User{
			ID:    userID,
			Email: session.Email,
			Name:  session.Name,
		}
	}

	projects := h.projectService.ListProjects(session.UserID)

	query := c.Query("q")
	filtered := services.FilterProjects(projects, query)

	selected := h.resolveSelection(c, filtered)

	var items []itemView
	if selected != nil {
		c.SetCookie(lastProjectCookie, selected.ID.String(), 86400*30, "/", "", false, false)
		for _, item := range h.itemService.ListItems(selected.ID.String()) {
			items = append(items, itemView{ProjectItem: item, Style: models.StyleForPlatform(item.Platform)})
		}
	}

	data := gin.H{
		"Title":    "Dashboard",
		"User":     user,
		"Projects": filtered,
		"Query":    query,
		"Selected": selected,
		"Items":    items,
	}

	c.HTML(http.StatusOK, "dashboard", data)
}

// resolveSelection picks the project to show: the ?project= parameter first,
// then the last-selected cookie, then the newest visible project.
func (h *DashboardHandler) resolveSelection(c *gin.Context, projects []*models.Project) *models.Project {
	selectedID := c.Query("project")
	if selectedID == "" {
		selectedID, _ = c.Cookie(lastProjectCookie)
	}

	for _, project := range projects {
		if project.ID.String() == selectedID {
			return project
		}
	}

	if len(projects) > 0 {
		return projects[0]
	}

	return nil
}
