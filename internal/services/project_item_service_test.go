package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mertkaya/platformhub/internal/models"
	"github.com/mertkaya/platformhub/internal/repositories"
	"github.com/mertkaya/platformhub/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func newItemServices(t *testing.T) (*ProjectService, *ProjectItemService) {
	t.Helper()
	db := testutil.OpenTestDB(t)
	return NewProjectService(repositories.NewProjectRepository(db), false),
		NewProjectItemService(repositories.NewProjectItemRepository(db), false)
}

func TestCreateItem(t *testing.T) {
	projectService, itemService := newItemServices(t)

	project, err := projectService.CreateProject(uuid.New().String(), "Demo", "")
	assert.NoError(t, err)

	item, err := itemService.CreateItem(project.ID.String(), " GitHub ", "", " https://github.com/octocat ", "")
	assert.NoError(t, err)
	assert.Equal(t, "GitHub", item.Platform)
	assert.Equal(t, "https://github.com/octocat", item.Link)
	assert.True(t, item.IsLink())

	items := itemService.ListItems(project.ID.String())
	assert.Len(t, items, 1)
}

func TestCreateItemValidation(t *testing.T) {
	_, itemService := newItemServices(t)
	projectID := uuid.New().String()

	_, err := itemService.CreateItem("bad-id", "GitHub", "x", "", "")
	assert.Error(t, err)

	_, err = itemService.CreateItem(projectID, "", "x", "", "")
	assert.ErrorIs(t, err, models.ErrItemPlatformRequired)

	_, err = itemService.CreateItem(projectID, "GitHub", "", "", "")
	assert.ErrorIs(t, err, models.ErrItemValueRequired)

	// Notes alone are enough to carry an item
	_, err = itemService.CreateItem(projectID, "GitHub", "", "", "just a note")
	assert.NoError(t, err)
}

func TestCreateItemBothFieldsLinkWins(t *testing.T) {
	projectService, itemService := newItemServices(t)

	project, err := projectService.CreateProject(uuid.New().String(), "Demo", "")
	assert.NoError(t, err)

	item, err := itemService.CreateItem(project.ID.String(), "GitHub", "octocat", "https://github.com/octocat", "")
	assert.NoError(t, err)
	assert.Equal(t, "https://github.com/octocat", item.Link)
	assert.Empty(t, item.Username, "supplying both fields keeps only the link")

	// The returned item reflects the persisted state
	stored := itemService.GetItem(item.ID.String())
	assert.NotNil(t, stored)
	assert.Equal(t, item.Link, stored.Link)
	assert.Equal(t, item.Username, stored.Username)
}

func TestUpdateItemBothFieldsLinkWins(t *testing.T) {
	projectService, itemService := newItemServices(t)

	project, err := projectService.CreateProject(uuid.New().String(), "Demo", "")
	assert.NoError(t, err)

	item, err := itemService.CreateItem(project.ID.String(), "GitHub", "octocat", "", "")
	assert.NoError(t, err)

	link := "https://github.com/octocat"
	username := "octocat"
	updated, err := itemService.UpdateItem(item.ID.String(), ItemUpdate{Link: &link, Username: &username})
	assert.NoError(t, err)
	assert.Equal(t, link, updated.Link)
	assert.Empty(t, updated.Username)

	stored := itemService.GetItem(item.ID.String())
	assert.NotNil(t, stored)
	assert.Equal(t, updated.Link, stored.Link)
	assert.Equal(t, updated.Username, stored.Username)
}

func TestUpdateItemExclusivity(t *testing.T) {
	projectService, itemService := newItemServices(t)

	project, err := projectService.CreateProject(uuid.New().String(), "Demo", "")
	assert.NoError(t, err)

	item, err := itemService.CreateItem(project.ID.String(), "GitHub", "octocat", "", "")
	assert.NoError(t, err)

	link := "https://github.com/octocat"
	updated, err := itemService.UpdateItem(item.ID.String(), ItemUpdate{Link: &link})
	assert.NoError(t, err)
	assert.Equal(t, link, updated.Link)
	assert.Empty(t, updated.Username, "setting a link should clear the username")

	username := "octocat"
	updated, err = itemService.UpdateItem(item.ID.String(), ItemUpdate{Username: &username})
	assert.NoError(t, err)
	assert.Equal(t, "octocat", updated.Username)
	assert.Empty(t, updated.Link, "setting a username should clear the link")

	notes := "main profile"
	updated, err = itemService.UpdateItem(item.ID.String(), ItemUpdate{Notes: &notes})
	assert.NoError(t, err)
	assert.Equal(t, "main profile", updated.Notes)
	assert.Equal(t, "octocat", updated.Username)
}

func TestDeleteItem(t *testing.T) {
	projectService, itemService := newItemServices(t)

	project, err := projectService.CreateProject(uuid.New().String(), "Demo", "")
	assert.NoError(t, err)

	item, err := itemService.CreateItem(project.ID.String(), "Figma", "designer", "", "")
	assert.NoError(t, err)

	assert.True(t, itemService.DeleteItem(item.ID.String()))
	assert.Nil(t, itemService.GetItem(item.ID.String()))
	assert.False(t, itemService.DeleteItem(item.ID.String()))
}

func TestItemDemoMode(t *testing.T) {
	service := NewProjectItemService(nil, true)

	portfolio := SampleProjects()[1]
	items := service.ListItems(portfolio.ID.String())
	assert.Len(t, items, 3)
	assert.Equal(t, "Instagram", items[0].Platform)

	assert.Empty(t, service.ListItems(uuid.New().String()))

	found := service.GetItem(items[0].ID.String())
	assert.NotNil(t, found)
	assert.Equal(t, "demo.portfolio", found.Username)

	_, err := service.CreateItem(portfolio.ID.String(), "GitHub", "x", "", "")
	assert.ErrorIs(t, err, ErrDemoReadOnly)

	_, err = service.UpdateItem(items[0].ID.String(), ItemUpdate{})
	assert.ErrorIs(t, err, ErrDemoReadOnly)

	assert.False(t, service.DeleteItem(items[0].ID.String()))
}
