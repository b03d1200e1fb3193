package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	menusvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/menu"
)

func (a *api) listPublicMenu(c *gin.Context) {
	items, err := a.deps.Menu.ListPublic(c.Request.Context())
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *api) listMenu(c *gin.Context) {
	items, err := a.deps.Menu.List(c.Request.Context())
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *api) getMenuItem(c *gin.Context) {
	item, err := a.deps.Menu.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (a *api) createMenuItem(c *gin.Context) {
	var req menusvc.Input
	if !a.bindJSON(c, &req) {
		return
	}

	item, err := a.deps.Menu.Create(c.Request.Context(), req)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (a *api) updateMenuItem(c *gin.Context) {
	var req menusvc.Input
	if !a.bindJSON(c, &req) {
		return
	}

	item, err := a.deps.Menu.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (a *api) deleteMenuItem(c *gin.Context) {
	if err := a.deps.Menu.Delete(c.Request.Context(), c.Param("id")); err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}
