package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordersvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/order"
)

func (a *api) listOrders(c *gin.Context) {
	orders, err := a.deps.Orders.List(c.Request.Context(), c.Query("customer"))
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (a *api) getOrder(c *gin.Context) {
	o, err := a.deps.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (a *api) createOrder(c *gin.Context) {
	var req ordersvc.Input
	if !a.bindJSON(c, &req) {
		return
	}

	o, err := a.deps.Orders.Create(c.Request.Context(), req)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (a *api) updateOrder(c *gin.Context) {
	var req ordersvc.Input
	if !a.bindJSON(c, &req) {
		return
	}

	o, err := a.deps.Orders.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (a *api) deleteOrder(c *gin.Context) {
	if err := a.deps.Orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}
