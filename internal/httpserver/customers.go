package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customersvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/customer"
)

func (a *api) listCustomers(c *gin.Context) {
	customers, err := a.deps.Customers.List(c.Request.Context(), c.Query("q"), c.Query("sort"))
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (a *api) getCustomer(c *gin.Context) {
	cust, err := a.deps.Customers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (a *api) listCustomerOrders(c *gin.Context) {
	id := c.Param("id")
	if _, err := a.deps.Customers.Get(c.Request.Context(), id); err != nil {
		a.respondError(c, err)
		return
	}

	orders, err := a.deps.Orders.List(c.Request.Context(), id)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (a *api) createCustomer(c *gin.Context) {
	var req customersvc.CreateInput
	if !a.bindJSON(c, &req) {
		return
	}

	cust, err := a.deps.Customers.Create(c.Request.Context(), req)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

func (a *api) updateCustomer(c *gin.Context) {
	var req customersvc.UpdateInput
	if !a.bindJSON(c, &req) {
		return
	}

	cust, err := a.deps.Customers.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (a *api) deleteCustomer(c *gin.Context) {
	if err := a.deps.Customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}
