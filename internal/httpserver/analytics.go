package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (a *api) topItems(c *gin.Context) {
	items, err := a.deps.Analytics.TopItems(c.Request.Context())
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *api) summary(c *gin.Context) {
	s, err := a.deps.Analytics.Summary(c.Request.Context())
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (a *api) salesDaily(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("days"))
	sales, err := a.deps.Analytics.SalesDaily(c.Request.Context(), days)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (a *api) topCustomers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	customers, err := a.deps.Analytics.TopCustomers(c.Request.Context(), limit)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}
