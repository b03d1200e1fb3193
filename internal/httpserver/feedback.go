package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	feedbacksvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/feedback"
)

func (a *api) createFeedback(c *gin.Context) {
	var req feedbacksvc.Input
	if !a.bindJSON(c, &req) {
		return
	}

	fb, err := a.deps.Feedback.Create(c.Request.Context(), req)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}

func (a *api) listFeedback(c *gin.Context) {
	list, err := a.deps.Feedback.List(c.Request.Context())
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
