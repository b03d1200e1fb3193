package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	rewardsvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/reward"
)

func (a *api) loyaltyLookup(c *gin.Context) {
	snap, err := a.deps.Rewards.Lookup(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (a *api) submitClaim(c *gin.Context) {
	var req rewardsvc.SubmitInput
	if !a.bindJSON(c, &req) {
		return
	}

	claim, err := a.deps.Rewards.Submit(c.Request.Context(), req)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, claim)
}

func (a *api) listClaims(c *gin.Context) {
	claims, err := a.deps.Rewards.ListClaims(c.Request.Context(), c.Query("status"), c.Query("customer"))
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, claims)
}

func (a *api) getClaim(c *gin.Context) {
	claim, err := a.deps.Rewards.GetClaim(c.Request.Context(), c.Param("id"))
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

type completeClaimRequest struct {
	NextTargetOrders int `json:"nextTargetOrders"`
}

func (a *api) completeClaim(c *gin.Context) {
	// The body is optional; an absent or empty body keeps the current target.
	var req completeClaimRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if !a.bindJSON(c, &req) {
			return
		}
	}

	claim, err := a.deps.Rewards.Complete(c.Request.Context(), c.Param("id"), req.NextTargetOrders)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}
