package endpoint

import (
	"fmt"
	"net/http"

	"github.com/ariebrainware/healthghar/config"
	"github.com/ariebrainware/healthghar/util"
	"github.com/gin-gonic/gin"
)

// Index godoc
// @Summary      Welcome message
// @Tags         Health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s!", config.LoadConfig().AppName),
	})
}

// Healthz godoc
// @Summary      Readiness of the backends and Redis
// @Tags         Health
// @Produce      json
// @Success      200 {object} util.APIResponse
// @Failure      500 {object} util.APIResponse "Backend unavailable"
// @Router       /healthz [get]
func Healthz(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	checks := map[string]string{"redis": "disabled"}

	var failed error
	for _, h := range svc.Health {
		checks[h.Name] = "ok"
		if err := h.Check(ctx); err != nil {
			checks[h.Name], failed = err.Error(), err
		}
	}
	if rdb := config.GetRedisClient(); rdb != nil {
		checks["redis"] = "ok"
		if err := rdb.Ping(ctx).Err(); err != nil {
			checks["redis"], failed = err.Error(), err
		}
	}

	if failed != nil {
		c.JSON(http.StatusInternalServerError, util.APIResponse{Success: false, Error: failed.Error(), Msg: "Backend unavailable", Data: checks})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "ok", Data: checks})
}
