package endpoint

import (
	"github.com/ariebrainware/healthghar/util"
	"github.com/ariebrainware/healthghar/wizard"
	"github.com/gin-gonic/gin"
)

// StartWizard godoc
// @Summary      Start a booking wizard
// @Tags         Wizard
// @Produce      json
// @Param        session-token header string true "Session token"
// @Success      201 {object} util.APIResponse{data=wizard.View}
// @Failure      401 {object} util.APIResponse "Not authenticated"
// @Router       /wizard [post]
func StartWizard(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	view, err := svc.Wizard.Begin(c.Request.Context())
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Wizard started", Data: view})
}

// GetWizard godoc
// @Summary      Current state of a booking wizard
// @Tags         Wizard
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        id path string true "Wizard ID"
// @Success      200 {object} util.APIResponse{data=wizard.View}
// @Failure      404 {object} util.APIResponse "Wizard not found"
// @Router       /wizard/{id} [get]
func GetWizard(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	view, err := svc.Wizard.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Wizard retrieved", Data: view})
}

// WizardEvent godoc
// @Summary      Send an event to a booking wizard
// @Description  Submit records the booking; the wizard ends Confirmed or back on PatientDetails with the error
// @Tags         Wizard
// @Accept       json
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        id path string true "Wizard ID"
// @Param        request body wizard.Input true "Event"
// @Success      200 {object} util.APIResponse{data=wizard.View}
// @Failure      400 {object} util.APIResponse "Event not allowed"
// @Failure      404 {object} util.APIResponse "Wizard not found"
// @Failure      409 {object} util.APIResponse "Already submitting or confirmed"
// @Router       /wizard/{id}/events [post]
func WizardEvent(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok || !requireIdentityOrRespond(c) {
		return
	}
	var in wizard.Input
	if !bindJSONOrRespond(c, &in, "Invalid wizard event") {
		return
	}
	view, err := svc.Wizard.Apply(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Wizard updated", Data: view})
}
