package endpoint

import (
	"github.com/ariebrainware/healthghar/telehealth"
	"github.com/ariebrainware/healthghar/util"
	"github.com/gin-gonic/gin"
)

// SlotRequest is a slot window. is_active is ignored when creating. The
// window itself is checked by the slot service after the caller is resolved.
type SlotRequest struct {
	StartTime string `json:"start_time" example:"2025-01-10T09:00"`
	EndTime   string `json:"end_time" example:"2025-01-10T09:30"`
	IsActive  *bool  `json:"is_active" example:"true"`
}

func (r SlotRequest) input() telehealth.SlotInput {
	return telehealth.SlotInput{StartTime: r.StartTime, EndTime: r.EndTime, IsActive: r.IsActive}
}

// ListMySlots godoc
// @Summary      The signed-in doctor's slots
// @Description  Empty for callers without a doctor profile
// @Tags         Doctor
// @Produce      json
// @Param        session-token header string true "Session token"
// @Success      200 {object} util.APIResponse{data=[]model.Slot}
// @Router       /doctor/slots [get]
func ListMySlots(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	slots, err := svc.Slots.ListMySlots(c.Request.Context())
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Slots retrieved", Data: slots})
}

// AddSlot godoc
// @Summary      Add an availability slot
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        request body SlotRequest true "Slot window"
// @Success      201 {object} util.APIResponse{data=model.Slot}
// @Failure      400 {object} util.APIResponse "Invalid slot window"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      404 {object} util.APIResponse "Doctor profile not found"
// @Failure      409 {object} util.APIResponse "Slot overlaps an existing slot"
// @Router       /doctor/slots [post]
func AddSlot(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	var req SlotRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	slot, err := svc.Slots.AddSlot(c.Request.Context(), req.input())
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Slot added", Data: slot})
}

// UpdateSlot godoc
// @Summary      Update one of the doctor's slots
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        id path string true "Slot ID"
// @Param        request body SlotRequest true "Slot window"
// @Success      200 {object} util.APIResponse{data=model.Slot}
// @Failure      400 {object} util.APIResponse "Invalid slot window"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      404 {object} util.APIResponse "Slot not found or permission denied"
// @Router       /doctor/slots/{id} [patch]
func UpdateSlot(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	var req SlotRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	slot, err := svc.Slots.UpdateSlot(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Slot updated", Data: slot})
}

// DeleteSlot godoc
// @Summary      Delete one of the doctor's slots
// @Description  Deleting a missing slot or another doctor's slot changes nothing
// @Tags         Doctor
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        id path string true "Slot ID"
// @Success      200 {object} util.APIResponse
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      404 {object} util.APIResponse "Doctor profile not found"
// @Router       /doctor/slots/{id} [delete]
func DeleteSlot(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	if err := svc.Slots.DeleteSlot(c.Request.Context(), c.Param("id")); err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Slot deleted"})
}
