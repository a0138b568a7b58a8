package endpoint

import (
	"github.com/ariebrainware/healthghar/admin"
	"github.com/ariebrainware/healthghar/report"
	"github.com/ariebrainware/healthghar/telehealth"
	"github.com/ariebrainware/healthghar/util"
	"github.com/gin-gonic/gin"
)

// AdminSlotRequest is a slot window set by an admin.
type AdminSlotRequest struct {
	StartTime string `json:"start_time" binding:"required,slottime" example:"2025-01-10T09:00"`
	EndTime   string `json:"end_time" binding:"required,slottime" example:"2025-01-10T09:30"`
	IsActive  *bool  `json:"is_active"`
}

func (r AdminSlotRequest) input() telehealth.SlotInput {
	return telehealth.SlotInput{StartTime: r.StartTime, EndTime: r.EndTime, IsActive: r.IsActive}
}

// AdminListDoctors godoc
// @Summary      List every doctor
// @Tags         Admin
// @Produce      json
// @Param        session-token header string true "Session token"
// @Success      200 {object} util.APIResponse{data=[]model.Doctor}
// @Failure      403 {object} util.APIResponse "Admin access required"
// @Router       /admin/doctors [get]
func AdminListDoctors(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	capability, ok := grantOrRespond(c, svc)
	if !ok {
		return
	}
	docs, err := svc.Admin.ListDoctors(c.Request.Context(), capability)
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctors retrieved", Data: docs})
}

// AdminCreateDoctor godoc
// @Summary      Create a doctor profile
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        request body admin.DoctorInput true "Doctor"
// @Success      201 {object} util.APIResponse{data=model.Doctor}
// @Failure      400 {object} util.APIResponse "Invalid doctor"
// @Failure      403 {object} util.APIResponse "Admin access required"
// @Failure      409 {object} util.APIResponse "Doctor email already exists"
// @Router       /admin/doctors [post]
func AdminCreateDoctor(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	capability, ok := grantOrRespond(c, svc)
	if !ok {
		return
	}
	var in admin.DoctorInput
	if !bindJSONOrRespond(c, &in, "Invalid doctor payload") {
		return
	}
	doc, err := svc.Admin.CreateDoctor(c.Request.Context(), capability, in)
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Doctor created", Data: doc})
}

// AdminUpdateDoctor godoc
// @Summary      Update a doctor profile
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        id path string true "Doctor ID"
// @Param        request body admin.DoctorInput true "Doctor"
// @Success      200 {object} util.APIResponse{data=model.Doctor}
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Router       /admin/doctors/{id} [patch]
func AdminUpdateDoctor(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	capability, ok := grantOrRespond(c, svc)
	if !ok {
		return
	}
	var in admin.DoctorInput
	if !bindJSONOrRespond(c, &in, "Invalid doctor payload") {
		return
	}
	doc, err := svc.Admin.UpdateDoctor(c.Request.Context(), capability, c.Param("id"), in)
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor updated", Data: doc})
}

// AdminDeleteDoctor godoc
// @Summary      Delete a doctor and their slots
// @Description  Returns which cleanup steps completed, failed or were skipped
// @Tags         Admin
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        id path string true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=admin.SagaReport}
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Failure      500 {object} util.APIResponse "Failed to delete doctor"
// @Router       /admin/doctors/{id} [delete]
func AdminDeleteDoctor(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	capability, ok := grantOrRespond(c, svc)
	if !ok {
		return
	}
	result, err := svc.Admin.DeleteDoctor(c.Request.Context(), capability, c.Param("id"))
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	msg := "Doctor deleted"
	if !result.OK() {
		msg = "Doctor deleted with cleanup errors"
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: msg, Data: result})
}

// AdminListSlots godoc
// @Summary      Every slot of a doctor
// @Tags         Admin
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        id path string true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=[]model.Slot}
// @Router       /admin/doctors/{id}/slots [get]
func AdminListSlots(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	capability, ok := grantOrRespond(c, svc)
	if !ok {
		return
	}
	slots, err := svc.Admin.ListSlots(c.Request.Context(), capability, c.Param("id"))
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Slots retrieved", Data: slots})
}

// AdminAddSlot godoc
// @Summary      Add a slot for a doctor
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        id path string true "Doctor ID"
// @Param        request body AdminSlotRequest true "Slot window"
// @Success      201 {object} util.APIResponse{data=model.Slot}
// @Router       /admin/doctors/{id}/slots [post]
func AdminAddSlot(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	capability, ok := grantOrRespond(c, svc)
	if !ok {
		return
	}
	var req AdminSlotRequest
	if !bindJSONOrRespond(c, &req, "Invalid slot payload") {
		return
	}
	slot, err := svc.Admin.AddSlot(c.Request.Context(), capability, c.Param("id"), req.input())
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Slot added", Data: slot})
}

// AdminUpdateSlot godoc
// @Summary      Update any slot
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        id path string true "Slot ID"
// @Param        request body AdminSlotRequest true "Slot window"
// @Success      200 {object} util.APIResponse{data=model.Slot}
// @Failure      404 {object} util.APIResponse "Slot not found"
// @Router       /admin/slots/{id} [patch]
func AdminUpdateSlot(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	capability, ok := grantOrRespond(c, svc)
	if !ok {
		return
	}
	var req AdminSlotRequest
	if !bindJSONOrRespond(c, &req, "Invalid slot payload") {
		return
	}
	slot, err := svc.Admin.UpdateSlot(c.Request.Context(), capability, c.Param("id"), req.input())
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Slot updated", Data: slot})
}

// AdminDeleteSlot godoc
// @Summary      Delete any slot
// @Tags         Admin
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        id path string true "Slot ID"
// @Success      200 {object} util.APIResponse
// @Failure      404 {object} util.APIResponse "Slot not found"
// @Router       /admin/slots/{id} [delete]
func AdminDeleteSlot(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	capability, ok := grantOrRespond(c, svc)
	if !ok {
		return
	}
	if err := svc.Admin.DeleteSlot(c.Request.Context(), capability, c.Param("id")); err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Slot deleted"})
}

// AdminCampBookings godoc
// @Summary      Every camp booking, newest first
// @Tags         Admin
// @Produce      json
// @Param        session-token header string true "Session token"
// @Success      200 {object} util.APIResponse{data=[]model.CampBooking}
// @Router       /admin/camp-bookings [get]
func AdminCampBookings(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	capability, ok := grantOrRespond(c, svc)
	if !ok {
		return
	}
	bookings, err := svc.Admin.CampBookings(c.Request.Context(), capability)
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Camp bookings retrieved", Data: bookings})
}

// AdminListReports godoc
// @Summary      Every camp report
// @Tags         Admin
// @Produce      json
// @Param        session-token header string true "Session token"
// @Success      200 {object} util.APIResponse{data=[]model.CampReport}
// @Router       /admin/reports [get]
func AdminListReports(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	capability, ok := grantOrRespond(c, svc)
	if !ok {
		return
	}
	reports, err := svc.Reports.All(c.Request.Context(), capability)
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Reports retrieved", Data: reports})
}

// AdminGetReport godoc
// @Summary      The report of one camp booking
// @Tags         Admin
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        bookingId path string true "Camp booking ID"
// @Success      200 {object} util.APIResponse{data=model.CampReport}
// @Failure      404 {object} util.APIResponse "Report not found"
// @Router       /admin/reports/{bookingId} [get]
func AdminGetReport(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	capability, ok := grantOrRespond(c, svc)
	if !ok {
		return
	}
	rep, err := svc.Reports.ForBooking(c.Request.Context(), capability, c.Param("bookingId"))
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Report retrieved", Data: rep})
}

// AdminIssueReport godoc
// @Summary      Create or update the report of a camp booking
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        request body report.Input true "Report"
// @Success      200 {object} util.APIResponse{data=model.CampReport} "Updated"
// @Success      201 {object} util.APIResponse{data=model.CampReport} "Created"
// @Failure      400 {object} util.APIResponse "Invalid report"
// @Failure      404 {object} util.APIResponse "Camp booking not found"
// @Router       /admin/reports [put]
func AdminIssueReport(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	capability, ok := grantOrRespond(c, svc)
	if !ok {
		return
	}
	var in report.Input
	if !bindJSONOrRespond(c, &in, "Invalid report payload") {
		return
	}
	rep, created, err := svc.Reports.Issue(c.Request.Context(), capability, in)
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	if created {
		util.CallCreated(c, util.APISuccessParams{Msg: "Report created", Data: rep})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Report updated", Data: rep})
}
