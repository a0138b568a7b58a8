package endpoint

import (
	"github.com/ariebrainware/healthghar/telehealth"
	"github.com/ariebrainware/healthghar/util"
	"github.com/gin-gonic/gin"
)

// TelehealthBookingRequest books a video consultation.
type TelehealthBookingRequest struct {
	DoctorID    string `json:"doctor_id" example:"7b0d6a9e-3f0c-4c55-9a52-0f4c7d6a1e11"`
	BookingDate string `json:"booking_date" binding:"omitempty,isodate" example:"2025-01-12"`
	SlotTime    string `json:"slot_time" binding:"omitempty,clocktime" example:"09:00:00"`
	Name        string `json:"name" example:"Asha Gurung"`
	Age         int    `json:"age" example:"34"`
	Gender      string `json:"gender" example:"Female"`
	Notes       string `json:"notes"`
}

// HomeCheckupRequest books a home visit for a checkup package.
type HomeCheckupRequest struct {
	PackageID     string `json:"package_id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Address       string `json:"address"`
	Contact       string `json:"contact"`
	PreferredDate string `json:"preferred_date" binding:"omitempty,isodate"`
	PreferredTime string `json:"preferred_time"`
}

// CampBookingRequest registers a patient for a health camp.
type CampBookingRequest struct {
	CampID  string `json:"camp_id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Contact string `json:"contact"`
	Gender  string `json:"gender"`
}

// BookTelehealth godoc
// @Summary      Book a telehealth consultation
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        request body TelehealthBookingRequest true "Booking"
// @Success      201 {object} util.APIResponse{data=model.TelehealthBooking}
// @Failure      400 {object} util.APIResponse "Invalid booking"
// @Failure      401 {object} util.APIResponse "Not authenticated"
// @Failure      500 {object} util.APIResponse "Persistence failure"
// @Router       /bookings/telehealth [post]
func BookTelehealth(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok || !requireIdentityOrRespond(c) {
		return
	}
	var req TelehealthBookingRequest
	if !bindJSONOrRespond(c, &req, "Invalid booking payload") {
		return
	}
	booking, err := svc.Recorder.Book(c.Request.Context(), telehealth.BookingRequest(req))
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Booking confirmed", Data: booking})
}

// BookHomeCheckup godoc
// @Summary      Book a home checkup
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        request body HomeCheckupRequest true "Booking"
// @Success      201 {object} util.APIResponse{data=model.HomeCheckupBooking}
// @Failure      400 {object} util.APIResponse "Invalid booking"
// @Failure      401 {object} util.APIResponse "Not authenticated"
// @Router       /bookings/home-checkup [post]
func BookHomeCheckup(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok || !requireIdentityOrRespond(c) {
		return
	}
	var req HomeCheckupRequest
	if !bindJSONOrRespond(c, &req, "Invalid booking payload") {
		return
	}
	booking, err := svc.Recorder.BookHomeCheckup(c.Request.Context(), telehealth.HomeCheckupRequest(req))
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Home checkup booked", Data: booking})
}

// BookCamp godoc
// @Summary      Register for a health camp
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        request body CampBookingRequest true "Booking"
// @Success      201 {object} util.APIResponse{data=model.CampBooking}
// @Failure      400 {object} util.APIResponse "Invalid booking"
// @Failure      401 {object} util.APIResponse "Not authenticated"
// @Router       /bookings/camp [post]
func BookCamp(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok || !requireIdentityOrRespond(c) {
		return
	}
	var req CampBookingRequest
	if !bindJSONOrRespond(c, &req, "Invalid booking payload") {
		return
	}
	booking, err := svc.Recorder.BookCamp(c.Request.Context(), telehealth.CampBookingRequest(req))
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Camp booked", Data: booking})
}

// MyBookings godoc
// @Summary      The caller's bookings
// @Tags         Bookings
// @Produce      json
// @Param        session-token header string true "Session token"
// @Success      200 {object} util.APIResponse{data=telehealth.UserBookings}
// @Failure      401 {object} util.APIResponse "Not authenticated"
// @Router       /bookings [get]
func MyBookings(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	bookings, err := svc.Recorder.MyBookings(c.Request.Context())
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Bookings retrieved", Data: bookings})
}

// MyReports godoc
// @Summary      The caller's camp reports
// @Tags         Reports
// @Produce      json
// @Param        session-token header string true "Session token"
// @Success      200 {object} util.APIResponse{data=[]model.CampReport}
// @Failure      401 {object} util.APIResponse "Not authenticated"
// @Router       /reports [get]
func MyReports(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	reports, err := svc.Reports.ForUser(c.Request.Context())
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Reports retrieved", Data: reports})
}
