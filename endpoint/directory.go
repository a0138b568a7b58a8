package endpoint

import (
	"github.com/ariebrainware/healthghar/telehealth"
	"github.com/ariebrainware/healthghar/util"
	"github.com/gin-gonic/gin"
)

// GetTaxonomy godoc
// @Summary      Doctor categories, specializations and report departments
// @Tags         Directory
// @Produce      json
// @Success      200 {object} util.APIResponse{data=telehealth.Taxonomy}
// @Router       /taxonomy [get]
func GetTaxonomy(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Taxonomy retrieved", Data: svc.Directory.Taxonomy()})
}

// ListDoctors godoc
// @Summary      List doctors
// @Description  Exact match on category and specialization when given
// @Tags         Directory
// @Produce      json
// @Param        category query string false "Category"
// @Param        specialization query string false "Specialization"
// @Success      200 {object} util.APIResponse{data=[]model.Doctor}
// @Failure      500 {object} util.APIResponse "Failed to load doctors"
// @Router       /doctors [get]
func ListDoctors(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	docs, err := svc.Directory.Doctors(c.Request.Context(), telehealth.DoctorFilter{
		Category:       c.Query("category"),
		Specialization: c.Query("specialization"),
	})
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctors retrieved", Data: docs})
}

// GetDoctor godoc
// @Summary      Get a doctor
// @Tags         Directory
// @Produce      json
// @Param        id path string true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=model.Doctor}
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Router       /doctors/{id} [get]
func GetDoctor(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	doc, err := svc.Directory.Doctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor retrieved", Data: doc})
}

// ListDoctorSlots godoc
// @Summary      Active slots of a doctor
// @Tags         Directory
// @Produce      json
// @Param        id path string true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=[]model.Slot}
// @Router       /doctors/{id}/slots [get]
func ListDoctorSlots(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	slots, err := svc.Directory.DoctorSlots(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Slots retrieved", Data: slots})
}

// ListCamps godoc
// @Summary      Upcoming health camps
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.Camp}
// @Router       /camps [get]
func ListCamps(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	camps, err := svc.Directory.Camps(c.Request.Context())
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Camps retrieved", Data: camps})
}

// ListPackages godoc
// @Summary      Home checkup packages
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.HomeCheckupPackage}
// @Router       /packages [get]
func ListPackages(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	pkgs, err := svc.Directory.Packages(c.Request.Context())
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Packages retrieved", Data: pkgs})
}
