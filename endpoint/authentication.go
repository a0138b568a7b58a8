package endpoint

import (
	"github.com/ariebrainware/healthghar/identity"
	"github.com/ariebrainware/healthghar/middleware"
	"github.com/ariebrainware/healthghar/util"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required" example:"Ram Thapa"`
	Email    string `json:"email" binding:"required,email" example:"ram@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

type ProfileRequest struct {
	Age         int    `json:"age" binding:"gte=0" example:"30"`
	CountryCode string `json:"country_code" example:"+977"`
	Phone       string `json:"phone" example:"9801234567"`
	Address     string `json:"address" example:"Lalitpur"`
	Gender      string `json:"gender" example:"female"`
}

// Signup godoc
// @Summary      Create an account
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Account details"
// @Success      201 {object} util.APIResponse{data=model.User}
// @Failure      400 {object} util.APIResponse "Invalid request payload"
// @Failure      409 {object} util.APIResponse "Email already exists"
// @Router       /signup [post]
func Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}

	user, err := svc.Identity.Signup(c.Request.Context(), identity.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}, clientOf(c))
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Signup successful", Data: user})
}

// Login godoc
// @Summary      User login
// @Description  Authenticate user with email and password
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} util.APIResponse{data=identity.LoginResult} "Login successful"
// @Failure      400 {object} util.APIResponse "Invalid email or password"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}

	res, err := svc.Identity.Login(c.Request.Context(), identity.LoginInput{Email: req.Email, Password: req.Password}, clientOf(c))
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Login successful", Data: res})
}

// Logout godoc
// @Summary      Sign out the current session
// @Tags         Authentication
// @Produce      json
// @Param        session-token header string true "Session token"
// @Success      200 {object} util.APIResponse
// @Failure      401 {object} util.APIResponse "Session token not provided"
// @Failure      404 {object} util.APIResponse "Session not found"
// @Router       /logout [delete]
func Logout(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	token := c.GetHeader(middleware.SessionTokenHeader)
	if err := svc.Identity.SignOut(c.Request.Context(), token, clientOf(c)); err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Logout successful"})
}

// GetProfile godoc
// @Summary      Caller profile
// @Tags         Profile
// @Produce      json
// @Param        session-token header string true "Session token"
// @Success      200 {object} util.APIResponse{data=model.Profile}
// @Failure      401 {object} util.APIResponse "Not authenticated"
// @Router       /profile [get]
func GetProfile(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok {
		return
	}
	profile, err := svc.Identity.GetProfile(c.Request.Context())
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Profile retrieved", Data: profile})
}

// UpdateProfile godoc
// @Summary      Create or update the caller profile
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        session-token header string true "Session token"
// @Param        request body ProfileRequest true "Profile"
// @Success      200 {object} util.APIResponse{data=model.Profile}
// @Failure      400 {object} util.APIResponse "Invalid request payload"
// @Failure      401 {object} util.APIResponse "Not authenticated"
// @Router       /profile [patch]
func UpdateProfile(c *gin.Context) {
	svc, ok := getServicesOrRespond(c)
	if !ok || !requireIdentityOrRespond(c) {
		return
	}
	var req ProfileRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	profile, err := svc.Identity.UpdateProfile(c.Request.Context(), identity.ProfileInput{
		Age:         req.Age,
		CountryCode: req.CountryCode,
		Phone:       req.Phone,
		Address:     req.Address,
		Gender:      req.Gender,
	})
	if err != nil {
		util.CallAppError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Profile updated", Data: profile})
}
