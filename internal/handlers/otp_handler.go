package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"harvesttracker/internal/services"
)

type OTPHandler struct {
	Service *services.OTPService
}

func NewOTPHandler(service *services.OTPService) *OTPHandler {
	return &OTPHandler{Service: service}
}

// Three response shapes, and the client's retry UX depends on telling them
// apart: 400 with an error for malformed input, 500 with the provider's
// message for provider failures, and 200 with success=false (no error field)
// for a well-formed but denied code.

// @Summary      Send OTP
// @Description  Texts a one-time code to the given 10-digit phone number
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      object{phone=string}  true  "Phone number (10 digits)"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]interface{}
// @Failure      500      {object}  map[string]interface{}
// @Router       /send-otp [post]
func (h *OTPHandler) SendOTP(c *gin.Context) {
	var input struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid phone number"})
		return
	}

	sid, err := h.Service.SendCode(c.Request.Context(), input.Phone)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPhone) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid phone number"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sid": sid})
}

// @Summary      Verify OTP
// @Description  Checks the one-time code; success reports the approval verdict
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      object{phone=string,code=string}  true  "Phone number and 6-digit code"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]interface{}
// @Failure      500      {object}  map[string]interface{}
// @Router       /verify-otp [post]
func (h *OTPHandler) VerifyOTP(c *gin.Context) {
	var input struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid phone number or OTP"})
		return
	}

	approved, err := h.Service.CheckCode(c.Request.Context(), input.Phone, input.Code)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPhone) || errors.Is(err, services.ErrInvalidCode) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid phone number or OTP"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": approved})
}
