package controllers

import (
	"errors"
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ForgotPasswordRequest starts the reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// VerifyResetOTPRequest exchanges a code for a reset token
type VerifyResetOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// ResetPasswordRequest sets a new password using a reset token
type ResetPasswordRequest struct {
	ResetToken      string `json:"reset_token" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ChangePasswordRequest changes the password of a signed-in user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ForgotPassword issues a reset code. Unknown emails get the same reply.
func ForgotPassword(c *gin.Context) {
	utils.LogInfo("ForgotPassword called")

	var req ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Email = models.NormalizeEmail(req.Email)
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, "Invalid email", msg)
		return
	}

	user, err := utils.GetUserByEmail(req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogInfo("Password reset requested for unknown email: %s", req.Email)
		utils.Success(c, utils.MsgOTPSent, nil)
		return
	}
	if err != nil {
		utils.RespondError(c, "Failed to process request", err)
		return
	}

	otp, err := utils.GenerateOTP(utils.OTPLength)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate code", err)
		return
	}
	expiry := time.Now().Add(config.Current().Tunables.OTPTTL)
	err = config.DB.Model(user).Updates(map[string]interface{}{
		"reset_otp":        otp,
		"reset_otp_expiry": expiry,
	}).Error
	if err != nil {
		utils.RespondError(c, "Failed to process request", err)
		return
	}

	if err := utils.DefaultMailer().SendOTP(user.Email, otp); err != nil {
		utils.LogError("Email fallback: reset code for %s is %s (%v)", user.Email, otp, err)
	} else {
		utils.LogInfo("Reset code sent to %s", user.Email)
	}

	utils.Success(c, utils.MsgOTPSent, gin.H{
		"expires_in": int(config.Current().Tunables.OTPTTL.Seconds()),
	})
}

// VerifyResetOTP checks the code and returns a short-lived reset token
func VerifyResetOTP(c *gin.Context) {
	utils.LogInfo("VerifyResetOTP called")

	var req VerifyResetOTPRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Email = models.NormalizeEmail(req.Email)

	user, err := utils.GetUserByEmail(req.Email)
	if err != nil {
		utils.LogError("OTP verification failed - unknown email: %s", req.Email)
		utils.BadRequest(c, "Invalid or expired code", nil)
		return
	}
	if err := utils.VerifyOTP(user, req.OTP, time.Now()); err != nil {
		utils.LogError("OTP verification failed for %s: %v", req.Email, err)
		utils.BadRequest(c, "Invalid or expired code", nil)
		return
	}

	err = config.DB.Model(user).Updates(map[string]interface{}{
		"reset_otp":        "",
		"reset_otp_expiry": nil,
	}).Error
	if err != nil {
		utils.RespondError(c, "Failed to verify code", err)
		return
	}

	token, err := utils.GenerateResetToken(user)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate reset token", err)
		return
	}

	utils.LogInfo("OTP verified for %s", user.Email)
	utils.Success(c, utils.MsgOTPVerified, gin.H{
		"reset_token": token,
		"expires_in":  int(config.Current().Tunables.ResetTokenTTL.Seconds()),
	})
}

// ResetPassword stores a new password. The reset token stops working once the hash changes.
func ResetPassword(c *gin.Context) {
	utils.LogInfo("ResetPassword called")

	var req ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		utils.BadRequest(c, "Passwords do not match", nil)
		return
	}
	if valid, msg := utils.ValidatePassword(req.NewPassword); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	user, err := utils.ValidateResetToken(req.ResetToken, utils.GetUserByID)
	if err != nil {
		utils.LogError("Password reset failed - invalid token: %v", err)
		utils.Unauthorized(c, "Invalid or expired reset token")
		return
	}

	if err := setPassword(user, req.NewPassword); err != nil {
		utils.RespondError(c, "Failed to reset password", err)
		return
	}

	utils.LogInfo("Password reset for %s", user.Email)
	utils.Success(c, utils.MsgPasswordReset, nil)
}

// ChangePassword updates the password of the signed-in user
func ChangePassword(c *gin.Context) {
	utils.LogInfo("ChangePassword called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		utils.BadRequest(c, "Passwords do not match", nil)
		return
	}
	if req.NewPassword == req.CurrentPassword {
		utils.BadRequest(c, "New password must be different from the current password", nil)
		return
	}
	if valid, msg := utils.ValidatePassword(req.NewPassword); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}
	if !utils.CheckPassword(req.CurrentPassword, user.Password) {
		utils.LogError("Password change failed - wrong current password for user %d", user.ID)
		utils.Unauthorized(c, "Current password is incorrect")
		return
	}

	if err := setPassword(&user, req.NewPassword); err != nil {
		utils.RespondError(c, "Failed to change password", err)
		return
	}

	utils.LogInfo("Password changed for user %d", user.ID)
	utils.Success(c, utils.MsgPasswordChanged, nil)
}

func setPassword(user *models.User, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return config.DB.Model(user).Updates(map[string]interface{}{
		"password":         hash,
		"reset_otp":        "",
		"reset_otp_expiry": nil,
	}).Error
}
