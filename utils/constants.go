package utils

// Application constants
const (
	// Application name
	AppName = "ShopSphere"

	// API version
	APIVersion = "v1"

	// Length of password reset codes
	OTPLength = 6

	// Top products shown when no limit is given
	DefaultTopProducts = 5

	// Recent orders shown on dashboards
	RecentOrdersLimit = 5
)

// Error messages
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgUserBlocked        = "Your account has been blocked"
	MsgInvalidToken       = "Invalid or expired token"
	MsgUnauthorized       = "Authorization required"
	MsgAdminOnly          = "Admin access required"
	MsgCustomerOnly       = "Customer access required"
	MsgInvalidRequest     = "Invalid request body"
	MsgInvalidID          = "Invalid ID"
)

// Success messages
const (
	MsgLoginSuccess    = "Login successful"
	MsgRegisterSuccess = "Registration successful"
	MsgOTPSent         = "If the email is registered, a reset code has been sent"
	MsgOTPVerified     = "OTP verified successfully"
	MsgPasswordReset   = "Password reset successful"
	MsgPasswordChanged = "Password changed successfully"

	MsgCreateSuccess  = "Created successfully"
	MsgUpdateSuccess  = "Updated successfully"
	MsgDeleteSuccess  = "Deleted successfully"
	MsgBlockSuccess   = "Blocked successfully"
	MsgUnblockSuccess = "Unblocked successfully"
	MsgUploadSuccess  = "File uploaded successfully"
)
