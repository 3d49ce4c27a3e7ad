package models

// AuthResponse is the body returned by the register, login, and Google
// sign-in endpoints: the public account fields plus a fresh bearer token.
type AuthResponse struct {
	UserID        int64  `json:"id"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	DownloadCount int    `json:"downloadCount"`
	IsPremium     bool   `json:"isPremium"`
	Token         string `json:"token"`
}

// DownloadStatus is the body returned by the track-download endpoint after
// a granted download: the new counter value and the premium flag.
type DownloadStatus struct {
	DownloadCount int  `json:"downloadCount"`
	IsPremium     bool `json:"isPremium"`
}

// AdminStats is the aggregate body returned by the admin stats endpoint.
type AdminStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	PremiumUsers   int64 `json:"premiumUsers"`
	TotalDownloads int64 `json:"totalDownloads"`
}

// MessageResponse is the uniform JSON error/notice body. Every handler
// failure is converted to this shape with a matching HTTP status code.
type MessageResponse struct {
	Message string `json:"message"`
}

// VerifyResponse is the body returned by the payment verification endpoint.
type VerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthResponseFromUser builds an AuthResponse from an account record and a
// signed bearer token.
func AuthResponseFromUser(u User, token string) AuthResponse {
	return AuthResponse{
		UserID:        u.UserID,
		FullName:      u.FullName,
		Email:         u.Email,
		DownloadCount: u.DownloadCount,
		IsPremium:     u.IsPremium,
		Token:         token,
	}
}
