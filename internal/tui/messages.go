package tui

import (
	"github.com/resumekit/resumekit/models"
)

// NavigateTo asks [RootModel] to switch the active page. Payload, when set,
// is delivered to the target page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes the authentication flow. RootModel quits the login
// program on a nil Err; pages use a non-nil Err to show the failure inline.
type LoginResult struct {
	Err     error
	Account models.AuthResponse
}

// resetCodeSentMsg reports the outcome of a forgot-password request.
type resetCodeSentMsg struct {
	email string
	err   error
}

// resetDoneMsg reports the outcome of a reset-password request.
type resetDoneMsg struct {
	err error
}

type downloadDoneMsg struct {
	path   string
	status models.DownloadStatus
	err    error
}

type orderCreatedMsg struct {
	order models.PaymentOrder
	err   error
}

type verifyDoneMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
