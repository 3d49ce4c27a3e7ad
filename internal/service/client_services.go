package service

import (
	"github.com/resumekit/resumekit/internal/adapter"
	"github.com/resumekit/resumekit/internal/render"
	"github.com/resumekit/resumekit/internal/store"
)

// ClientServices bundles the client-side services behind one value so the
// terminal UI takes a single dependency.
type ClientServices struct {
	AuthService    ClientAuthService
	ResumeService  ClientResumeService
	UpgradeService ClientUpgradeService
}

func NewClientServices(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, renderer *render.Renderer) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(sessions, serverAdapter),
		ResumeService:  NewClientResumeService(serverAdapter, renderer),
		UpgradeService: NewClientUpgradeService(serverAdapter),
	}
}
