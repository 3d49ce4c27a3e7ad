package service

import (
	"context"
	"fmt"

	"github.com/resumekit/resumekit/internal/adapter"
	"github.com/resumekit/resumekit/internal/render"
	"github.com/resumekit/resumekit/models"
)

type clientResumeService struct {
	adapter  adapter.ServerAdapter
	renderer *render.Renderer
}

func NewClientResumeService(serverAdapter adapter.ServerAdapter, renderer *render.Renderer) ClientResumeService {
	return &clientResumeService{adapter: serverAdapter, renderer: renderer}
}

// Download charges the account's download allowance on the server before any
// file is written: a capped free account never gets the document. On success
// the resume is rendered with its selected template into the output
// directory.
func (r *clientResumeService) Download(ctx context.Context, resume *models.Resume) (string, models.DownloadStatus, error) {
	status, err := r.adapter.TrackDownload(ctx)
	if err != nil {
		return "", models.DownloadStatus{}, err
	}

	path, err := r.renderer.RenderToFile(resume, resume.Template, resume.Personal.FullName)
	if err != nil {
		return "", status, fmt.Errorf("render resume: %w", err)
	}

	return path, status, nil
}
