package uploader

import (
	"context"
	"errors"
	"strings"
)

// Step is a wizard state.
type Step int

const (
	StepDetails Step = iota
	StepMedia
	StepAssets
	StepSubmitting
	StepDone
	StepFailed
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepMedia:
		return "media"
	case StepAssets:
		return "assets"
	case StepSubmitting:
		return "submitting"
	case StepDone:
		return "done"
	case StepFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// transitions is the full table of legal step changes.
var transitions = map[Step][]Step{
	StepDetails:    {StepMedia},
	StepMedia:      {StepDetails, StepAssets},
	StepAssets:     {StepMedia, StepSubmitting},
	StepSubmitting: {StepDone, StepFailed},
}

// Submission-phase status lines surfaced to the user.
const (
	StatusOptimizing = "Optimizing images..."
	StatusZipping    = "Zipping your file..."
	StatusUploading  = "Uploading project files..."
	StatusFinalizing = "Finalizing..."
)

var (
	ErrDetailsIncomplete = errors.New("title and description are required")
	ErrNoPrimaryFile     = errors.New("a project file is required")
	ErrBadTransition     = errors.New("illegal wizard transition")
)

// Asset is one in-memory file queued for upload.
type Asset struct {
	Name        string
	Data        []byte
	ContentType string
}

// Draft collects everything the wizard gathers before submission.
type Draft struct {
	Title        string
	Description  string
	SoftwareType string
	Tags         []string
	YoutubeURL   string
	Screenshots  []Asset
	Primary      Asset
}

// Wizard drives a project submission through its steps and, on submit, runs
// the transcode, package, upload, register pipeline strictly in order.
type Wizard struct {
	client *Client
	draft  Draft
	step   Step
	status func(string)
	err    error
}

func NewWizard(client *Client, onStatus func(string)) *Wizard {
	if onStatus == nil {
		onStatus = func(string) {}
	}
	return &Wizard{client: client, step: StepDetails, status: onStatus}
}

func (w *Wizard) Step() Step    { return w.step }
func (w *Wizard) Draft() *Draft { return &w.draft }
func (w *Wizard) Err() error    { return w.err }

// Next advances one step forward. Leaving the details step requires a
// non-empty title and description.
func (w *Wizard) Next() error {
	switch w.step {
	case StepDetails:
		if strings.TrimSpace(w.draft.Title) == "" || strings.TrimSpace(w.draft.Description) == "" {
			return ErrDetailsIncomplete
		}
		return w.transition(StepMedia)
	case StepMedia:
		return w.transition(StepAssets)
	default:
		return ErrBadTransition
	}
}

// Back returns to the previous editable step. No validation applies, edits
// in earlier steps are always allowed.
func (w *Wizard) Back() error {
	switch w.step {
	case StepMedia:
		return w.transition(StepDetails)
	case StepAssets:
		return w.transition(StepMedia)
	default:
		return ErrBadTransition
	}
}

// Submit runs the upload pipeline. Screenshots already uploaded when a later
// stage fails are left in place on the server.
func (w *Wizard) Submit(ctx context.Context) (*CreatedProject, error) {
	if w.step != StepAssets {
		return nil, ErrBadTransition
	}
	if len(w.draft.Primary.Data) == 0 {
		return nil, ErrNoPrimaryFile
	}
	if err := w.transition(StepSubmitting); err != nil {
		return nil, err
	}

	project, err := w.run(ctx)
	if err != nil {
		w.err = err
		_ = w.transition(StepFailed)
		return nil, err
	}
	_ = w.transition(StepDone)
	return project, nil
}

func (w *Wizard) run(ctx context.Context) (*CreatedProject, error) {
	w.status(StatusOptimizing)
	optimized := make([]TranscodeResult, 0, len(w.draft.Screenshots))
	for _, shot := range w.draft.Screenshots {
		optimized = append(optimized, TranscodeImage(ctx, shot.Name, shot.Data))
	}

	w.status(StatusZipping)
	archiveName, archiveData, err := PackageFile(
		w.draft.Title, w.draft.Primary.Name, w.draft.Primary.Data, w.draft.Primary.ContentType)
	if err != nil {
		return nil, err
	}

	w.status(StatusUploading)
	screenshotURLs := make([]string, 0, len(optimized))
	for _, shot := range optimized {
		url, err := w.client.UploadFile(ctx, shot.Name, shot.Data, shot.ContentType)
		if err != nil {
			return nil, err
		}
		screenshotURLs = append(screenshotURLs, url)
	}
	fileURL, err := w.client.UploadFile(ctx, archiveName, archiveData, "application/zip")
	if err != nil {
		return nil, err
	}

	w.status(StatusFinalizing)
	return w.client.CreateProject(ctx, ProjectDraft{
		Title:        strings.TrimSpace(w.draft.Title),
		Description:  w.draft.Description,
		SoftwareType: w.draft.SoftwareType,
		Tags:         w.draft.Tags,
		FileURL:      fileURL,
		Screenshots:  screenshotURLs,
		YoutubeURL:   w.draft.YoutubeURL,
	})
}

func (w *Wizard) transition(to Step) error {
	for _, allowed := range transitions[w.step] {
		if allowed == to {
			w.step = to
			return nil
		}
	}
	return ErrBadTransition
}
