package uploader

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	*httptest.Server
	uploads     []string
	projectBody ProjectDraft
	failCreate  bool
	failUploads bool
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/upload", func(w http.ResponseWriter, r *http.Request) {
		if fs.failUploads {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"ok":0,"code":500,"message":"disk full"}`))
			return
		}
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		fs.uploads = append(fs.uploads, header.Filename)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"url":  "/uploads/" + header.Filename,
			"name": header.Filename,
		})
	})
	mux.HandleFunc("/api/v1/projects", func(w http.ResponseWriter, r *http.Request) {
		if fs.failCreate {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"ok":0,"code":400,"message":"Title must be 100 characters or fewer"}`))
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fs.projectBody))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":          "proj-1",
			"title":       fs.projectBody.Title,
			"file_url":    fs.projectBody.FileURL,
			"screenshots": fs.projectBody.Screenshots,
		})
	})
	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

func readyWizard(t *testing.T, client *Client, statuses *[]string) *Wizard {
	t.Helper()
	w := NewWizard(client, func(s string) {
		if statuses != nil {
			*statuses = append(*statuses, s)
		}
	})
	draft := w.Draft()
	draft.Title = "Test Run"
	draft.Description = "A MATLAB test harness"
	draft.SoftwareType = "MATLAB/Simulink"
	draft.Tags = []string{"matlab"}
	draft.Screenshots = []Asset{
		{Name: "plot one.png", Data: pngFixture(t)},
		{Name: "console.txt", Data: []byte("not an image")},
	}
	draft.Primary = Asset{Name: "sim.m", Data: []byte("disp('run')"), ContentType: "text/plain"}
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	return w
}

func TestDetailsGateBlocksEmptyDraft(t *testing.T) {
	w := NewWizard(NewClient("http://localhost", "t"), nil)
	require.ErrorIs(t, w.Next(), ErrDetailsIncomplete)
	require.Equal(t, StepDetails, w.Step())

	w.Draft().Title = "Only a title"
	require.ErrorIs(t, w.Next(), ErrDetailsIncomplete)

	w.Draft().Description = "now complete"
	require.NoError(t, w.Next())
	require.Equal(t, StepMedia, w.Step())
}

func TestBackNavigationIsUnrestricted(t *testing.T) {
	w := NewWizard(NewClient("http://localhost", "t"), nil)
	w.Draft().Title = "T"
	w.Draft().Description = "D"
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.Equal(t, StepAssets, w.Step())

	require.NoError(t, w.Back())
	require.Equal(t, StepMedia, w.Step())
	require.NoError(t, w.Back())
	require.Equal(t, StepDetails, w.Step())

	require.ErrorIs(t, w.Back(), ErrBadTransition)
}

func TestSubmitEndToEnd(t *testing.T) {
	fs := newFakeServer(t)
	var statuses []string
	w := readyWizard(t, NewClient(fs.URL, "token"), &statuses)

	created, err := w.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, StepDone, w.Step())
	require.Equal(t, "proj-1", created.ID)

	require.Equal(t, []string{
		StatusOptimizing, StatusZipping, StatusUploading, StatusFinalizing,
	}, statuses)

	// Screenshots first, strictly in order, then the packaged archive.
	require.Equal(t, []string{"plot one.jpg", "console.txt", "Test_Run.zip"}, fs.uploads)

	require.Equal(t, "Test Run", fs.projectBody.Title)
	require.Equal(t, "MATLAB/Simulink", fs.projectBody.SoftwareType)
	require.Equal(t, "/uploads/Test_Run.zip", fs.projectBody.FileURL)
	require.Equal(t, []string{"/uploads/plot one.jpg", "/uploads/console.txt"}, fs.projectBody.Screenshots)
}

func TestSubmitWithoutPrimaryFile(t *testing.T) {
	fs := newFakeServer(t)
	w := readyWizard(t, NewClient(fs.URL, "token"), nil)
	w.Draft().Primary = Asset{}

	_, err := w.Submit(context.Background())
	require.ErrorIs(t, err, ErrNoPrimaryFile)
	require.Equal(t, StepAssets, w.Step())
	require.Empty(t, fs.uploads)
}

func TestSubmitFailureOnRegistration(t *testing.T) {
	fs := newFakeServer(t)
	fs.failCreate = true
	w := readyWizard(t, NewClient(fs.URL, "token"), nil)

	_, err := w.Submit(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "Title must be 100 characters or fewer")
	require.Equal(t, StepFailed, w.Step())
	require.Equal(t, err, w.Err())

	// Assets uploaded before the failure stay on the server.
	require.Len(t, fs.uploads, 3)
}

func TestSubmitFailureOnUpload(t *testing.T) {
	fs := newFakeServer(t)
	fs.failUploads = true
	w := readyWizard(t, NewClient(fs.URL, "token"), nil)

	_, err := w.Submit(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
	require.Equal(t, StepFailed, w.Step())

	// No second submission from a terminal state.
	_, err = w.Submit(context.Background())
	require.ErrorIs(t, err, ErrBadTransition)
}

func TestStepNames(t *testing.T) {
	names := []string{}
	for _, s := range []Step{StepDetails, StepMedia, StepAssets, StepSubmitting, StepDone, StepFailed} {
		names = append(names, s.String())
	}
	require.Equal(t, strings.Split("details,media,assets,submitting,done,failed", ","), names)
}
