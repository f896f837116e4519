package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fhuszti/studio-ms-go/internal/mock"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/workspace"
)

func TestCreateProjectHandler(t *testing.T) {
	svc := &mock.ProjectManager{CreateOut: port.ProjectOutput{ID: testProjectID, Revision: 0}}
	rec := httptest.NewRecorder()
	CreateProjectHandler(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/projects", nil, nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201", rec.Code)
	}
	var out port.ProjectOutput
	decodeBody(t, rec, &out)
	if out.ID != testProjectID {
		t.Errorf("id = %s", out.ID)
	}
}

func TestGetProjectHandler(t *testing.T) {
	tests := []struct {
		name        string
		ifNoneMatch string
		renderErr   error
		wantStatus  int
		wantBody    string
	}{
		{name: "fresh", wantStatus: http.StatusOK, wantBody: `{"id":"x"}`},
		{name: "not modified", ifNoneMatch: `"abc"`, wantStatus: http.StatusNotModified},
		{name: "stale etag", ifNoneMatch: `"old"`, wantStatus: http.StatusOK, wantBody: `{"id":"x"}`},
		{name: "unknown project", renderErr: workspace.ErrWorkspaceNotFound, wantStatus: http.StatusNotFound},
		{name: "render failure", renderErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := &mock.HTTPRenderer{ProjectOut: []byte(`{"id":"x"}`), EtagProject: `"abc"`, ProjectErr: tc.renderErr}
			req := newRequest(http.MethodGet, "/projects/x", nil, nil)
			if tc.ifNoneMatch != "" {
				req.Header.Set("If-None-Match", tc.ifNoneMatch)
			}
			rec := httptest.NewRecorder()
			GetProjectHandler(r, &mock.ProjectGetter{}).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if r.GotID != testProjectID {
				t.Errorf("renderer got id %s", r.GotID)
			}
			if tc.renderErr != nil {
				return
			}
			if got := rec.Header().Get("ETag"); got != `"abc"` {
				t.Errorf("ETag = %q", got)
			}
			if got := rec.Header().Get("Cache-Control"); got != "no-cache" {
				t.Errorf("Cache-Control = %q", got)
			}
			if got := rec.Body.String(); got != tc.wantBody {
				t.Errorf("body = %q; want %q", got, tc.wantBody)
			}
		})
	}
}

func TestGetProjectHandler_MissingProjectID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects/x", nil)
	r := &mock.HTTPRenderer{}
	GetProjectHandler(r, &mock.ProjectGetter{}).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
	if r.ProjectCalled {
		t.Error("renderer called without project id")
	}
}

func TestDeleteProjectHandler(t *testing.T) {
	svc := &mock.ProjectManager{}
	rec := httptest.NewRecorder()
	DeleteProjectHandler(svc).ServeHTTP(rec, newRequest(http.MethodDelete, "/", nil, nil))
	if rec.Code != http.StatusNoContent || svc.GotID != testProjectID {
		t.Errorf("status = %d id = %s", rec.Code, svc.GotID)
	}

	svc.DeleteErr = workspace.ErrWorkspaceNotFound
	rec = httptest.NewRecorder()
	DeleteProjectHandler(svc).ServeHTTP(rec, newRequest(http.MethodDelete, "/", nil, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rec.Code)
	}
}

func TestGetPreviewHandler(t *testing.T) {
	svc := &mock.ProjectManager{PreviewOut: model.Preview{Text: "hello"}}
	rec := httptest.NewRecorder()
	GetPreviewHandler(svc).ServeHTTP(rec, newRequest(http.MethodGet, "/", nil, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out model.Preview
	decodeBody(t, rec, &out)
	if out.Text != "hello" {
		t.Errorf("text = %q", out.Text)
	}
}

func TestSetScriptHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCalled bool
		wantScript string
	}{
		{"sets script", `{"script":"Intro"}`, http.StatusNoContent, true, "Intro"},
		{"empty script is allowed", `{"script":""}`, http.StatusNoContent, true, ""},
		{"missing script", `{}`, http.StatusBadRequest, false, ""},
		{"bad json", `{`, http.StatusBadRequest, false, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.ProjectManager{}
			rec := httptest.NewRecorder()
			SetScriptHandler(svc).ServeHTTP(rec, newRequest(http.MethodPut, "/", strings.NewReader(tc.body), nil))
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if svc.SetScriptCalled != tc.wantCalled {
				t.Fatalf("called = %v", svc.SetScriptCalled)
			}
			if svc.GotScript != tc.wantScript {
				t.Errorf("script = %q; want %q", svc.GotScript, tc.wantScript)
			}
		})
	}
}
