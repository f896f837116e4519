package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fhuszti/studio-ms-go/internal/mock"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/recorder"
)

func TestStartRecordingHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"started", nil, http.StatusNoContent},
		{"already recording", recorder.ErrAlreadyRecording, http.StatusConflict},
		{"no device", recorder.ErrDeviceUnavailable, http.StatusServiceUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.RecordingController{StartErr: tc.err}
			rec := httptest.NewRecorder()
			StartRecordingHandler(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/", nil, nil))
			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

func TestAppendRecordingHandler(t *testing.T) {
	svc := &mock.RecordingController{}
	rec := httptest.NewRecorder()
	AppendRecordingHandler(svc, 1024).ServeHTTP(rec, newRequest(http.MethodPost, "/", bytes.NewReader([]byte("chunk")), nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out AppendRecordingResponse
	decodeBody(t, rec, &out)
	if out.AppendedBytes != 5 || string(svc.Appended) != "chunk" {
		t.Errorf("appended %d %q", out.AppendedBytes, svc.Appended)
	}
}

func TestAppendRecordingHandler_TooLarge(t *testing.T) {
	svc := &mock.RecordingController{}
	rec := httptest.NewRecorder()
	AppendRecordingHandler(svc, 4).ServeHTTP(rec, newRequest(http.MethodPost, "/", bytes.NewReader([]byte("chunk")), nil))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d; want 413", rec.Code)
	}
}

func TestAppendRecordingHandler_NotRecording(t *testing.T) {
	svc := &mock.RecordingController{AppendErr: recorder.ErrNotRecording}
	rec := httptest.NewRecorder()
	AppendRecordingHandler(svc, 1024).ServeHTTP(rec, newRequest(http.MethodPost, "/", bytes.NewReader([]byte("x")), nil))
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d; want 409", rec.Code)
	}
}

func TestStopRecordingHandler(t *testing.T) {
	svc := &mock.RecordingController{VoiceoverOut: model.Voiceover{ID: "v1", Name: "Recording 1"}}
	rec := httptest.NewRecorder()
	StopRecordingHandler(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/", nil, nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	var out model.Voiceover
	decodeBody(t, rec, &out)
	if out.Name != "Recording 1" {
		t.Errorf("name = %q", out.Name)
	}

	svc.StopErr = recorder.ErrNotRecording
	rec = httptest.NewRecorder()
	StopRecordingHandler(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/", nil, nil))
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d; want 409", rec.Code)
	}
}
