package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fhuszti/studio-ms-go/internal/port"
)

const multipartMemory = 32 << 20

// readUpload parses the multipart "file" field under the maxBytes limit. The
// returned cleanup must be called once the upload is consumed. It has
// answered the request when ok is false.
func readUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (in port.UploadInput, cleanup func(), ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d bytes", maxBytes), nil)
			return port.UploadInput{}, nil, false
		}
		WriteError(w, http.StatusBadRequest, "invalid multipart payload", err)
		return port.UploadInput{}, nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		_ = r.MultipartForm.RemoveAll()
		WriteError(w, http.StatusBadRequest, "file is required", err)
		return port.UploadInput{}, nil, false
	}
	cleanup = func() {
		_ = file.Close()
		_ = r.MultipartForm.RemoveAll()
	}

	contentType := mediaType(header.Header.Get("Content-Type"))
	if contentType == "" || contentType == "application/octet-stream" {
		sniff := make([]byte, 512)
		n, _ := io.ReadFull(file, sniff)
		contentType = mediaType(http.DetectContentType(sniff[:n]))
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			cleanup()
			WriteError(w, http.StatusInternalServerError, "could not read upload", err)
			return port.UploadInput{}, nil, false
		}
	}

	return port.UploadInput{
		Name:     header.Filename,
		MimeType: contentType,
		Size:     header.Size,
		Reader:   file,
	}, cleanup, true
}
