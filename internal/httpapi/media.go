package httpapi

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
)

// maxUploadBytes caps venue media uploads at 10 MB.
const maxUploadBytes = 10 << 20

type uploadResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

func (s *Server) handleUploadMedia(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart payload"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing file field"})
		return
	}
	defer file.Close()

	folder := strings.Trim(r.FormValue("folder"), "/")
	if folder == "" {
		folder = "venues"
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "only image uploads are accepted"})
		return
	}

	objectPath := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), path.Ext(header.Filename))
	url, err := s.media.Upload(r.Context(), objectPath, contentType, file)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{URL: url, Path: objectPath})
}

func (s *Server) handleDeleteMedia(w http.ResponseWriter, r *http.Request) {
	objectPath := r.URL.Query().Get("path")
	if objectPath == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing path parameter"})
		return
	}

	if err := s.media.Delete(r.Context(), objectPath); err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
