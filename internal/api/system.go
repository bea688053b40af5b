package api

import "net/http"

// SystemHandler serves health and version endpoints
type SystemHandler struct{}

type versionResponse struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
}

// VersionHandler reports the build version
func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, versionResponse{Version: version, BuildTime: buildTime}, http.StatusOK)
	}
}

// HealthHandler reports liveness
func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
