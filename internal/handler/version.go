package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version        string `json:"version"`
	GoVersion      string `json:"go_version"`
	BuildTime      string `json:"build_time,omitempty"`
	GitCommit      string `json:"git_commit,omitempty"`
	CatalogVersion string `json:"catalog_version,omitempty"`
}

// Build-time variables, set with -ldflags "-X"
var (
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion returns the deployed build and the catalog snapshot it serves
// @Summary Version information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(version string, catalog CatalogSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := VersionInfo{
			Version:   version,
			GoVersion: runtime.Version(),
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		}
		if c, err := catalog.Snapshot(r.Context()); err == nil {
			info.CatalogVersion = c.Version
		}
		respondJSON(w, http.StatusOK, info)
	}
}
