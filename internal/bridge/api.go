package bridge

import (
	"net/http"

	"github.com/wyzebridge/rtspgen/internal/api"
	"github.com/wyzebridge/rtspgen/pkg/export"
)

func apiSummary(w http.ResponseWriter, r *http.Request) {
	dir, err := Directory()
	if err != nil {
		api.Error(w, err)
		return
	}

	api.ResponsePrettyJSON(w, dir.Summary())
}

func apiStreams(w http.ResponseWriter, r *http.Request) {
	dir, err := Directory()
	if err != nil {
		api.Error(w, err)
		return
	}

	api.ResponsePrettyJSON(w, dir.RTSPURLs())
}

func apiRTSP(w http.ResponseWriter, r *http.Request) {
	dir, err := Directory()
	if err != nil {
		api.Error(w, err)
		return
	}

	id := r.URL.Query().Get("id")
	rawURL, ok := dir.RTSPURL(id)
	if !ok {
		http.Error(w, "camera not found: "+id, http.StatusNotFound)
		return
	}

	api.Response(w, rawURL, api.MimeText)
}

// apiExport - /api/bridge/export?format=m3u
func apiExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	render, ok := export.Renderers[format]
	if !ok {
		http.Error(w, "unknown format: "+format, http.StatusBadRequest)
		return
	}

	dir, err := Directory()
	if err != nil {
		api.Error(w, err)
		return
	}

	s, err := render(dir, "")
	if err != nil {
		api.Error(w, err)
		return
	}

	api.Response(w, s, export.MimeType(format))
}
