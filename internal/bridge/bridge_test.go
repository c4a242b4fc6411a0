package bridge

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/wyzebridge/rtspgen/pkg/cameras"
	"github.com/wyzebridge/rtspgen/pkg/discovery"
)

func setup(t *testing.T, srcs ...discovery.Source) {
	log = zerolog.Nop()
	sources = srcs
	hostname = "bridge.local"
	rtspPort = cameras.DefaultRTSPPort
	exports = nil
	hassConfig = ""

	t.Cleanup(func() {
		sources = nil
		exports = nil
		hassConfig = ""
	})
}

var testCameras = discovery.Static{
	{URI: "front_door", Nickname: "Front Door", Model: "Wyze Cam v4", Enabled: true},
	{URI: "garage", Nickname: "Garage"},
}

func TestDirectory(t *testing.T) {
	setup(t)

	_, err := Directory()
	require.NotNil(t, err)

	AddSource(testCameras)
	AddSource(discovery.Static{{URI: "garage", Nickname: "Garage v2", Enabled: true}})

	dir, err := Directory()
	require.Nil(t, err)
	require.Equal(t, 2, dir.Count())
	require.Equal(t, 2, dir.EnabledCount())

	u, ok := dir.RTSPURL("front_door")
	require.True(t, ok)
	require.Equal(t, "rtsp://bridge.local:8554/front_door", u)
}

func TestRun(t *testing.T) {
	setup(t, testCameras)

	tmp := t.TempDir()
	exports = map[string]string{
		"json": filepath.Join(tmp, "cameras.json"),
		"m3u":  filepath.Join(tmp, "cameras.m3u"),
	}
	hassConfig = filepath.Join(tmp, "configuration.yaml")
	require.Nil(t, os.WriteFile(hassConfig, []byte("default_config:\n"), 0644))

	require.Nil(t, Run())

	b, err := os.ReadFile(exports["m3u"])
	require.Nil(t, err)
	require.Equal(t, "#EXTM3U\n#EXTINF:-1,Front Door\nrtsp://bridge.local:8554/front_door\n", string(b))

	b, err = os.ReadFile(exports["json"])
	require.Nil(t, err)

	var v struct {
		Cameras map[string]struct {
			RTSPURL string `json:"rtsp_url"`
		} `json:"cameras"`
	}
	require.Nil(t, json.Unmarshal(b, &v))
	require.Equal(t, "rtsp://bridge.local:8554/front_door", v.Cameras["front_door"].RTSPURL)

	b, err = os.ReadFile(hassConfig)
	require.Nil(t, err)
	require.Contains(t, string(b), "default_config:\ncamera:\n  - platform: generic\n    name: Front Door\n")
	require.NotContains(t, string(b), "Garage")
}

func TestRunPartialFailure(t *testing.T) {
	setup(t, testCameras)

	tmp := t.TempDir()
	exports = map[string]string{
		"yaml": filepath.Join(tmp, "missing", "cameras.yaml"),
		"text": filepath.Join(tmp, "cameras.txt"),
	}

	require.NotNil(t, Run())
	require.FileExists(t, exports["text"])
}

func TestRunSourceError(t *testing.T) {
	setup(t, discovery.SourceFunc(func() ([]discovery.CamInfo, error) {
		return nil, errors.New("wyze: API error: 2001 - AccessTokenError")
	}))

	exports = map[string]string{"text": filepath.Join(t.TempDir(), "cameras.txt")}

	require.EqualError(t, Run(), "wyze: API error: 2001 - AccessTokenError")
	require.NoFileExists(t, exports["text"])
}

func TestAPI(t *testing.T) {
	setup(t, testCameras)

	w := httptest.NewRecorder()
	apiSummary(w, httptest.NewRequest("GET", "/api/bridge", nil))
	require.JSONEq(t, `{
		"hostname": "bridge.local",
		"rtsp_port": 8554,
		"total_cameras": 2,
		"enabled_cameras": 1,
		"cameras": ["front_door", "garage"]
	}`, w.Body.String())

	w = httptest.NewRecorder()
	apiStreams(w, httptest.NewRequest("GET", "/api/bridge/streams", nil))
	require.JSONEq(t, `[
		{"id": "front_door", "url": "rtsp://bridge.local:8554/front_door"},
		{"id": "garage", "url": "rtsp://bridge.local:8554/garage"}
	]`, w.Body.String())

	w = httptest.NewRecorder()
	apiRTSP(w, httptest.NewRequest("GET", "/api/bridge/rtsp?id=garage", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "rtsp://bridge.local:8554/garage", w.Body.String())

	w = httptest.NewRecorder()
	apiRTSP(w, httptest.NewRequest("GET", "/api/bridge/rtsp?id=missing", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPIExport(t *testing.T) {
	setup(t, testCameras)

	w := httptest.NewRecorder()
	apiExport(w, httptest.NewRequest("GET", "/api/bridge/export?format=m3u", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "audio/x-mpegurl", w.Header().Get("Content-Type"))
	require.Equal(t, "#EXTM3U\n#EXTINF:-1,Front Door\nrtsp://bridge.local:8554/front_door\n", w.Body.String())

	w = httptest.NewRecorder()
	apiExport(w, httptest.NewRequest("GET", "/api/bridge/export", nil))
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.Contains(t, w.Body.String(), `"rtsp_port": 8554`)

	w = httptest.NewRecorder()
	apiExport(w, httptest.NewRequest("GET", "/api/bridge/export?format=xml", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}
