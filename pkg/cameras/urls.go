package cameras

import "fmt"

const (
	DefaultRTSPPort = 8554

	// fixed ports of the bridge servers, only RTSP is configurable
	RTMPPort     = 1935
	HLSPort      = 8888
	WebRTCPort   = 8889
	SnapshotPort = 5000
)

type URLs struct {
	RTSP     string `json:"rtsp_url" yaml:"rtsp_url"`
	RTMP     string `json:"rtmp_url" yaml:"rtmp_url"`
	HLS      string `json:"hls_url" yaml:"hls_url"`
	WebRTC   string `json:"webrtc_url" yaml:"webrtc_url"`
	Snapshot string `json:"snapshot_url" yaml:"snapshot_url"`
}

// NewURLs - build all stream addresses for camera.
// The id is used as a path segment as is, sanitizing is up to the caller.
func NewURLs(hostname string, rtspPort int, id string) URLs {
	return URLs{
		RTSP:     fmt.Sprintf("rtsp://%s:%d/%s", hostname, rtspPort, id),
		RTMP:     fmt.Sprintf("rtmp://%s:%d/%s", hostname, RTMPPort, id),
		HLS:      fmt.Sprintf("http://%s:%d/%s/", hostname, HLSPort, id),
		WebRTC:   fmt.Sprintf("http://%s:%d/%s/", hostname, WebRTCPort, id),
		Snapshot: fmt.Sprintf("http://%s:%d/snapshot/%s.jpg", hostname, SnapshotPort, id),
	}
}
