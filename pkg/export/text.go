package export

import (
	"fmt"
	"strings"

	"github.com/wyzebridge/rtspgen/pkg/cameras"
)

func Text(dir *cameras.Directory, filename string) (string, error) {
	var sb strings.Builder

	sb.WriteString("# Wyze Bridge RTSP URLs\n")
	fmt.Fprintf(&sb, "# Generated for %s:%d\n", dir.Hostname, dir.RTSPPort)
	sb.WriteString("#\n")

	for _, cam := range dir.Cameras() {
		fmt.Fprintf(&sb, "# %s (%s)\n", oneLine(cam.Nickname), oneLine(cam.Model))
		sb.WriteString(cam.RTSP + "\n")
		sb.WriteString("\n")
	}

	s := sb.String()
	return s, write(filename, "text", s)
}

// Playlist - M3U playlist for VLC and other players, only enabled cameras
func Playlist(dir *cameras.Directory, filename string) (string, error) {
	var sb strings.Builder

	sb.WriteString("#EXTM3U\n")

	for _, cam := range dir.Cameras() {
		if !cam.Enabled {
			continue
		}
		fmt.Fprintf(&sb, "#EXTINF:-1,%s\n", oneLine(cam.Nickname))
		sb.WriteString(cam.RTSP + "\n")
	}

	s := sb.String()
	return s, write(filename, "m3u", s)
}
