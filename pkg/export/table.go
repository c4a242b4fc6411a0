package export

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/wyzebridge/rtspgen/pkg/cameras"
)

// Table - human friendly overview for console and logs
func Table(dir *cameras.Directory, filename string) (string, error) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(fmt.Sprintf("%s:%d", dir.Hostname, dir.RTSPPort))
	tw.AppendHeader(table.Row{"ID", "Name", "Model", "Enabled", "RTSP"})

	for _, cam := range dir.Cameras() {
		enabled := "no"
		if cam.Enabled {
			enabled = "yes"
		}
		tw.AppendRow(table.Row{cam.ID, oneLine(cam.Nickname), cam.Model, enabled, cam.RTSP})
	}

	tw.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d/%d", dir.EnabledCount(), dir.Count()), ""})

	s := tw.Render() + "\n"
	return s, write(filename, "table", s)
}
