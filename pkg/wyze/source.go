package wyze

import (
	"regexp"
	"strings"

	"github.com/wyzebridge/rtspgen/pkg/discovery"
)

var nameRe = regexp.MustCompile(`[^\w-]`)

// CleanName - camera nickname to URI safe stream name:
// "Front Door #2" => "front_door_2"
func CleanName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	return strings.ToLower(nameRe.ReplaceAllString(name, ""))
}

// GetAllCamInfo - cameras from account device list, offline cameras are disabled
func (c *Cloud) GetAllCamInfo() ([]discovery.CamInfo, error) {
	cams, err := c.GetCameraList()
	if err != nil {
		return nil, err
	}

	items := make([]discovery.CamInfo, 0, len(cams))
	for _, cam := range cams {
		uri := CleanName(cam.Nickname)
		if uri == "" {
			uri = CleanName(cam.MAC)
		}

		items = append(items, discovery.CamInfo{
			URI:      uri,
			Nickname: cam.Nickname,
			Model:    cam.ModelName(),
			MAC:      cam.MAC,
			IP:       cam.IP,
			Enabled:  cam.IsOnline,
		})
	}
	return items, nil
}
