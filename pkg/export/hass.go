package export

import (
	"github.com/wyzebridge/rtspgen/pkg/cameras"
	"github.com/wyzebridge/rtspgen/pkg/yaml"
)

// hassCamera - Home Assistant generic camera platform entry.
// VerifySSL is always false. This is an insecure default, kept for
// compatibility with existing HA configs.
type hassCamera struct {
	Platform      string `yaml:"platform"`
	Name          string `yaml:"name"`
	StreamSource  string `yaml:"stream_source"`
	StillImageURL string `yaml:"still_image_url"`
	VerifySSL     bool   `yaml:"verify_ssl"`
}

func hassCameras(dir *cameras.Directory) []hassCamera {
	items := make([]hassCamera, 0, dir.Count())
	for _, cam := range dir.Cameras() {
		if !cam.Enabled {
			continue
		}
		items = append(items, hassCamera{
			Platform:      "generic",
			Name:          cam.Nickname,
			StreamSource:  cam.RTSP,
			StillImageURL: cam.Snapshot,
		})
	}
	return items
}

func HomeAssistant(dir *cameras.Directory, filename string) (string, error) {
	v := struct {
		Camera []hassCamera `yaml:"camera"`
	}{
		Camera: hassCameras(dir),
	}

	b, err := yaml.Encode(v, 2)
	if err != nil {
		return "", err
	}

	s := string(b)
	return s, write(filename, "hass", s)
}

// MergeHomeAssistant - replace camera section in existing HA configuration.yaml
// and keep the rest of the file untouched
func MergeHomeAssistant(dir *cameras.Directory, src []byte) ([]byte, error) {
	return yaml.Patch(src, "camera", hassCameras(dir))
}
