package export

import (
	"bytes"
	"encoding/json"

	"github.com/wyzebridge/rtspgen/pkg/cameras"
)

type document struct {
	Hostname string    `json:"hostname" yaml:"hostname"`
	RTSPPort int       `json:"rtsp_port" yaml:"rtsp_port"`
	Cameras  cameraMap `json:"cameras" yaml:"cameras"`
}

func newDocument(dir *cameras.Directory) *document {
	return &document{
		Hostname: dir.Hostname,
		RTSPPort: dir.RTSPPort,
		Cameras:  dir.Cameras(),
	}
}

// cameraMap - object keyed by camera ID, keeps directory order
type cameraMap []cameras.Camera

func (m cameraMap) MarshalJSON() ([]byte, error) {
	b := bytes.NewBuffer(nil)
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)

	b.WriteByte('{')
	for i, cam := range m {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := enc.Encode(cam.ID); err != nil {
			return nil, err
		}
		b.WriteByte(':')
		if err := enc.Encode(cam); err != nil {
			return nil, err
		}
	}
	b.WriteByte('}')

	return b.Bytes(), nil
}

func JSON(dir *cameras.Directory, filename string) (string, error) {
	b := bytes.NewBuffer(nil)
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(newDocument(dir)); err != nil {
		return "", err
	}

	s := b.String()
	return s, write(filename, "json", s)
}
