package export

import (
	"github.com/wyzebridge/rtspgen/pkg/cameras"
	"github.com/wyzebridge/rtspgen/pkg/yaml"
)

func (m cameraMap) MarshalYAML() (any, error) {
	node := yaml.MappingNode()
	for _, cam := range m {
		if err := yaml.AppendPair(node, cam.ID, cam); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func YAML(dir *cameras.Directory, filename string) (string, error) {
	b, err := yaml.Encode(newDocument(dir), 2)
	if err != nil {
		return "", err
	}

	s := string(b)
	return s, write(filename, "yaml", s)
}
