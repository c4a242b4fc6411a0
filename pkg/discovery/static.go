package discovery

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Static - cameras from config file:
//
//	cameras:
//	  front_door:
//	    nickname: Front Door
//	    enabled: true
//
// Keeps the order of the config.
type Static []CamInfo

func (s Static) GetAllCamInfo() ([]CamInfo, error) {
	return s, nil
}

func (s *Static) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("discovery: cameras must be a mapping, line %d", node.Line)
	}

	items := make(Static, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		info := CamInfo{URI: node.Content[i].Value}

		// `front_door:` without body is allowed
		if value := node.Content[i+1]; value.ShortTag() != "!!null" {
			if err := value.Decode(&info); err != nil {
				return err
			}
		}

		items = append(items, info)
	}

	*s = append(*s, items...)
	return nil
}
