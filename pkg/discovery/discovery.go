package discovery

import (
	"errors"
	"os"
	"strings"

	"github.com/wyzebridge/rtspgen/pkg/cameras"
)

// CamInfo - camera as reported by discovery source.
// URI should be already sanitized, it goes to stream URLs as is.
type CamInfo struct {
	URI      string `yaml:"-"`
	Nickname string `yaml:"nickname"`
	Model    string `yaml:"model"`
	MAC      string `yaml:"mac"`
	IP       string `yaml:"ip"`
	Enabled  bool   `yaml:"enabled"`
}

type Source interface {
	GetAllCamInfo() ([]CamInfo, error)
}

type SourceFunc func() ([]CamInfo, error)

func (f SourceFunc) GetAllCamInfo() ([]CamInfo, error) {
	return f()
}

// Sources - query all sources one by one, fails on first error
type Sources []Source

func (s Sources) GetAllCamInfo() ([]CamInfo, error) {
	var items []CamInfo
	for _, src := range s {
		info, err := src.GetAllCamInfo()
		if err != nil {
			return nil, err
		}
		items = append(items, info...)
	}
	return items, nil
}

const (
	EnvBridgeIP = "WB_IP"
	EnvDomain   = "DOMAIN"
)

// Hostname - resolve bridge host: override (as is), WB_IP, DOMAIN, localhost
func Hostname(override string) string {
	if override != "" {
		return override
	}
	if s := cleanEnv(os.Getenv(EnvBridgeIP)); s != "" {
		return s
	}
	if s := cleanEnv(os.Getenv(EnvDomain)); s != "" {
		return s
	}
	return "localhost"
}

func cleanEnv(s string) string {
	return strings.ToLower(strings.Trim(s, "'\" \n\t\r"))
}

// Build - new directory from one pass over the source, nothing is cached
func Build(src Source, hostname string, rtspPort int) (*cameras.Directory, error) {
	if src == nil {
		return nil, errors.New("discovery: no source")
	}

	if rtspPort == 0 {
		rtspPort = cameras.DefaultRTSPPort
	}

	items, err := src.GetAllCamInfo()
	if err != nil {
		return nil, err
	}

	dir := cameras.NewDirectory(Hostname(hostname), rtspPort)

	for _, info := range items {
		nickname := info.Nickname
		if nickname == "" {
			nickname = info.URI
		}
		dir.AddCamera(info.URI, nickname, info.Model, info.MAC, info.IP, info.Enabled)
	}

	return dir, nil
}
