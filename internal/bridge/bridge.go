package bridge

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/wyzebridge/rtspgen/internal/api"
	"github.com/wyzebridge/rtspgen/internal/app"
	"github.com/wyzebridge/rtspgen/pkg/cameras"
	"github.com/wyzebridge/rtspgen/pkg/discovery"
	"github.com/wyzebridge/rtspgen/pkg/export"
)

func Init() {
	var cfg struct {
		Mod struct {
			Hostname   string            `yaml:"hostname"`
			RTSPPort   int               `yaml:"rtsp_port"`
			Export     map[string]string `yaml:"export"`
			HassConfig string            `yaml:"hass_config"`
		} `yaml:"bridge"`
		Cameras discovery.Static `yaml:"cameras"`
	}

	cfg.Mod.RTSPPort = cameras.DefaultRTSPPort

	app.LoadConfig(&cfg)

	log = app.GetLogger("bridge")

	hostname = cfg.Mod.Hostname
	rtspPort = cfg.Mod.RTSPPort
	exports = cfg.Mod.Export
	hassConfig = cfg.Mod.HassConfig

	if len(cfg.Cameras) > 0 {
		AddSource(cfg.Cameras)
	}

	api.HandleFunc("api/bridge", apiSummary)
	api.HandleFunc("api/bridge/streams", apiStreams)
	api.HandleFunc("api/bridge/rtsp", apiRTSP)
	api.HandleFunc("api/bridge/export", apiExport)
}

func AddSource(src discovery.Source) {
	mu.Lock()
	sources = append(sources, src)
	mu.Unlock()
}

// Directory - fresh discovery pass over all sources
func Directory() (*cameras.Directory, error) {
	mu.Lock()
	defer mu.Unlock()

	if len(sources) == 0 {
		return nil, errors.New("bridge: no camera sources in config")
	}

	return discovery.Build(sources, hostname, rtspPort)
}

// Run - build directory and write all exports from config
func Run() error {
	dir, err := Directory()
	if err != nil {
		return err
	}

	log.Info().Str("host", dir.Hostname).Int("total", dir.Count()).
		Int("enabled", dir.EnabledCount()).Msg("[bridge] cameras")

	if log.Debug().Enabled() {
		s, _ := export.Table(dir, "")
		log.Debug().Msg("[bridge] cameras\n" + s)
	}

	var errs []error

	if err = export.Run(dir, exports); err != nil {
		errs = append(errs, err)
	}

	if hassConfig != "" {
		if err = mergeHass(dir, hassConfig); err != nil {
			log.Error().Err(err).Str("path", hassConfig).Msg("[bridge] hass config")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func mergeHass(dir *cameras.Directory, filename string) error {
	// missing file is OK, new one will be created
	src, err := os.ReadFile(filename)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	dst, err := export.MergeHomeAssistant(dir, src)
	if err != nil {
		return fmt.Errorf("bridge: merge hass config: %w", err)
	}

	if err = os.WriteFile(filename, dst, 0644); err != nil {
		return err
	}

	log.Info().Str("path", filename).Msg("[bridge] hass config updated")
	return nil
}

var (
	hostname   string
	rtspPort   int
	exports    map[string]string
	hassConfig string

	sources discovery.Sources
	mu      sync.Mutex

	log zerolog.Logger
)
