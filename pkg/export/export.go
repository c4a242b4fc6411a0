package export

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/wyzebridge/rtspgen/pkg/cameras"
)

// Renderer - build export content from directory and write it to filename
// if it is not empty. Existing file is overwritten.
type Renderer func(dir *cameras.Directory, filename string) (string, error)

var Renderers = map[string]Renderer{
	"text":  Text,
	"json":  JSON,
	"yaml":  YAML,
	"hass":  HomeAssistant,
	"m3u":   Playlist,
	"table": Table,
}

const (
	MimeText = "text/plain; charset=utf-8"
	MimeJSON = "application/json"
	MimeYAML = "application/yaml"
	MimeM3U  = "audio/x-mpegurl"
)

func MimeType(format string) string {
	switch format {
	case "json":
		return MimeJSON
	case "yaml", "hass":
		return MimeYAML
	case "m3u":
		return MimeM3U
	}
	return MimeText
}

// Run - render every format from targets (format => filename).
// Each format is independent, so one failed write don't stop the rest.
func Run(dir *cameras.Directory, targets map[string]string) error {
	formats := make([]string, 0, len(targets))
	for format := range targets {
		formats = append(formats, format)
	}
	sort.Strings(formats)

	var errs []error

	for _, format := range formats {
		render, ok := Renderers[format]
		if !ok {
			errs = append(errs, fmt.Errorf("export: unknown format: %s", format))
			continue
		}

		if _, err := render(dir, targets[format]); err != nil {
			log.Error().Err(err).Str("format", format).Msg("[export] render")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func write(filename, format, data string) error {
	if filename == "" {
		return nil
	}

	if err := os.WriteFile(filename, []byte(data), 0644); err != nil {
		return fmt.Errorf("export: write %s: %w", format, err)
	}

	log.Info().Str("path", filename).Msgf("[export] %s", format)
	return nil
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// oneLine - text and playlist formats are line based
func oneLine(s string) string {
	return lineBreaks.Replace(s)
}
