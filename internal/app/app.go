package app

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
)

var Version = "0.4.0"

var Info = map[string]any{
	"version": Version,
}

func Init() {
	var confs flagConfig
	var version bool

	flag.Var(&confs, "config", "rtspgen config (path to file or raw text), support multiple")
	flag.BoolVar(&version, "version", false, "Print the version of the application and exit")
	flag.Parse()

	if version {
		fmt.Printf("rtspgen version %s%s %s/%s\n", Version, revision(), runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	initConfig(confs)
	initLogger()

	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	Logger.Info().Str("version", Version).Str("platform", platform).Msg("rtspgen")
	Logger.Debug().Str("version", runtime.Version()).Msg("build")

	if ConfigPath != "" {
		Logger.Info().Str("path", ConfigPath).Msg("config")
	}
}

func revision() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				if len(setting.Value) > 7 {
					return " (" + setting.Value[:7] + ")"
				}
				return " (" + setting.Value + ")"
			}
		}
	}
	return ""
}
