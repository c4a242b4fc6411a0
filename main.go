package main

import (
	"os"

	"github.com/wyzebridge/rtspgen/internal/api"
	"github.com/wyzebridge/rtspgen/internal/app"
	"github.com/wyzebridge/rtspgen/internal/bridge"
	"github.com/wyzebridge/rtspgen/internal/wyze"
	"github.com/wyzebridge/rtspgen/pkg/shell"
)

func main() {
	app.Init() // init config and logs

	api.Init()    // init HTTP API server
	bridge.Init() // load cameras from config
	wyze.Init()   // add Wyze accounts as camera source

	err := bridge.Run()
	if err != nil {
		app.Logger.Error().Err(err).Msg("[bridge] export")
	}

	if !api.Enabled() {
		if err != nil {
			os.Exit(1)
		}
		return
	}

	sig := shell.RunUntilSignal()
	app.Logger.Info().Str("signal", sig.String()).Msg("exit")
}
