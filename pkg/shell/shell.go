package shell

import (
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
)

var envRe = regexp.MustCompile(`\${([^}{]+)}`)

// ReplaceEnvVars - replace ${NAME} and ${NAME:default} with env values,
// unknown names without default are left as is
func ReplaceEnvVars(text string) string {
	return envRe.ReplaceAllStringFunc(text, func(match string) string {
		key, def, dok := strings.Cut(match[2:len(match)-1], ":")

		if value, vok := os.LookupEnv(key); vok {
			return value
		}

		if dok {
			return def
		}

		return match
	})
}

func RunUntilSignal() os.Signal {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	return <-sigs
}
