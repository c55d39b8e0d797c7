package helper

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ResolveEnv replaces values of the form "ENV:NAME" with the content of the
// environment variable NAME.
func ResolveEnv(in string) string {
	if strings.HasPrefix(in, "ENV:") {
		return os.Getenv(in[4:])
	}
	return in
}

func SetDefaultStringIfEmpty(value, defaultValue, field, kind string) string {
	if len(value) == 0 {
		log.WithFields(log.Fields{"kind": kind, "field": field}).Debugf("no value specified, assuming default %q", defaultValue)
		return defaultValue
	}
	return value
}

func SetDefaultIntIfZero(value, defaultValue int, field, kind string) int {
	if value == 0 {
		log.WithFields(log.Fields{"kind": kind, "field": field}).Debugf("no value specified, assuming default %d", defaultValue)
		return defaultValue
	}
	return value
}
