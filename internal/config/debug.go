package config

import "os"

func IsDebug() bool {
	return os.Getenv(EnvDebug) == "1"
}
