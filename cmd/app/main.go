package main

import (
	"hostconnect/config"
	"hostconnect/di"
	"hostconnect/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
