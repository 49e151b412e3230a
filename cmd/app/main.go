package main

import (
	"jaruri/config"
	"jaruri/di"
	"jaruri/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
