package main

import (
	"scholarstream/server/config"
	"scholarstream/server/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
