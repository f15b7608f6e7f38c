package main

import (
	"github.com/DesaiVishal-16/Longevix/config"
	"github.com/DesaiVishal-16/Longevix/logger"
	"github.com/DesaiVishal-16/Longevix/routes"
)

func main() {
	config.Init()
	log := logger.New("longevix-api")

	config.InitDB()

	r := routes.SetupRouter(log)
	if err := r.Run(":" + config.Env.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
