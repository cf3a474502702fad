package main

import (
	"log"

	"github.com/benasja/workout-sub000/config"
	"github.com/benasja/workout-sub000/controllers"
	"github.com/benasja/workout-sub000/routes"
	"github.com/benasja/workout-sub000/services"
	"github.com/benasja/workout-sub000/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	baselines := services.NewBaselineService(config.DB)
	publisher := services.NewScoreEventPublisher()
	if publisher != nil {
		defer publisher.Close()
	}

	hub := services.NewRealtimeHub()
	perfSvc := services.NewPerformanceService(config.DB, baselines, hub, publisher)
	analyticsSvc := services.NewAnalyticsService(config.DB)

	pushSvc, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
	}
	visionSvc, err := services.NewVisionService()
	if err != nil {
		log.Printf("food photo labeling disabled: %v", err)
	}

	services.InitAlertDeps(config.DB, hub, pushSvc)

	r := routes.SetupRouter(
		controllers.NewPerformanceController(perfSvc),
		controllers.NewAnalyticsController(analyticsSvc),
		controllers.NewFuelController(visionSvc),
		controllers.NewRealtimeController(hub),
		controllers.NewDeviceController(pushSvc),
	)
	r.Run(":8080")
}
