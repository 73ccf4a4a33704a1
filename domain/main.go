package domain

import (
	"github.com/pdelaplana/marvin/config"
	"github.com/pdelaplana/marvin/domain/application"
	"github.com/pdelaplana/marvin/domain/monitoring"
	"github.com/pdelaplana/marvin/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.DB, appConfig.Logger, appConfig.Cache))
	appConfig.RouterService.MountController(waitlist.NewWaitlistController(appConfig.DB, appConfig.Logger))
	appConfig.RouterService.MountController(application.NewApplicationController(appConfig.DB, appConfig.Logger))
}
