package application

import (
	"github.com/pdelaplana/marvin/config/router"
	"github.com/pdelaplana/marvin/internal/log"
	"gorm.io/gorm"
)

type ApplicationServiceFactory interface {
	CreateService() ApplicationService
	CreateController() *router.RESTController
}

type DefaultApplicationServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewApplicationServiceFactory(db *gorm.DB, logger *log.Logger) ApplicationServiceFactory {
	return &DefaultApplicationServiceFactory{
		db:     db,
		logger: logger,
	}
}

func (f *DefaultApplicationServiceFactory) CreateService() ApplicationService {
	repository := NewApplicationRepository(f.db)
	return NewApplicationService(f.logger, repository)
}

func (f *DefaultApplicationServiceFactory) CreateController() *router.RESTController {
	return NewApplicationController(f.db, f.logger)
}
