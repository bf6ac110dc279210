// Package leads provides the seller-lead bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"satei_admin_backend/internal/http"
	"satei_admin_backend/internal/leads/classify"
	"satei_admin_backend/internal/leads/handler"
	"satei_admin_backend/internal/leads/repository"
	"satei_admin_backend/internal/leads/service"
	"satei_admin_backend/platform/config"
	"satei_admin_backend/platform/logger"
	"satei_admin_backend/platform/validator"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	engine  *classify.Engine
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, cfg *config.Config, log *logger.Logger) (*Module, error) {
	// Date fields in intake payloads must use an encoding the classification
	// engine's normalizer accepts.
	if err := val.RegisterValidation("leaddate", func(fl playgroundvalidator.FieldLevel) bool {
		return classify.ValidDate(fl.Field().String())
	}); err != nil {
		return nil, err
	}

	engine := classify.New(classify.Config{
		UTCOffset:       cfg.BusinessUTCOffset,
		UnpricedCutoff:  cfg.UnpricedCutoff,
		CallStartCutoff: cfg.CallStartCutoff,
	})

	repo := repository.New(pool)
	svc := service.New(repo, engine, log)

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
		engine:  engine,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the lead service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Engine returns the classification engine for external use.
func (m *Module) Engine() *classify.Engine {
	return m.engine
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *http.RouterContext) {
	leadsGroup := ctx.API.Group("/leads")
	m.handler.RegisterRoutes(leadsGroup)
}

// Compile-time check that Module implements http.Module
var _ http.Module = (*Module)(nil)
