// Package main provides the Flowgen API server implementation.
package main

import (
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/ugnislab/flowgen/pkg/catalog"
	"github.com/ugnislab/flowgen/pkg/generator"
	"github.com/ugnislab/flowgen/pkg/language"
	"github.com/ugnislab/flowgen/pkg/llm"
	"github.com/ugnislab/flowgen/pkg/models"
	"github.com/ugnislab/flowgen/pkg/n8n"
	"github.com/ugnislab/flowgen/pkg/pipeline"
	"github.com/ugnislab/flowgen/pkg/query"
	"github.com/ugnislab/flowgen/pkg/retrieval"
	"github.com/ugnislab/flowgen/pkg/vector"
	"github.com/ugnislab/flowgen/pkg/web"
	"github.com/ugnislab/flowgen/pkg/workflow"
)

type API struct {
	logger      *slog.Logger
	catalog     catalog.Catalog
	client      llm.Client
	store       *vector.Store
	runtime     *n8n.Client
	manager     *n8n.Manager
	defaultLang string
	validate    *validator.Validate
}

func NewAPI(
	logger *slog.Logger,
	cat catalog.Catalog,
	client llm.Client,
	store *vector.Store,
	runtime *n8n.Client,
	manager *n8n.Manager,
	defaultLang string,
) *API {
	return &API{
		logger:      logger,
		catalog:     cat,
		client:      client,
		store:       store,
		runtime:     runtime,
		manager:     manager,
		defaultLang: defaultLang,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *API) App() *fiber.App {
	interpreter := query.NewInterpreter(language.NewDetector(language.DefaultProfiles(), fallbackLanguage(a.defaultLang)))
	retriever := retrieval.NewRetriever(a.client, a.store, a.logger)
	wfValidator := workflow.NewValidator(a.catalog, a.logger)
	gen := generator.New(a.client, wfValidator, a.logger)
	p := pipeline.New(interpreter, retriever, a.store, gen, a.catalog, a.logger)

	handlers := web.NewAPIHandlers(p, wfValidator, a.catalog, a.manager, a.runtime, a.store, a.validate)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Flowgen API")
	})

	web.RegisterRoutes(app, handlers)

	return app
}

func fallbackLanguage(code string) models.Language {
	for _, lang := range models.SupportedLanguages {
		if string(lang) == code {
			return lang
		}
	}

	return models.LanguageEnglish
}

func (a *API) Start(port int) error {
	app := a.App()

	err := app.Listen(":" + strconv.Itoa(port))

	return err
}
