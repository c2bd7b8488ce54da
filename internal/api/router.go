package api

import (
	"grana/internal/api/handlers"
	"grana/pkg/auth"
	"grana/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Transaction *handlers.TransactionHandler
	Category    *handlers.CategoryHandler
	Bank        *handlers.BankHandler
	Recurring   *handlers.RecurringHandler
	Goal        *handlers.GoalHandler
	Profile     *handlers.ProfileHandler
	Receipt     *handlers.ReceiptHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 15 * 1024 * 1024, // receipt uploads
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)
	authGroup.Get("/verify", h.Auth.Verify)

	// Protected routes
	protected := app.Group("/api", middleware.AuthMiddleware(jwtManager, appLogger))

	transacoes := protected.Group("/transacoes")
	transacoes.Post("", h.Transaction.Create)
	transacoes.Get("", h.Transaction.List)
	transacoes.Get("/resumo/saldo", h.Transaction.Resumo)
	transacoes.Get("/resumo/projecao", h.Transaction.Projecao)
	transacoes.Get("/:id", h.Transaction.Get)
	transacoes.Put("/:id", h.Transaction.Update)
	transacoes.Delete("/:id", h.Transaction.Delete)

	categorias := protected.Group("/categorias")
	categorias.Post("", h.Category.Create)
	categorias.Get("", h.Category.List)
	categorias.Put("/:id", h.Category.Update)
	categorias.Delete("/:id", h.Category.Delete)

	bancos := protected.Group("/bancos")
	bancos.Post("", h.Bank.Create)
	bancos.Get("", h.Bank.List)
	bancos.Get("/:id", h.Bank.Get)
	bancos.Put("/:id", h.Bank.Update)
	bancos.Delete("/:id", h.Bank.Delete)
	bancos.Post("/:id/cartoes", h.Bank.CreateCard)
	bancos.Get("/:id/cartoes", h.Bank.ListCards)
	bancos.Put("/:id/cartoes/:cartaoId", h.Bank.UpdateCard)
	bancos.Delete("/:id/cartoes/:cartaoId", h.Bank.DeleteCard)

	gastos := protected.Group("/gastos-recorrentes")
	gastos.Post("", h.Recurring.Create)
	gastos.Get("", h.Recurring.List)
	gastos.Get("/:id", h.Recurring.Get)
	gastos.Put("/:id", h.Recurring.Update)
	gastos.Delete("/:id", h.Recurring.Delete)
	gastos.Post("/:id/gerar-transacao", h.Recurring.GenerateTransaction)

	metas := protected.Group("/metas")
	metas.Post("", h.Goal.Create)
	metas.Get("", h.Goal.List)
	metas.Get("/:id", h.Goal.Get)
	metas.Put("/:id", h.Goal.Update)
	metas.Delete("/:id", h.Goal.Delete)
	metas.Post("/:id/adicionar", h.Goal.AddProgress)

	perfil := protected.Group("/perfil")
	perfil.Get("", h.Profile.Get)
	perfil.Put("/nome", h.Profile.UpdateNome)
	perfil.Put("/ganho-fixo", h.Profile.UpdateGanhoFixo)

	ocr := protected.Group("/ocr")
	ocr.Post("/processar", h.Receipt.Process)
	ocr.Post("/processar-preview", h.Receipt.Preview)

	return app
}
