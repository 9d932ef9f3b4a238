package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/lp-label-api/internal/application/labels"
	"github.com/jhoicas/lp-label-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PrintUC    *labels.PrintUseCase
	PreviewUC  *labels.PreviewUseCase
	DispatchUC *labels.DispatchUseCase
	JWTSecret  string
	Logger     zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token y rol)
	protected := api.Group("/",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(jwt.RoleAdmin, jwt.RoleBodeguero, jwt.RoleOperario),
	)

	labelHandler := NewLabelHandler(deps.PrintUC, deps.PreviewUC, deps.Logger)
	printerHandler := NewPrinterHandler(deps.DispatchUC, deps.Logger)

	lbl := protected.Group("/labels")
	lbl.Get("/sizes", labelHandler.Sizes)
	lbl.Post("/validate", labelHandler.Validate)
	lbl.Post("/print-jobs", RequireRole(jwt.RoleAdmin, jwt.RoleBodeguero), printerHandler.Send)

	lps := protected.Group("/license-plates")
	lps.Post("/print-labels", labelHandler.PrintBulk)
	lps.Post("/:id/print-label", labelHandler.PrintLabel)
	lps.Get("/:id/label-preview", labelHandler.Preview)
}
