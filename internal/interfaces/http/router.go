package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/auth"
	"github.com/seu-usuario/estoque-api/internal/application/inventory"
	"github.com/seu-usuario/estoque-api/internal/application/usecase"
	"github.com/seu-usuario/estoque-api/pkg/validation"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	MovementUC *inventory.MovementUseCase
	Validator  *validation.Validator
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Validator)
	userHandler := NewUserHandler(deps.UserUC, deps.Validator)
	estoqueHandler := NewEstoqueHandler(deps.ProductUC, deps.MovementUC, deps.Validator)

	// Auth (público)
	authGroup := app.Group("/auth")
	authGroup.Post("/registrar", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Usuários (Bearer Token + admin)
	users := app.Group("/users", AuthMiddleware(deps.JWTSecret), AdminMiddleware())
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Produtos e movimentações (públicas, como no contrato original)
	app.Get("/", estoqueHandler.ListProducts)
	app.Get("/listar_produtos", estoqueHandler.ListProducts)
	app.Get("/listar_produto/:nome", estoqueHandler.GetProduct)
	app.Get("/verificar_estoque", estoqueHandler.VerificarEstoque)
	app.Get("/listar_saidas", estoqueHandler.ListSaidas)
	app.Post("/add_produto", estoqueHandler.AddProduct)
	app.Post("/movimentar_produto", estoqueHandler.RegisterMovement)
	app.Delete("/deletar_produto", estoqueHandler.DeleteProduct)
	app.Delete("/deletar_movimentacao", estoqueHandler.DeleteMovement)
}
