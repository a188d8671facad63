package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/hitenSisghSoft/soundbox/internal/auth"
	"github.com/hitenSisghSoft/soundbox/internal/handler"
	"github.com/hitenSisghSoft/soundbox/internal/role"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	merchantHandler *handler.MerchantHandler,
	storeHandler *handler.StoreHandler,
	machineHandler *handler.MachineHandler,
	navHandler *handler.NavHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/users/login", authHandler.Login)
	api.POST("/users/refresh", authHandler.Refresh)
	api.POST("/users/logout", authHandler.Logout)

	// Secured routes (require JWT authentication). ParseTokenFunc keeps the
	// claims typed so the role middleware does not re-parse.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
	}))

	secured.GET("/navigation", navHandler.Menu)

	// Profile routes (any authenticated role, own record only)
	secured.GET("/users/profile", userHandler.GetProfile)
	secured.PUT("/users/profile", userHandler.UpdateProfile)

	// Employee routes (admin only)
	employees := secured.Group("/users/admin", RequireRoles(role.Admin))
	employees.GET("/all_users", userHandler.ListUsers)
	employees.GET("/user/:id", userHandler.GetUser)
	employees.POST("/create_user", userHandler.CreateUser)
	employees.PUT("/update_user/:id", userHandler.UpdateUser)
	employees.DELETE("/delete_user/:id", userHandler.DeleteUser)

	// Merchant routes (admin and agents)
	agentRoles := RequireRoles(role.Admin, role.Agent)

	merchants := secured.Group("/merchants", agentRoles)
	merchants.GET("/search/mobile", merchantHandler.SearchByMobile)
	merchants.POST("/add", merchantHandler.CreateMerchant)
	merchants.PUT("/update/:id", merchantHandler.UpdateMerchant)
	merchants.POST("/stores", storeHandler.ListByMerchant)
	merchants.GET("/:id", merchantHandler.GetMerchant)

	secured.GET("/merchant/list", merchantHandler.ListMerchants, agentRoles)
	secured.DELETE("/merchant/delete/:id", merchantHandler.DeleteMerchant, agentRoles)

	// Store routes
	stores := secured.Group("/stores", agentRoles)
	stores.POST("/create", storeHandler.CreateStore)
	stores.PUT("/:id", storeHandler.UpdateStore)
	stores.DELETE("/:id", storeHandler.DeleteStore)

	// Machine routes
	machines := secured.Group("/machines", agentRoles)
	machines.GET("", machineHandler.ListMachines)
	machines.GET("/store/:storeId", machineHandler.ListByStore)
	machines.POST("", machineHandler.CreateMachine)
	machines.PUT("/:id", machineHandler.UpdateMachine)
	machines.DELETE("/:id", machineHandler.DeleteMachine)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
