package routes

import (
	"net/http"

	"foodgram-backend/internal/api/handlers"
	"foodgram-backend/internal/api/middleware"
	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/config"
	"foodgram-backend/internal/repository"
	"foodgram-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		logrus.Fatalf("Failed to initialize auth service: %v", err)
	}
	return NewRouter(db, cfg, auth.NewAuthMiddleware(authService))
}

// NewRouter builds the engine around an already constructed auth middleware
func NewRouter(db *gorm.DB, cfg *config.Config, authMiddleware *auth.AuthMiddleware) *gin.Engine {
	// Create router
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.ContextWithFallback = true

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "Not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, handlers.ErrorResponse{Error: "Method not allowed"})
	})

	// Initialize validator
	validator := validator.New()
	paginator := service.NewPaginator(cfg.DefaultPageSize, cfg.MaxPageSize)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	tagRepo := repository.NewTagRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewShoppingCartRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, subscriptionRepo, paginator, validator)
	ingredientService := service.NewIngredientService(ingredientRepo)
	tagService := service.NewTagService(tagRepo)
	recipeService := service.NewRecipeService(service.RecipeDeps{
		Recipes:       recipeRepo,
		Tags:          tagRepo,
		Ingredients:   ingredientRepo,
		Users:         userRepo,
		Favorites:     favoriteRepo,
		ShoppingCart:  cartRepo,
		Subscriptions: subscriptionRepo,
	}, paginator, validator)
	membershipService := service.NewMembershipService(recipeRepo)
	shoppingListService := service.NewShoppingListService(recipeRepo, cfg.ShoppingListHeader)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo, recipeRepo, paginator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService, subscriptionService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	tagHandler := handlers.NewTagHandler(tagService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, shoppingListService)
	favoriteHandler := handlers.NewMembershipHandler(membershipService, service.NewFavoriteToggle(favoriteRepo))
	cartHandler := handlers.NewMembershipHandler(membershipService, service.NewCartToggle(cartRepo))

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	RegisterAPIRoutes(v1, authMiddleware, APIHandlers{
		Users:        userHandler,
		Ingredients:  ingredientHandler,
		Tags:         tagHandler,
		Recipes:      recipeHandler,
		Favorites:    favoriteHandler,
		ShoppingCart: cartHandler,
	})

	return router
}

// APIHandlers groups the handlers mounted under /api/v1
type APIHandlers struct {
	Users        *handlers.UserHandler
	Ingredients  *handlers.IngredientHandler
	Tags         *handlers.TagHandler
	Recipes      *handlers.RecipeHandler
	Favorites    *handlers.MembershipHandler
	ShoppingCart *handlers.MembershipHandler
}

// RegisterAPIRoutes mounts the API on group. Reads accept anonymous callers;
// mutations and per-user reads require a bearer token.
func RegisterAPIRoutes(v1 *gin.RouterGroup, authMiddleware *auth.AuthMiddleware, h APIHandlers) {
	optional := authMiddleware.OptionalAuth()
	required := authMiddleware.RequireAuth()

	// User routes
	users := v1.Group("/users")
	{
		users.GET("", optional, h.Users.ListUsers)
		users.POST("", h.Users.CreateUser)
		users.GET("/me", required, h.Users.Me)
		users.GET("/subscriptions", required, h.Users.ListSubscriptions)
		users.GET("/:id", optional, h.Users.GetUser)
		users.POST("/:id/subscribe", required, h.Users.Subscribe)
		users.DELETE("/:id/subscribe", required, h.Users.Unsubscribe)
	}

	// Catalog routes
	ingredients := v1.Group("/ingredients")
	{
		ingredients.GET("", h.Ingredients.ListIngredients)
		ingredients.GET("/:id", h.Ingredients.GetIngredient)
	}

	tags := v1.Group("/tags")
	{
		tags.GET("", h.Tags.ListTags)
		tags.GET("/:id", h.Tags.GetTag)
	}

	// Recipe routes
	recipes := v1.Group("/recipes")
	{
		recipes.GET("", optional, h.Recipes.ListRecipes)
		recipes.POST("", required, h.Recipes.CreateRecipe)
		recipes.GET("/download_shopping_cart", required, h.Recipes.DownloadShoppingCart)
		recipes.GET("/:id", optional, h.Recipes.GetRecipe)
		recipes.PATCH("/:id", required, h.Recipes.UpdateRecipe)
		recipes.DELETE("/:id", required, h.Recipes.DeleteRecipe)

		recipes.POST("/:id/favorite", required, h.Favorites.Add)
		recipes.DELETE("/:id/favorite", required, h.Favorites.Remove)

		recipes.POST("/:id/shopping_cart", required, h.ShoppingCart.Add)
		recipes.DELETE("/:id/shopping_cart", required, h.ShoppingCart.Remove)
	}
}
