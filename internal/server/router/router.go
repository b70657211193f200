package router

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/obradorhq/obrador/internal/server/handlers"
	"github.com/obradorhq/obrador/pkg/clients/identity"
)

// New wires the Gin engine with required routes and middlewares.
func New(auth *handlers.AuthHandler, book *handlers.BookHandler, idClient identity.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/login", auth.Login)

	authed := api.Group("")
	authed.Use(authMiddleware(idClient, logger))

	authed.GET("/book", book.GetBook)

	authed.GET("/materials", book.ListMaterials)
	authed.POST("/materials", book.CreateMaterial)
	authed.PUT("/materials/:id", book.UpdateMaterial)
	authed.DELETE("/materials/:id", book.DeleteMaterial)
	authed.POST("/materials/:id/purchases", book.PurchaseMaterial)

	authed.GET("/recipes", book.ListRecipes)
	authed.POST("/recipes", book.CreateRecipe)
	authed.PUT("/recipes/:id", book.UpdateRecipe)
	authed.DELETE("/recipes/:id", book.DeleteRecipe)
	authed.POST("/recipes/:id/productions", book.Produce)

	authed.GET("/products", book.ListProducts)
	authed.DELETE("/products/:id", book.DeleteProduct)
	authed.POST("/products/:id/packages", book.PackageProduct)
	authed.POST("/products/:id/transformations", book.TransformProduct)

	authed.GET("/waste", book.ListWaste)
	authed.POST("/waste", book.CreateWaste)
	authed.DELETE("/waste/:id", book.DeleteWaste)

	authed.GET("/sales", book.ListSales)
	authed.POST("/sales", book.CreateSale)
	authed.DELETE("/sales/:id", book.DeleteSale)

	authed.GET("/customers", book.ListCustomers)
	authed.POST("/customers", book.CreateCustomer)
	authed.DELETE("/customers/:id", book.DeleteCustomer)

	authed.GET("/suppliers", book.ListSuppliers)

	authed.GET("/fixed-costs", book.ListFixedCosts)
	authed.POST("/fixed-costs", book.CreateFixedCost)
	authed.PUT("/fixed-costs/:id", book.UpdateFixedCost)
	authed.DELETE("/fixed-costs/:id", book.DeleteFixedCost)

	authed.GET("/shopping-lists", book.ListShoppingLists)
	authed.POST("/shopping-lists", book.SaveShoppingList)
	authed.POST("/shopping-lists/generate", book.GenerateShoppingList)
	authed.DELETE("/shopping-lists/:id", book.DeleteShoppingList)

	authed.GET("/reports/summary", book.Summary)
	authed.GET("/reports/suggested-price", book.SuggestedPrice)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// authMiddleware resolves the bearer token to its owner through the identity
// provider and stores the user ID on the request context.
func authMiddleware(idClient identity.Client, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		who, err := idClient.Verify(c.Request.Context(), token)
		if errors.Is(err, identity.ErrInvalidSession) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or invalid"})
			return
		}
		if err != nil {
			logger.Error("session verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "unexpected authentication error"})
			return
		}

		c.Set(handlers.UserIDKey, who.UserID)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
