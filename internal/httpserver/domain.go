package httpserver

import (
	"context"

	displayHTTP "preference-service/internal/display/delivery/http"
	displayUC "preference-service/internal/display/usecase"
	inventoryHTTP "preference-service/internal/inventory/delivery/http"
	inventoryRepo "preference-service/internal/inventory/repository/memory"
	inventoryUC "preference-service/internal/inventory/usecase"
	"preference-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupInventoryDomain initializes the inventory domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(..., srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l, srv.metrics)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv *HTTPServer) setupInventoryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := inventoryRepo.New(srv.inventoryCacheSize, srv.l)

	// 2. UseCase
	uc := inventoryUC.New(repo, srv.l, srv.metrics, srv.defaultStrategy)

	// 3. HTTP Handler
	h := inventoryHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/inventories
	inventoryHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Inventory domain registered (default strategy: %s)", srv.defaultStrategy)
	return nil
}

// setupDisplayDomain initializes the display domain and registers its routes.
func (srv *HTTPServer) setupDisplayDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := displayUC.New(srv.clock, srv.l, srv.metrics)
	h := displayHTTP.New(srv.l, uc)

	// Routes: registers /api/v1/display/mode
	displayHTTP.RegisterRoutes(api.Group("/display"), h, mw)

	srv.l.Infof(ctx, "Display domain registered")
	return nil
}
