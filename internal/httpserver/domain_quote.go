package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"quote-service/internal/middleware"
	quoteHTTP "quote-service/internal/quote/delivery/http"
	cachedRepo "quote-service/internal/quote/repository/cached"
	quoteRepo "quote-service/internal/quote/repository/redis"
	quoteUC "quote-service/internal/quote/usecase"
)

// setupQuoteDomain initializes the quote domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.rdb, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) setupQuoteDomain(ctx context.Context, api *gin.RouterGroup, _ middleware.Middleware) error {
	// 1. Repository: Redis store behind an LRU read cache
	repo, err := cachedRepo.New(quoteRepo.New(srv.rdb, srv.l), srv.cacheSize)
	if err != nil {
		return err
	}

	// 2. UseCase
	uc := quoteUC.New(repo, srv.l)

	// 3. HTTP Handler (validation rule sets registered inside)
	h := quoteHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/quotes
	quoteHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Quote domain registered")
	return nil
}
