// README: Entry point; loads config, wires services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"dreamtrip/internal/ai"
	"dreamtrip/internal/config"
	httptransport "dreamtrip/internal/http"
	"dreamtrip/internal/http/middleware"
	"dreamtrip/internal/infra"
	"dreamtrip/internal/maps"
	"dreamtrip/internal/modules/chat"
	"dreamtrip/internal/modules/trip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	// Optional backends: the service runs fully stateless without them.
	var tripStore trip.Storage
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatalf("postgres init: %v", err)
		}
		defer dbPool.Close()
		tripStore = trip.NewStore(dbPool)
	}

	var chatHistory *chat.Store
	if cfg.Redis.Addr != "" {
		chatHistory = chat.NewStore(infra.NewRedis(cfg.Redis.Addr))
	}

	var geocoder trip.Geocoder
	if cfg.Maps.APIKey != "" {
		geo, err := maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		geocoder = geo
	}

	tripSvc := trip.NewService(provider, tripStore, geocoder, trip.CostCheck{
		Enabled:   cfg.CostCheck.Enabled,
		Tolerance: cfg.CostCheck.Tolerance,
	})
	var history chat.History
	if chatHistory != nil {
		history = chatHistory
	}
	chatSvc := chat.NewService(provider, history)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Trips:       tripSvc,
		Chat:        chatSvc,
		ChatHistory: chatHistory,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	})

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: cors.Default().Handler(router),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("dreamtrip-api listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
