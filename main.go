package main

import (
	"context"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/soc-lens/backend/internal/cache"
	"github.com/soc-lens/backend/internal/client"
	"github.com/soc-lens/backend/internal/config"
	"github.com/soc-lens/backend/internal/handler"
	"github.com/soc-lens/backend/internal/poller"
	"github.com/soc-lens/backend/internal/service"
	"github.com/soc-lens/backend/internal/source"
	"github.com/soc-lens/backend/web"
)

func main() {
	cfg := config.Load()

	// 피드 + 외부 클라이언트
	feed := source.NewFeed(cfg.Feed)
	intelClient := client.NewIntelClient(cfg.Intel)

	// AI 클라이언트는 미설정이어도 기동 (응답 본문에 고정 문구로 표시됨)
	var aiClient service.AIProvider
	if ai, err := client.NewAIClient(cfg.AI); err != nil {
		log.Printf("AI client disabled: %v", err)
	} else {
		aiClient = ai
	}

	// 위협 인텔 캐시는 REDIS_ADDR가 있을 때만 활성
	var intelCache service.IntelCache
	if cfg.Redis.Addr != "" {
		if c, err := cache.NewIntelCache(cfg.Redis); err != nil {
			log.Printf("Intel cache disabled: %v", err)
		} else {
			intelCache = c
		}
	}

	// 서비스 레이어
	alertsSvc := service.NewAlertsService(feed)
	investigationSvc := service.NewInvestigationService(feed, intelClient, intelCache, aiClient)
	chatSvc := service.NewChatService(aiClient)

	// 대시보드 폴러: 고정 간격, 틱 결과와 무관하게 계속 돈다
	poll := poller.New(alertsSvc, cfg.Feed.PollInterval)
	go poll.Run(context.Background())

	// 핸들러
	pageHandler := handler.NewPageHandler(poll, investigationSvc)
	alertsHandler := handler.NewAlertsHandler(alertsSvc)
	investigateHandler := handler.NewInvestigateHandler(investigationSvc)
	chatHandler := handler.NewChatHandler(chatSvc)

	router := gin.Default()
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		log.Fatalf("failed to mount static assets: %v", err)
	}
	router.StaticFS("/static", http.FS(staticFS))

	// 페이지
	router.GET("/", pageHandler.Dashboard)
	router.GET("/investigation", pageHandler.Investigation)

	// API
	router.GET("/api/alerts", alertsHandler.Alerts)
	router.POST("/api/investigate", investigateHandler.Investigate)
	router.POST("/api/chat", chatHandler.Chat)

	// 운영 엔드포인트
	router.GET("/ping", handler.Ping)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := router.Run(cfg.Server.ListenAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
