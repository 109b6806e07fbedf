package server

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ecoquest/ecoquest-backend/internal/config"
	"github.com/ecoquest/ecoquest-backend/internal/handler"
	appmw "github.com/ecoquest/ecoquest-backend/internal/middleware"
	"github.com/ecoquest/ecoquest-backend/internal/repository"
	"github.com/ecoquest/ecoquest-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			return strings.HasSuffix(u.Hostname(), "vercel.app"), nil
		},
	}))

	userRepo := repository.NewUserRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	proofRepo := repository.NewProofSubmissionRepository(db)
	progressRepo := repository.NewGameProgressRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLDays)*24*time.Hour, cfg.BcryptCost)
	notificationSvc := service.NewNotificationService(notificationRepo)
	ledger := service.NewProgressionService(userRepo)
	quizSvc := service.NewQuizService(quizRepo)
	gameSvc := service.NewGameService(progressRepo, ledger)
	challengeSvc := service.NewChallengeService(challengeRepo, proofRepo, notificationSvc)
	leaderboardSvc := service.NewLeaderboardService(userRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	quizHandler := handler.NewQuizHandler(quizSvc)
	gameHandler := handler.NewGameHandler(gameSvc)
	challengeHandler := handler.NewChallengeHandler(challengeSvc)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)

	authMw := appmw.NewAuthMiddleware(authSvc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	api := e.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, authMw.RequireAuth)
	api.POST("/game-progress", gameHandler.SaveProgress, authMw.RequireAuth)
	api.GET("/game-progress", gameHandler.History, authMw.RequireAuth)
	api.GET("/quiz/questions", quizHandler.Questions)
	api.POST("/quiz/submit", quizHandler.Submit, authMw.RequireAuth)
	api.GET("/challenges", challengeHandler.List, authMw.RequireAuth)
	api.POST("/challenges/submit-proof", challengeHandler.SubmitProof, authMw.RequireAuth)
	api.GET("/leaderboard", leaderboardHandler.Top)
	api.GET("/notifications", notificationHandler.List, authMw.RequireAuth)
	api.PUT("/notifications/:id/read", notificationHandler.MarkRead, authMw.RequireAuth)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
