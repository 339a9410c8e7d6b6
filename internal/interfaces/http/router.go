package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	contentusecases "github.com/IYair/disclosure-page-uac-sub000/internal/application/content/usecases"
	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
	moderationusecases "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation/usecases"
	userusecases "github.com/IYair/disclosure-page-uac-sub000/internal/application/user/usecases"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/auth"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/config"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/email"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/ratelimit"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/repository"
	authhandlers "github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/handlers/auth"
	categoryhandlers "github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/handlers/category"
	exercisehandlers "github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/handlers/exercise"
	newshandlers "github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/handlers/news"
	notehandlers "github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/handlers/note"
	tickethandlers "github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/handlers/ticket"
	"github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/middleware"
	"github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/routes"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/authorization"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/db"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/services/markdown"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine          *gin.Engine
	exerciseHandler *exercisehandlers.ExerciseHandler
	noteHandler     *notehandlers.NoteHandler
	newsHandler     *newshandlers.NewsHandler
	ticketHandler   *tickethandlers.TicketHandler
	categoryHandler *categoryhandlers.CategoryHandler
	authHandler     *authhandlers.AuthHandler
	authMiddleware  *middleware.AuthMiddleware
	submitLimit     gin.HandlerFunc
	cfg             *config.Config
	log             logger.Interface
}

type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID uint, role authorization.UserRole) (*userusecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, role)
	if err != nil {
		return nil, err
	}
	return &userusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// NewRouter creates the HTTP router with all dependencies.
func NewRouter(gdb *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(gdb)
	commentRepo := repository.NewCommentRepository(gdb)
	exerciseRepo := repository.NewExerciseRepository(gdb)
	noteRepo := repository.NewNoteRepository(gdb)
	newsRepo := repository.NewNewsRepository(gdb)
	categoryRepo := repository.NewCategoryRepository(gdb)
	userRepo := repository.NewUserRepository(gdb)

	stores := repository.NewContentStoreRegistry(gdb)
	txMgr := db.NewTransactionManager(gdb)

	var notifier appmod.Notifier = email.NewSMTPNotifier(email.SMTPConfig{
		Host:            cfg.Email.SMTPHost,
		Port:            cfg.Email.SMTPPort,
		Username:        cfg.Email.SMTPUser,
		Password:        cfg.Email.SMTPPassword,
		FromAddress:     cfg.Email.FromAddress,
		FromName:        cfg.Email.FromName,
		ReviewerAddress: cfg.Email.ReviewerAddress,
		BaseURL:         cfg.Email.BaseURL,
	})

	engineUC := appmod.NewEngine(ticketRepo, commentRepo, stores, txMgr, notifier, log)
	markdownSvc := markdown.NewMarkdownService()

	createExerciseUC := contentusecases.NewCreateExerciseUseCase(exerciseRepo, categoryRepo, engineUC, markdownSvc, log)
	updateExerciseUC := contentusecases.NewUpdateExerciseUseCase(exerciseRepo, categoryRepo, engineUC, markdownSvc, log)
	deleteExerciseUC := contentusecases.NewDeleteExerciseUseCase(engineUC, log)
	getExerciseUC := contentusecases.NewGetExerciseUseCase(exerciseRepo)
	listExercisesUC := contentusecases.NewListExercisesUseCase(exerciseRepo)

	createNoteUC := contentusecases.NewCreateNoteUseCase(categoryRepo, engineUC, markdownSvc, log)
	updateNoteUC := contentusecases.NewUpdateNoteUseCase(noteRepo, categoryRepo, engineUC, markdownSvc, log)
	deleteNoteUC := contentusecases.NewDeleteNoteUseCase(engineUC, log)
	getNoteUC := contentusecases.NewGetNoteUseCase(noteRepo)
	listNotesUC := contentusecases.NewListNotesUseCase(noteRepo)

	createNewsUC := contentusecases.NewCreateNewsUseCase(engineUC, markdownSvc, log)
	updateNewsUC := contentusecases.NewUpdateNewsUseCase(newsRepo, engineUC, markdownSvc, log)
	deleteNewsUC := contentusecases.NewDeleteNewsUseCase(engineUC, log)
	getNewsUC := contentusecases.NewGetNewsUseCase(newsRepo)
	listNewsUC := contentusecases.NewListNewsUseCase(newsRepo)

	createCategoryUC := contentusecases.NewCreateCategoryUseCase(categoryRepo, engineUC, txMgr, log)
	updateCategoryUC := contentusecases.NewUpdateCategoryUseCase(categoryRepo, engineUC, txMgr, log)
	deleteCategoryUC := contentusecases.NewDeleteCategoryUseCase(categoryRepo, exerciseRepo, noteRepo, engineUC, txMgr, log)
	listCategoriesUC := contentusecases.NewListCategoriesUseCase(categoryRepo)

	approveTicketUC := moderationusecases.NewApproveTicketUseCase(ticketRepo, stores, txMgr, notifier, log)
	rejectTicketUC := moderationusecases.NewRejectTicketUseCase(ticketRepo, commentRepo, stores, txMgr, notifier, log)
	getTicketUC := moderationusecases.NewGetTicketUseCase(ticketRepo, commentRepo, stores)
	listPendingUC := moderationusecases.NewListPendingTicketsUseCase(ticketRepo)
	hasPendingUC := moderationusecases.NewHasPendingTicketUseCase(ticketRepo)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, &jwtServiceAdapter{jwtSvc}, log)

	var limiter ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = ratelimit.NewRedisRateLimiter(client)
	}

	return &Router{
		engine: engine,
		exerciseHandler: exercisehandlers.NewExerciseHandler(
			createExerciseUC, updateExerciseUC, deleteExerciseUC, getExerciseUC, listExercisesUC),
		noteHandler: notehandlers.NewNoteHandler(
			createNoteUC, updateNoteUC, deleteNoteUC, getNoteUC, listNotesUC),
		newsHandler: newshandlers.NewNewsHandler(
			createNewsUC, updateNewsUC, deleteNewsUC, getNewsUC, listNewsUC),
		ticketHandler: tickethandlers.NewTicketHandler(
			approveTicketUC, rejectTicketUC, getTicketUC, listPendingUC, hasPendingUC),
		categoryHandler: categoryhandlers.NewCategoryHandler(
			createCategoryUC, updateCategoryUC, deleteCategoryUC, listCategoriesUC),
		authHandler:    authhandlers.NewAuthHandler(loginUC),
		authMiddleware: middleware.NewAuthMiddleware(jwtSvc, log),
		submitLimit:    middleware.SubmitRateLimit(limiter, cfg.RateLimit, log),
		cfg:            cfg,
		log:            log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})
	routes.SetupExerciseRoutes(r.engine, &routes.ExerciseRouteConfig{
		ExerciseHandler: r.exerciseHandler,
		AuthMiddleware:  r.authMiddleware,
		SubmitLimit:     r.submitLimit,
	})
	routes.SetupNoteRoutes(r.engine, &routes.NoteRouteConfig{
		NoteHandler:    r.noteHandler,
		AuthMiddleware: r.authMiddleware,
		SubmitLimit:    r.submitLimit,
	})
	routes.SetupNewsRoutes(r.engine, &routes.NewsRouteConfig{
		NewsHandler:    r.newsHandler,
		AuthMiddleware: r.authMiddleware,
		SubmitLimit:    r.submitLimit,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupCategoryRoutes(r.engine, &routes.CategoryRouteConfig{
		CategoryHandler: r.categoryHandler,
		AuthMiddleware:  r.authMiddleware,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
