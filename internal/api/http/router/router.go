package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/quizboard-server/internal/api/http/handler"
	"github.com/dtroode/quizboard-server/internal/api/http/middleware"
	"github.com/dtroode/quizboard-server/internal/logger"
	"github.com/dtroode/quizboard-server/internal/model"
)

// Router wires the HTTP handlers and middleware of the quiz backend.
type Router struct {
	quizService     handler.QuizService
	userService     handler.UserService
	snapshotService handler.SnapshotService
	pinger          model.Pinger
	allowedOrigins  []string
	logger          *logger.Logger
}

// Option customizes a Router.
type Option func(*Router)

// WithSnapshots enables POST /quiz/snapshots.
func WithSnapshots(s handler.SnapshotService) Option {
	return func(r *Router) { r.snapshotService = s }
}

// WithPinger makes GET /healthz probe the given dependency.
func WithPinger(p model.Pinger) Option {
	return func(r *Router) { r.pinger = p }
}

// WithAllowedOrigins restricts CORS to the given origins.
func WithAllowedOrigins(origins []string) Option {
	return func(r *Router) { r.allowedOrigins = origins }
}

// New creates a new Router.
func New(
	quizService handler.QuizService,
	userService handler.UserService,
	logger *logger.Logger,
	opts ...Option,
) *Router {
	r := &Router{
		quizService:    quizService,
		userService:    userService,
		allowedOrigins: []string{"*"},
		logger:         logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register builds the gin engine with every route and returns it wrapped in CORS.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.HandleHTTP)

	r.registerHealthRoutes(engine)
	r.registerQuizRoutes(engine)
	r.registerUserRoutes(engine)

	return middleware.CORS(r.allowedOrigins)(engine)
}

func (r *Router) registerHealthRoutes(engine *gin.Engine) {
	h := handler.NewHealth(r.pinger, r.logger)
	engine.GET("/", h.Root)
	engine.GET("/healthz", h.Ready)
}

func (r *Router) registerQuizRoutes(engine *gin.Engine) {
	h := handler.NewQuiz(r.quizService, r.logger)

	quiz := engine.Group("/quiz")
	quiz.POST("/save-score", h.SaveScore)
	quiz.GET("/scores", h.TopScores)
	quiz.GET("/results", h.RecentResults)
	quiz.GET("/top", h.Podium)

	if r.snapshotService != nil {
		s := handler.NewSnapshot(r.snapshotService, r.logger)
		quiz.POST("/snapshots", s.Create)
	}
}

func (r *Router) registerUserRoutes(engine *gin.Engine) {
	h := handler.NewUser(r.userService, r.logger)

	users := engine.Group("/api/v1/users")
	users.GET("/", h.List)
	users.POST("/", h.Create)
	users.GET("/:id", h.Get)
	users.PUT("/:id", h.Update)
	users.DELETE("/:id", h.Delete)
}
