package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/foldik/course-admin/internal/api"
	"github.com/foldik/course-admin/internal/assets"
	"github.com/foldik/course-admin/internal/config"
	"github.com/foldik/course-admin/internal/logging"
	"github.com/foldik/course-admin/internal/metrics"
	"github.com/foldik/course-admin/internal/service"
	"github.com/foldik/course-admin/internal/web"
)

type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	views   *web.Renderer
	assets  assets.Source
	metrics *metrics.Metrics
}

// NewServer loads templates and picks the static asset source. Any error here
// should abort startup.
func NewServer(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	views, err := web.NewRenderer(cfg.TemplateDir, logger)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	if !views.Has(web.IndexTemplate) {
		return nil, fmt.Errorf("load templates: %q template missing from %s", web.IndexTemplate, cfg.TemplateDir)
	}

	var src assets.Source
	if cfg.UseBucket() {
		bucket := assets.NewR2Bucket(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, cfg.R2Endpoint, cfg.R2BucketName)
		src = assets.NewBucketSource(bucket, cfg.R2KeyPrefix, cfg.AssetURLTTL, logger)
		logger.Info("serving static assets from bucket", zap.String("bucket", cfg.R2BucketName), zap.String("prefix", cfg.R2KeyPrefix))
	} else {
		src = assets.NewLocalSource(cfg.StaticDir)
		logger.Info("serving static assets from disk", zap.String("dir", cfg.StaticDir))
	}

	s := &Server{cfg: cfg, logger: logger, views: views, assets: src}
	if cfg.MetricsEnabled {
		s.metrics = metrics.New()
	}
	return s, nil
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(logging.RequestID)
	r.Use(logging.RequestLogger(s.logger))
	r.Use(logging.Recoverer(s.logger))
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.SetHeader("X-Content-Type-Options", "nosniff"))
	r.Use(middleware.SetHeader("X-Frame-Options", "SAMEORIGIN"))
	r.Use(middleware.SetHeader("X-XSS-Protection", "1; mode=block"))
	r.Use(middleware.GetHead)

	// must be set before mounting groups so they inherit the fallback
	r.NotFound(s.views.NotFound)
	r.MethodNotAllowed(s.views.NotFound)

	api.NewAPI(service.NewSessionService(), service.NewCourseService()).Register(r)

	r.Get("/", s.views.Root)
	r.Get("/static/*", assets.Handler(s.assets, s.views.NotFound))
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	return r
}

func (s *Server) NewHTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.BindAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}
}
