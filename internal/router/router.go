package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jwalitptl/booking-portal/internal/handler"
	"github.com/jwalitptl/booking-portal/internal/middleware"
	"github.com/jwalitptl/booking-portal/pkg/metrics"
)

// Handler registers a page group on the engine.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
	CORSConfig       middleware.CORSConfig
	MetricsPath      string
	TemplateGlob     string
	Metrics          *metrics.Metrics
	Registry         *prometheus.Registry
}

type Router struct {
	engine *gin.Engine
	pages  []Handler
	config Config
}

func NewRouter(config Config, pages ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	r := &Router{
		engine: engine,
		pages:  pages,
		config: config,
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
	)
	engine.Use(middleware.CORS(config.CORSConfig))

	if config.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RPS:   config.RateLimitRPS,
			Burst: config.RateLimitBurst,
		})
		engine.Use(limiter.RateLimit())
	}

	if config.TemplateGlob != "" {
		engine.LoadHTMLGlob(config.TemplateGlob)
	}

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/healthz", handler.HealthCheck)

	if r.config.Registry != nil {
		path := r.config.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.engine.GET(path, gin.WrapH(promhttp.HandlerFor(r.config.Registry, promhttp.HandlerOpts{})))
	}

	root := r.engine.Group("/")
	for _, page := range r.pages {
		page.RegisterRoutes(root)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.config.Metrics == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		r.config.Metrics.HTTPRequests.WithLabelValues(method, path, status).Inc()
		r.config.Metrics.HTTPLatency.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
