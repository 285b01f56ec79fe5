package router

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/financas-app/backend/internal/controllers"
	"github.com/financas-app/backend/internal/httputil"
	"github.com/getsentry/sentry-go"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Router sets up the router, the middlewares and all routes.
func Router() *gin.Engine {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if err, ok := recovered.(error); ok {
			sentry.CaptureException(err)
		} else {
			sentry.CaptureMessage(fmt.Sprint(recovered))
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "ocorreu um erro no servidor durante a sua requisição",
		})
	}))
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "método HTTP não permitido para este endpoint",
		})
	})

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	registerPrometheusMetrics()
	r.Use(MetricsMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(&r.RouterGroup, "debug/pprof")
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	controllers.RegisterAuthRoutes(r.Group("/auth"))
	controllers.RegisterDashboardRoutes(r.Group("/dashboard"))
	controllers.RegisterFixedBillRoutes(r.Group("/contas-fixas"))
	controllers.RegisterExpenseRoutes(r.Group("/registro"))
	controllers.RegisterInstallmentRoutes(r.Group("/parcelamentos"))
	controllers.RegisterInvoiceRoutes(r.Group("/historico"))
	controllers.RegisterHealthzRoutes(r.Group("/healthz"))

	return r
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Version      string `json:"version"`
	Auth         string `json:"auth"`
	Dashboard    string `json:"dashboard"`
	FixedBills   string `json:"contas_fixas"`
	Expenses     string `json:"registro"`
	Installments string `json:"parcelamentos"`
	History      string `json:"historico"`
	Healthz      string `json:"healthz"`
	Metrics      string `json:"metrics"`
}

// GetRoot is the entrypoint for the API, listing all endpoints.
func GetRoot(c *gin.Context) {
	url := requestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Version:      url + "/version",
			Auth:         url + "/auth",
			Dashboard:    url + "/dashboard",
			FixedBills:   url + "/contas-fixas",
			Expenses:     url + "/registro",
			Installments: url + "/parcelamentos",
			History:      url + "/historico",
			Healthz:      url + "/healthz",
			Metrics:      url + "/metrics",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version"`
}

// GetVersion returns the software version of the API.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

// requestHost reconstructs the base URL of the request. The scheme
// defaults to http and is only upgraded if the x-forwarded-proto header
// says so.
func requestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost
	}

	return scheme + "://" + host
}
