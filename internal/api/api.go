// Package api 提供 REST 路由与 handler（gorilla/mux）。
package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prestigedrive/prestigedrive/internal/admin"
	"github.com/prestigedrive/prestigedrive/internal/availability"
	"github.com/prestigedrive/prestigedrive/internal/booking"
	"github.com/prestigedrive/prestigedrive/internal/common/config"
	"github.com/prestigedrive/prestigedrive/internal/common/logger"
	"github.com/prestigedrive/prestigedrive/internal/common/middleware"
	"github.com/prestigedrive/prestigedrive/internal/fleet"
	"github.com/prestigedrive/prestigedrive/internal/notify"
	"github.com/prestigedrive/prestigedrive/internal/renter"
)

// API 聚合各领域 Service，对外暴露 HTTP 路由。
type API struct {
	log      logger.Logger
	validate *validator.Validate

	cars     *fleet.Service
	avail    *availability.Store
	bookings *booking.Service
	renters  *renter.Service
	admins   *admin.Service

	hub    *notify.Hub
	events *notify.Broadcaster

	authCfg config.AuthConfig
	rlCfg   config.RateLimitConfig
}

// Deps API 的依赖集合（显式注入，不取模块级单例）。
type Deps struct {
	Log      logger.Logger
	Cars     *fleet.Service
	Avail    *availability.Store
	Bookings *booking.Service
	Renters  *renter.Service
	Admins   *admin.Service
	Hub      *notify.Hub
	Events   *notify.Broadcaster
	AuthCfg  config.AuthConfig
	RLCfg    config.RateLimitConfig
}

func New(d Deps) *API {
	return &API{
		log:      d.Log,
		validate: validator.New(),
		cars:     d.Cars,
		avail:    d.Avail,
		bookings: d.Bookings,
		renters:  d.Renters,
		admins:   d.Admins,
		hub:      d.Hub,
		events:   d.Events,
		authCfg:  d.AuthCfg,
		rlCfg:    d.RLCfg,
	}
}

// Router 组装全部路由与中间件链（recovery -> tracing -> access log 全局生效，
// 鉴权/限流按路由挂载）。
func (a *API) Router(serviceName string) *mux.Router {
	r := mux.NewRouter()

	r.Use(RecoveryMiddleware(a.log))
	r.Use(TracingMiddleware(serviceName))
	r.Use(AccessLogMiddleware(a.log))

	r.HandleFunc("/api/health", a.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/ws", a.handleWS).Methods(http.MethodGet)

	// 车辆目录：公开读，管理端写
	r.HandleFunc("/api/cars", a.handleListCars).Methods(http.MethodGet)
	r.HandleFunc("/api/cars/{id}", a.handleGetCar).Methods(http.MethodGet)
	r.Handle("/api/cars", a.adminOnly(a.handleCreateCar)).Methods(http.MethodPost)
	r.Handle("/api/cars/{id}", a.adminOnly(a.handleUpdateCar)).Methods(http.MethodPut)
	r.Handle("/api/cars/{id}", a.adminOnly(a.handleDeleteCar)).Methods(http.MethodDelete)

	// 可租日期：公开读，管理端 toggle
	r.HandleFunc("/api/cars/{id}/available-dates", a.handleListAvailableDates).Methods(http.MethodGet)
	r.Handle("/api/cars/{id}/available-dates/toggle", a.adminOnly(a.handleToggleAvailableDate)).Methods(http.MethodPost)

	// 预订：公开提交（限流），管理端查询/审核/删除
	r.Handle("/api/bookings", a.rateLimited(a.handleCreateBooking)).Methods(http.MethodPost)
	r.Handle("/api/bookings", a.adminOnly(a.handleListBookings)).Methods(http.MethodGet)
	r.Handle("/api/bookings/{id}", a.adminOnly(a.handleGetBooking)).Methods(http.MethodGet)
	r.Handle("/api/bookings/{id}/status", a.adminOnly(a.handleSetBookingStatus)).Methods(http.MethodPatch)
	r.Handle("/api/bookings/{id}", a.adminOnly(a.handleDeleteBooking)).Methods(http.MethodDelete)

	// 合作商家：公开读，管理端写
	r.HandleFunc("/api/renters", a.handleListRenters).Methods(http.MethodGet)
	r.HandleFunc("/api/renters/{id}", a.handleGetRenter).Methods(http.MethodGet)
	r.Handle("/api/renters", a.adminOnly(a.handleCreateRenter)).Methods(http.MethodPost)
	r.Handle("/api/renters/{id}", a.adminOnly(a.handleUpdateRenter)).Methods(http.MethodPatch)
	r.Handle("/api/renters/{id}", a.adminOnly(a.handleDeleteRenter)).Methods(http.MethodDelete)

	// 管理端登录 / 改口令
	r.HandleFunc("/api/admin/login", a.handleAdminLogin).Methods(http.MethodPost)
	r.Handle("/api/admin/password", a.adminOnly(a.handleChangePassword)).Methods(http.MethodPatch)

	return r
}

func (a *API) adminOnly(h http.HandlerFunc) http.Handler {
	return AdminAuthMiddleware(a.authCfg, a.log)(h)
}

func (a *API) rateLimited(h http.HandlerFunc) http.Handler {
	if !a.rlCfg.Enabled {
		return h
	}
	return RateLimitMiddleware(newLimiter(a.rlCfg))(h)
}

// newLimiter 按配置选择限流实现，默认令牌桶。
func newLimiter(cfg config.RateLimitConfig) middleware.RateLimiter {
	switch cfg.Kind {
	case "sliding_window":
		window := time.Duration(cfg.WindowSeconds) * time.Second
		if window <= 0 {
			window = time.Minute
		}
		return middleware.NewSlidingWindow(window, int(cfg.Capacity))
	default:
		return middleware.NewTokenBucket(cfg.Capacity, cfg.RefillRate)
	}
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"clients": a.hub.ClientCount(),
	})
}
