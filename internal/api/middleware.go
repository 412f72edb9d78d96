package api

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/prestigedrive/prestigedrive/internal/common/auth"
	"github.com/prestigedrive/prestigedrive/internal/common/config"
	"github.com/prestigedrive/prestigedrive/internal/common/logger"
	"github.com/prestigedrive/prestigedrive/internal/common/middleware"
)

// responseWriter 包装 http.ResponseWriter 记录状态码；
// 实现 Hijacker 以兼容 WebSocket 升级。
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return h.Hijack()
}

// RecoveryMiddleware 防止 panic 直接把进程打崩，并记录栈信息。
func RecoveryMiddleware(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if log != nil {
						log.Errorf("panic in http handler path=%s err=%v stack=%s", r.URL.Path, rec, string(debug.Stack()))
					}
					writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// AccessLogMiddleware 记录每个请求的耗时/状态码。
func AccessLogMiddleware(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)
			cost := time.Since(start)

			if log != nil {
				fields := map[string]interface{}{
					"method": r.Method,
					"path":   r.URL.Path,
					"status": rw.status,
					"cost":   cost.String(),
				}
				if rw.status >= http.StatusInternalServerError {
					log.WithFields(fields).Warn("http request failed")
				} else {
					log.WithFields(fields).Info("http request ok")
				}
			}
		})
	}
}

// TracingMiddleware 基于 OpenTracing 的最小 server 中间件：
// - 从请求头提取上游 span context
// - 创建 server span 并注入 ctx，业务侧可用 opentracing.StartSpanFromContext 续接
func TracingMiddleware(serviceName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tracer := opentracing.GlobalTracer()

			var parent opentracing.SpanContext
			if sc, err := tracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(r.Header)); err == nil {
				parent = sc
			}

			operation := r.Method + " " + r.URL.Path
			var span opentracing.Span
			if parent != nil {
				span = tracer.StartSpan(operation, ext.RPCServerOption(parent))
			} else {
				span = tracer.StartSpan(operation)
			}
			defer span.Finish()

			ext.SpanKindRPCServer.Set(span)
			ext.Component.Set(span, "http")
			ext.HTTPMethod.Set(span, r.Method)
			ext.HTTPUrl.Set(span, r.URL.Path)
			if serviceName != "" {
				span.SetTag("service", serviceName)
			}

			ctx := opentracing.ContextWithSpan(r.Context(), span)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RateLimitMiddleware 对公网提交接口限流（令牌桶）。
func RateLimitMiddleware(limiter middleware.RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter != nil && !limiter.Allow(r.Context()) {
				writeError(w, http.StatusTooManyRequests, codeTooManyRequests, "too many requests, slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type authContextKey struct{}

// AuthInfo 从 JWT 中解析出的最小用户信息（放入 ctx，供业务侧使用）。
type AuthInfo struct {
	Subject string
	Roles   []string
}

// AuthFromContext 从 ctx 中取出鉴权信息。
func AuthFromContext(ctx context.Context) (AuthInfo, bool) {
	v := ctx.Value(authContextKey{})
	if v == nil {
		return AuthInfo{}, false
	}
	ai, ok := v.(AuthInfo)
	return ai, ok
}

// AdminAuthMiddleware 管理端 JWT 鉴权：
// - 从 `Authorization: Bearer <token>` 读取令牌
// - 校验签名与标准字段，要求 roles 含 admin
// - 将解析结果写入 ctx
func AdminAuthMiddleware(cfg config.AuthConfig, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}
			if strings.TrimSpace(cfg.JWTSecret) == "" {
				if log != nil {
					log.Warn("auth enabled but jwt_secret is empty")
				}
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "auth not configured")
				return
			}

			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing authorization")
				return
			}
			tokenStr := raw
			if strings.HasPrefix(strings.ToLower(tokenStr), "bearer ") {
				tokenStr = strings.TrimSpace(tokenStr[len("bearer "):])
			}
			if tokenStr == "" {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid authorization")
				return
			}

			claims, err := auth.ParseAccessToken(cfg, tokenStr)
			if err != nil {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid token")
				return
			}
			if !hasRole(claims.Roles, "admin") {
				writeError(w, http.StatusForbidden, codeForbidden, "permission denied")
				return
			}

			ctx := context.WithValue(r.Context(), authContextKey{}, AuthInfo{
				Subject: claims.Subject,
				Roles:   claims.Roles,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func hasRole(got []string, want string) bool {
	want = strings.TrimSpace(strings.ToLower(want))
	for _, r := range got {
		if strings.TrimSpace(strings.ToLower(r)) == want {
			return true
		}
	}
	return false
}
