package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/prestigedrive/prestigedrive/internal/admin"
	"github.com/prestigedrive/prestigedrive/internal/api"
	"github.com/prestigedrive/prestigedrive/internal/availability"
	"github.com/prestigedrive/prestigedrive/internal/booking"
	"github.com/prestigedrive/prestigedrive/internal/common/config"
	"github.com/prestigedrive/prestigedrive/internal/common/db"
	"github.com/prestigedrive/prestigedrive/internal/common/logger"
	"github.com/prestigedrive/prestigedrive/internal/common/server"
	"github.com/prestigedrive/prestigedrive/internal/common/tracing"
	"github.com/prestigedrive/prestigedrive/internal/fleet"
	"github.com/prestigedrive/prestigedrive/internal/notify"
	"github.com/prestigedrive/prestigedrive/internal/renter"
)

var (
	configPath = flag.String("config", "configs/server.json", "配置文件路径")
	consulKey  = flag.String("consul-key", "", "从 Consul KV 读取配置的 key（设置后优先于 -config）")
	consulHost = flag.String("consul-host", "localhost", "Consul 地址（配合 -consul-key）")
	consulPort = flag.Int("consul-port", 8500, "Consul 端口（配合 -consul-key）")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	// 加载配置（文件或 Consul KV 二选一）
	var (
		cfg *config.Config
		err error
	)
	if *consulKey != "" {
		cfg, err = config.LoadConfigFromConsulKV(*consulHost, *consulPort, *consulKey)
	} else {
		cfg, err = config.LoadConfig(*configPath)
	}
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 敏感项允许环境变量覆盖，避免落进配置文件
	if v := os.Getenv("PRESTIGEDRIVE_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("PRESTIGEDRIVE_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	// 初始化日志
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// 初始化链路追踪
	tracer, closer, err := tracing.InitTracer(
		cfg.Server.Name,
		cfg.Jaeger.Endpoint,
		cfg.Jaeger.Sampler,
	)
	if err != nil {
		log.Warnf("failed to init tracer: %v", err)
	} else {
		defer closer.Close()
	}
	_ = tracer

	// 初始化数据库
	gormDB, err := db.NewMySQL(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Database,
		cfg.Database.MaxIdle,
		cfg.Database.MaxOpen,
	)
	if err != nil {
		log.Fatalf("failed to init mysql: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&fleet.Car{},
		&availability.AvailableDate{},
		&booking.Booking{},
		&renter.CarRenter{},
		&admin.AdminUser{},
	); err != nil {
		log.Fatalf("failed to migrate mysql schema: %v", err)
	}

	// 可租日期快照：启动先刷一次，失败不阻塞（定时任务会兜底）
	availStore := availability.NewStore(availability.NewRepo(gormDB), log)
	if err := availStore.Refresh(context.Background()); err != nil {
		log.Warnf("initial availability refresh failed: %v", err)
	}

	// 变更通知 Hub
	hub := notify.NewHub(log)
	go hub.Run()
	events := notify.NewBroadcaster(hub)

	// 领域服务
	carSvc := fleet.NewService(fleet.NewRepo(gormDB))
	bookingSvc := booking.NewService(booking.NewRepo(gormDB), availStore)
	renterSvc := renter.NewService(renter.NewRepo(gormDB))
	adminSvc := admin.NewService(admin.NewRepo(gormDB), cfg.Auth)

	// 定时任务：过期日期清理 + 快照兜底刷新
	c := cron.New(cron.WithSeconds())
	if cfg.Cron.PruneSchedule != "" {
		if _, err := c.AddFunc(cfg.Cron.PruneSchedule, func() {
			today := time.Now().Format(availability.DayFormat)
			n, err := availStore.PruneBefore(context.Background(), today)
			if err != nil {
				log.Warnf("prune stale available dates failed: %v", err)
				return
			}
			if n > 0 {
				log.Infof("pruned %d stale available dates", n)
			}
		}); err != nil {
			log.Warnf("invalid prune schedule %q: %v", cfg.Cron.PruneSchedule, err)
		}
	}
	if cfg.Cron.RefreshSchedule != "" {
		if _, err := c.AddFunc(cfg.Cron.RefreshSchedule, func() {
			if err := availStore.Refresh(context.Background()); err != nil {
				log.Warnf("scheduled availability refresh failed: %v", err)
			}
		}); err != nil {
			log.Warnf("invalid refresh schedule %q: %v", cfg.Cron.RefreshSchedule, err)
		}
	}
	c.Start()
	defer c.Stop()

	// 组路由并启动统一的 HTTP 服务模板
	a := api.New(api.Deps{
		Log:      log,
		Cars:     carSvc,
		Avail:    availStore,
		Bookings: bookingSvc,
		Renters:  renterSvc,
		Admins:   adminSvc,
		Hub:      hub,
		Events:   events,
		AuthCfg:  cfg.Auth,
		RLCfg:    cfg.RateLimit,
	})
	if err := server.RunHTTPServer(cfg, log, a.Router(cfg.Server.Name),
		server.WithShutdownTimeout(10*time.Second),
	); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
