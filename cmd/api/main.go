package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-booking/internal/db"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/avatar"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/session"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/routes"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	policy, err := schedulingPolicy(cfg.Scheduling)
	if err != nil {
		log.Fatalf("scheduling: %v", err)
	}

	// ======================================================
	// 🔒 LOCK + SESSÕES (redis quando configurado)
	// ======================================================
	var locker lock.Locker = lock.NewLocalLocker()
	var blacklist session.Blacklist = session.NewMemoryBlacklist()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
		cancel()
		defer rdb.Close()

		locker = lock.NewRedisLocker(rdb, cfg.LockTTL)
		blacklist = session.NewRedisBlacklist(rdb)
		log.Printf("redis: using %s for booking locks and sessions", cfg.RedisAddr)
	}

	r := gin.Default()

	// ======================================================
	// 🖼️ AVATARES (S3 ou disco local)
	// ======================================================
	var avatars avatar.Store
	if cfg.S3Bucket != "" {
		avatars = avatar.NewS3Store(avatar.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	} else {
		disk, err := avatar.NewDiskStore(cfg.UploadDir, "/uploads")
		if err != nil {
			log.Fatalf("avatars: %v", err)
		}
		avatars = disk
		r.Static("/uploads", cfg.UploadDir)
	}

	auditor := audit.NewDispatcher(audit.New(db))

	routes.RegisterRoutes(r, routes.Deps{
		Config:       cfg,
		Policy:       policy,
		Now:          timezone.Now,
		Appointments: repository.NewAppointmentGormRepository(db),
		Users:        repository.NewUserGormRepository(db),
		Services:     repository.NewServiceGormRepository(db),
		AuditLogs:    repository.NewAuditGormRepository(db),
		Audit:        auditor,
		Locker:       locker,
		Blacklist:    blacklist,
		Avatars:      avatars,
		Metrics:      metrics.New("barbershop"),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}

	// drena os eventos de auditoria pendentes
	auditor.Close()
}

func schedulingPolicy(s config.Scheduling) (domain.Policy, error) {
	return domain.NewPolicy(
		s.OpenAt,
		s.CloseAt,
		time.Duration(s.ToleranceMinutes)*time.Minute,
		time.Duration(s.GridMinutes)*time.Minute,
		domain.TolerancePolicy(s.TolerancePolicy),
		timezone.Fixed(s.UTCOffsetHours),
	)
}
