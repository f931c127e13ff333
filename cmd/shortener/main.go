package main

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/atinyakov/go-deeplink-shortener/internal/app/server"
	"github.com/atinyakov/go-deeplink-shortener/internal/app/service"
	"github.com/atinyakov/go-deeplink-shortener/internal/cache"
	"github.com/atinyakov/go-deeplink-shortener/internal/config"
	"github.com/atinyakov/go-deeplink-shortener/internal/logger"
	"github.com/atinyakov/go-deeplink-shortener/internal/repository"
	"github.com/atinyakov/go-deeplink-shortener/internal/storage"
	"github.com/atinyakov/go-deeplink-shortener/internal/webhook"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	options := config.Parse()

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	log := logger.New()
	defer func() {
		_ = log.Log.Sync()
	}()

	if err := log.Init("Info"); err != nil {
		panic(err)
	}
	zapLogger := log.Log

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	var s storage.Store

	if options.DatabaseDSN != "" {
		zapLogger.Info("using db")
		db, err := repository.InitDB(options.DatabaseDSN, zapLogger)
		if err != nil {
			panic(err)
		}
		defer db.Close()
		s = repository.CreateURLRepository(db, zapLogger)
		zapLogger.Info("Database connected and table ready.")
	} else if options.FilePath != "" {
		zapLogger.Info("using file", zap.String("filePath", options.FilePath))

		fs, err := storage.NewFileStorage(options.FilePath, zapLogger)
		if err != nil {
			panic(err)
		}
		defer fs.Close()
		s = fs
	} else {
		zapLogger.Info("using in memory storage")

		ms, err := storage.CreateMemoryStorage()
		if err != nil {
			panic(err)
		}
		s = ms
	}

	var redirectCache service.RedirectCache
	if options.RedisAddr != "" {
		c, err := cache.New(options.RedisAddr, options.RedisPassword, options.RedisDB,
			time.Duration(options.CacheTTLSecs)*time.Second, zapLogger)
		if err != nil {
			panic(err)
		}
		defer c.Close()
		redirectCache = c
		zapLogger.Info("redirect cache connected", zap.String("addr", options.RedisAddr))
	} else {
		zapLogger.Info("redirect cache disabled")
		redirectCache = cache.NewNoop()
	}

	dispatcher := webhook.NewDispatcher(int64(options.WebhookMaxConcurrent),
		time.Duration(options.WebhookTimeoutSecs)*time.Second, zapLogger)

	urlService := service.NewURL(s, redirectCache, dispatcher, zapLogger)
	auth := service.NewAuth(options.JWTSecret)

	r := server.Init(urlService, auth, options.TrustedSubnet, zapLogger)

	if options.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist("mysite.ru", "www.mysite.ru"),
		}
		srv := &http.Server{
			Addr:      ":443",
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}
		zapLogger.Info("Server is running with TLS", zap.String("hostname", options.Port))
		if err := srv.ListenAndServeTLS("", ""); err != nil {
			panic(err)
		}
	} else {
		zapLogger.Info("Server is running", zap.String("hostname", options.Port))
		if err := http.ListenAndServe(options.Port, r); err != nil {
			panic(err)
		}
	}
}
