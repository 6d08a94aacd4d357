package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"keep-app/src/config"
	"keep-app/src/handlers"
	"keep-app/src/logger"
	"keep-app/src/middleware"
	"keep-app/src/persistence"
	"keep-app/src/routes"
	"keep-app/src/service"
	"keep-app/src/storage"
	"keep-app/src/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .envがあれば読み込む（無くてもよい）
	_ = godotenv.Load()

	// 設定を読み込み
	cfg := config.LoadConfig()

	// ロガーを初期化
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.Directory); err != nil {
		panic(fmt.Sprintf("ロガーの初期化に失敗: %v", err))
	}
	defer logger.CloseLogger()

	logger.Log.Info("アプリケーションを開始しています")

	// スナップショットストアを初期化
	blobs, closeBlobs, err := newSnapshotStore(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("スナップショットストアの初期化に失敗")
	}

	// 永続化ブリッジを作成し、初期スナップショットを読み込む
	bridge := persistence.NewBridge(blobs, logger.Log)
	notes, labels := bridge.Load()

	st := store.New(logger.Log)
	st.Load(notes, labels)
	bridge.Attach(st)

	logger.WithFields(logrus.Fields{
		"notes":  len(notes),
		"labels": len(labels),
	}).Info("コレクションを読み込みました")

	// ボードロック
	tokens := service.NewBoardTokenService(cfg)
	authHandler, err := handlers.NewAuthHandler(cfg.Auth.BoardPassword, tokens, logger.Log)
	if err != nil {
		logger.Log.WithError(err).Fatal("認証ハンドラーの初期化に失敗")
	}
	if authHandler.Enabled() {
		logger.Log.Info("ボードロックが有効です")
	}

	noteHandler := handlers.NewNoteHandler(st, logger.Log)
	labelHandler := handlers.NewLabelHandler(st, logger.Log)

	// Ginルーターを初期化
	r := gin.Default()

	// NoRouteハンドラー（404）
	r.NoRoute(func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"uri":       c.Request.RequestURI,
			"client_ip": c.ClientIP(),
		}).Warn("404: ルートが見つかりません")
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	// グローバルmiddlewareを適用
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware(300, time.Minute))

	// ヘルスチェック用のエンドポイント
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	authMW := middleware.AuthMiddleware(tokens, authHandler.Enabled())
	routes.SetupRoutes(r, noteHandler, labelHandler, authHandler, authMW)

	// グレースフルシャットダウンの設定
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		logger.Log.Info("シャットダウンシグナルを受信しました")

		// 未書き込みのスナップショットをフラッシュ
		bridge.Close()
		if closeBlobs != nil {
			closeBlobs()
		}

		logger.CloseLogger()
		os.Exit(0)
	}()

	// サーバーを起動
	serverAddr := ":" + cfg.Server.Port
	logger.Log.WithField("port", cfg.Server.Port).Info("サーバーを開始します")

	if err := r.Run(serverAddr); err != nil {
		logger.Log.WithError(err).Fatal("サーバーの起動に失敗")
	}
}

// newSnapshotStore 設定に応じたスナップショットストアを作成
func newSnapshotStore(cfg *config.Config) (storage.SnapshotStore, func(), error) {
	switch cfg.Storage.Backend {
	case "s3":
		s3Store, err := storage.NewS3Store(&storage.S3Config{
			Endpoint:        cfg.Storage.S3.Endpoint,
			AccessKeyID:     cfg.Storage.S3.AccessKeyID,
			SecretAccessKey: cfg.Storage.S3.SecretAccessKey,
			Region:          cfg.Storage.S3.Region,
			Bucket:          cfg.Storage.S3.Bucket,
			UseSSL:          cfg.Storage.S3.UseSSL,
		}, logger.Log)
		if err != nil {
			return nil, nil, err
		}
		return s3Store, nil, nil
	case "postgres":
		pgStore, err := storage.NewPostgresStore(&storage.PostgresConfig{
			Host:     cfg.Storage.Postgres.Host,
			Port:     cfg.Storage.Postgres.Port,
			User:     cfg.Storage.Postgres.User,
			Password: cfg.Storage.Postgres.Password,
			DBName:   cfg.Storage.Postgres.DBName,
			SSLMode:  cfg.Storage.Postgres.SSLMode,
		}, logger.Log)
		if err != nil {
			return nil, nil, err
		}
		return pgStore, func() { pgStore.Close() }, nil
	default:
		fileStore, err := storage.NewFileStore(cfg.Storage.Directory, logger.Log)
		if err != nil {
			return nil, nil, err
		}
		return fileStore, nil, nil
	}
}
