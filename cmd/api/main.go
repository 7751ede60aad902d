package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	appcontext "github.com/hankosign/hankosign/internal/app_context"
	"github.com/hankosign/hankosign/internal/auth"
	"github.com/hankosign/hankosign/internal/cache"
	"github.com/hankosign/hankosign/internal/config"
	"github.com/hankosign/hankosign/internal/controller"
	"github.com/hankosign/hankosign/internal/database"
	"github.com/hankosign/hankosign/internal/env"
	filestorage "github.com/hankosign/hankosign/internal/file_storage"
	"github.com/hankosign/hankosign/internal/mailer"
	"github.com/hankosign/hankosign/internal/middleware"
	ratelimiter "github.com/hankosign/hankosign/internal/rate_limiter"
	"github.com/hankosign/hankosign/internal/repository"
	"github.com/hankosign/hankosign/internal/route"
	"github.com/hankosign/hankosign/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	s3, err := filestorage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	redisCache := cache.NewCache(cfg.Redis, logger)
	defer redisCache.Close()

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
		if err = v.RegisterValidation("cmin", util.CustomMin); err != nil {
			return
		}
		if err = v.RegisterValidation("cmax", util.CustomMax); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)

	var mail mailer.Client
	if cfg.Mail.Provider == "sendgrid" {
		mail = mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	} else {
		mail = mailer.NewSMTPMailer(cfg.Mail.SMTP.HOST, cfg.Mail.SMTP.PORT, cfg.Mail.SMTP.USERNAME, cfg.Mail.SMTP.PASSWORD, cfg.Mail.FROM_EMAIL, logger)
	}

	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, jwtService, s3)
	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
		JWTService: jwtService,
		S3:         s3,
		Cache:      redisCache,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontURL}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")

	route.V1_Auth(rApi, _controller.Auth)
	route.V1_Users(rApi, _controller.User, _middleware)
	route.V1_Hankos(rApi, _controller.Hanko, _middleware)
	route.V1_Documents(rApi, _controller.Document, _controller.Workflow, _middleware)
	route.V1_Signatures(rApi, _controller.Signature, _middleware)
	route.V1_Approvals(rApi, _controller.Workflow, _middleware)
	route.V1_Verify(rApi, _controller.Verification)
	route.V1_Admin(rApi, _controller.Admin, _middleware)
	route.V1_Contact(rApi, _controller.Contact)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
