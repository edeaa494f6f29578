package main

import (
	"fmt"
	"net/http"

	"booking-client/cache"
	"booking-client/clients"
	"booking-client/config"
	"booking-client/handlers"
	"booking-client/routes"
	"booking-client/security"
	"booking-client/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	server *gin.Engine
	cfg    *config.Config
	logger *logrus.Logger

	backendClient *clients.BackendClient

	credentialStore *security.CredentialStore

	availabilityService services.AvailabilityService
	reservationService  services.ReservationService
	roomService         services.RoomService

	AuthRouteHandler    routes.AuthRouteHandler
	RoomRouteHandler    routes.RoomRouteHandler
	BookingRouteHandler routes.BookingRouteHandler
)

func init() {
	cfg = config.LoadConfig()

	//logging
	logger = logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	lumberjackLog := &lumberjack.Logger{
		Filename:  "/booking-client/logs/logfile.log",
		MaxSize:   1,
		LocalTime: true,
	}
	logger.SetOutput(lumberjackLog)
	logger.WithFields(logrus.Fields{"path": "main"}).Info("booking client starting")
	//logging

	tracerProvider, err := NewTracerProvider(cfg.ServiceName, cfg.JaegerAddress)
	if err != nil {
		logger.Fatalf("JaegerTraceProvider failed to Initialize. Error :%s", err)
	}
	tracer := tracerProvider.Tracer(cfg.ServiceName)

	redisClient := cache.NewRedisClient(cfg.RedisHost, cfg.RedisPort)
	sessionCache := cache.NewSessionCache(redisClient, logger, tracer)
	roomCache := cache.NewRoomCache(redisClient, logger, tracer)
	if err := sessionCache.Ping(); err != nil {
		logger.WithFields(logrus.Fields{"path": "main"}).Error("Redis not reachable: ", err)
	}

	credentialStore = security.NewCredentialStore(sessionCache)

	backendClient = clients.NewBackendClient(cfg.BackendBaseURL, logger, tracer)

	availabilityService = services.NewAvailabilityServiceImpl(backendClient, roomCache, tracer)
	reservationService = services.NewReservationServiceImpl(backendClient, tracer)
	roomService = services.NewRoomServiceImpl(backendClient, tracer)

	authHandler := handlers.NewAuthHandler(backendClient, credentialStore, cfg.SessionTTL, logger, tracer)
	searchHandler := handlers.NewSearchHandler(availabilityService, logger, tracer)
	bookingHandler := handlers.NewBookingHandler(reservationService, roomService, backendClient, logger, tracer)
	roomHandler := handlers.NewRoomHandler(roomService, backendClient, logger, tracer)

	AuthRouteHandler = routes.NewAuthRouteHandler(authHandler, credentialStore)
	RoomRouteHandler = routes.NewRoomRouteHandler(searchHandler, roomHandler, credentialStore)
	BookingRouteHandler = routes.NewBookingRouteHandler(bookingHandler, credentialStore)

	server = gin.Default()
}

func main() {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"https://localhost:4200"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	server.Use(cors.New(corsConfig))

	router := server.Group("/api")
	router.GET("/healthchecker", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "Message"})
	})

	server.GET("/home", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "success", "view": "home"})
	})
	server.GET("/login", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "success", "view": "login"})
	})
	server.GET("/register", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "success", "view": "register"})
	})

	AuthRouteHandler.AuthRoute(router)
	RoomRouteHandler.RoomRoute(router)
	BookingRouteHandler.BookingRoute(router)

	// unknown paths fall closed onto the login view
	server.NoRoute(func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, security.LoginPath)
	})

	err := server.Run(":" + cfg.Port)
	if err != nil {
		fmt.Println(err)
		return
	}
}

func NewTracerProvider(serviceName, collectorEndpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(collectorEndpoint)))
	if err != nil {
		return nil, fmt.Errorf("unable to initialize exporter due: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			semconv.DeploymentEnvironmentKey.String("development"),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}
