package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/firebase"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/imagehost"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/localcache"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/middleware"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/notify"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/pubsub"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/store"
	pkgws "github.com/sharpplay-labs/sharpplay-backend/internal/pkg/ws"
	"github.com/sharpplay-labs/sharpplay-backend/internal/profile"
	"github.com/sharpplay-labs/sharpplay-backend/internal/ws"
)

func main() {
	setupViper()
	setupZerolog()
	pubsub.InitPubSub()
	firebase.InitFirebaseSdk()

	defer func() { pubsub.CloseClient() }()
	defer func() { firebase.CloseClients() }()

	cache := setupLocalCache()
	notifier := setupNotifier()
	profileService := profile.NewService(
		&store.ProfileStore{Client: firebase.Firestore()},
		imagehost.NewClient(),
		cache,
		notifier)

	apiRouter := setupApiRouter(profileService)

	port := viper.Get("PORT").(string)
	server := &http.Server{
		Addr:         port,
		Handler:      apiRouter,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	server.ListenAndServe()
}

func setupLocalCache() *localcache.Cache {
	cache, err := localcache.Open(viper.GetString("LOCAL_CACHE_DIR"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open local fallback cache")
	}
	return cache
}

func setupNotifier() *notify.Registry {
	notifier := notify.NewRegistry()
	notifier.Register(ws.NewSnapshotBroadcaster())
	notifier.Register(profile.EventPublisher{})
	return notifier
}

func setupApiRouter(profileService *profile.Service) *gin.Engine {
	apiRouter := gin.Default()
	routerGroup := apiRouter.Group("/sharpplay-api")

	middleware.RegisterGlobalMiddleware(apiRouter)

	ws.RegisterRoutes(routerGroup)
	profile.RegisterRoutesAndSubscriptions(routerGroup, profileService, pkgws.NewNotificationHub())

	return apiRouter
}

func setupViper() {
	viper.AutomaticEnv()
	viper.SetConfigFile("./.env")
}

func setupZerolog() {
	zerolog.LevelFieldName = "severity"
	zerolog.TimestampFieldName = "time"
	zerolog.TimeFieldFormat = time.RFC3339Nano
}
