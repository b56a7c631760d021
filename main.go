package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/endless-maze-api/api"
	"github.com/beka-birhanu/endless-maze-api/api/identity"
	api_i "github.com/beka-birhanu/endless-maze-api/api/i"
	levelapi "github.com/beka-birhanu/endless-maze-api/api/level"
	"github.com/beka-birhanu/endless-maze-api/config"
	"github.com/beka-birhanu/endless-maze-api/infrastruture/leaderboard"
	"github.com/beka-birhanu/endless-maze-api/infrastruture/repo"
	"github.com/beka-birhanu/endless-maze-api/infrastruture/token"
	"github.com/beka-birhanu/endless-maze-api/service"
	"github.com/beka-birhanu/endless-maze-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// leaderboardTTLSeconds expires idle level boards after a week.
const leaderboardTTLSeconds = 7 * 24 * 60 * 60

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	playerRepo      i.PlayerRepo
	progressRepo    i.ProgressRepo
	levelBoard      i.Leaderboard
	levelProvider   i.LevelProvider
	progressTracker i.ProgressTracker
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	authController  api_i.Controller
	levelController api_i.Controller
	router          *api.Router
	appLogger       *log.Logger
)

// newLogger builds a colored stdout logger for a subsystem.
func newLogger(name, color string) *log.Logger {
	prefix := fmt.Sprintf("%s[%s]%s ", color, name, config.LogColorReset)
	return log.New(os.Stdout, prefix, log.LstdFlags)
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Printf("%sFailed to connect to MongoDB: %v%s", config.LogErrorColor, err, config.LogColorReset)
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Printf("%sMongoDB ping failed: %v%s", config.LogErrorColor, err, config.LogColorReset)
		os.Exit(1)
	}
	appLogger.Println("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Printf("%sRedis ping failed: %v%s", config.LogErrorColor, err, config.LogColorReset)
		os.Exit(1)
	}
	appLogger.Println("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	playerRepo = repo.NewPlayerRepo(client, config.Envs.DBName, "players")
	progressRepo = repo.NewProgressRepo(client, config.Envs.DBName, "progress")
	appLogger.Println("Repositories initialized")
}

func initLeaderboard() {
	var err error
	levelBoard, err = leaderboard.NewRedisLeaderboard(redisClient, leaderboardTTLSeconds)
	if err != nil {
		appLogger.Printf("%sCreating leaderboard: %v%s", config.LogErrorColor, err, config.LogColorReset)
		os.Exit(1)
	}
	appLogger.Println("Leaderboard initialized")
}

func initLevelProvider() {
	var err error
	levelProvider, err = service.NewLevelService(newLogger("LEVEL", config.ColorCyan))
	if err != nil {
		appLogger.Printf("%sCreating level service: %v%s", config.LogErrorColor, err, config.LogColorReset)
		os.Exit(1)
	}
	appLogger.Println("Level service initialized")
}

func initProgressTracker() {
	var err error
	progressTracker, err = service.NewProgress(playerRepo, progressRepo, levelBoard, newLogger("PROGRESS", config.ColorMagenta))
	if err != nil {
		appLogger.Printf("%sCreating progress service: %v%s", config.LogErrorColor, err, config.LogColorReset)
		os.Exit(1)
	}
	appLogger.Println("Progress service initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Println("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(playerRepo, jwtTokenizer)
	if err != nil {
		appLogger.Printf("%sCreating auth service: %v%s", config.LogErrorColor, err, config.LogColorReset)
		os.Exit(1)
	}
	appLogger.Println("Auth service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	levelController, err = levelapi.NewLevelController(levelProvider, progressTracker, levelBoard)
	if err != nil {
		appLogger.Printf("%sCreating level controller: %v%s", config.LogErrorColor, err, config.LogColorReset)
		os.Exit(1)
	}
	appLogger.Println("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, levelController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Println("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	config.Load()
	appLogger = newLogger("APP", config.ColorGreen)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initLeaderboard()
	initLevelProvider()
	initProgressTracker()
	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Printf("%sStarting server: %v%s", config.LogErrorColor, err, config.LogColorReset)
		os.Exit(1)
	}
}
