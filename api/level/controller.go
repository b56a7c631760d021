package levelapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/endless-maze-api/api/identity"
	"github.com/beka-birhanu/endless-maze-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// leaderboardSize is the number of entries returned per level board.
const leaderboardSize = 10

// LevelController serves generated levels, records completions, and exposes
// per-level leaderboards.
type LevelController struct {
	levels      i.LevelProvider
	progress    i.ProgressTracker
	leaderboard i.Leaderboard
}

// NewLevelController initializes a LevelController.
func NewLevelController(lp i.LevelProvider, pt i.ProgressTracker, lb i.Leaderboard) (*LevelController, error) {
	return &LevelController{
		levels:      lp,
		progress:    pt,
		leaderboard: lb,
	}, nil
}

// RegisterPublic registers public routes.
func (lc *LevelController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (lc *LevelController) RegisterProtected(route *gin.RouterGroup) {
	levels := route.Group("/levels")
	{
		levels.GET("/:number", lc.level)
		levels.POST("/:number/complete", lc.complete)
		levels.GET("/:number/leaderboard", lc.levelLeaderboard)
	}
	route.GET("/progress", lc.playerProgress)
}

// level generates and returns the maze for a level number.
func (lc *LevelController) level(ctx *gin.Context) {
	number, ok := levelParam(ctx)
	if !ok {
		return
	}

	maze, descriptor, err := lc.levels.LevelFor(number)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating level"})
		return
	}

	width, height := maze.Dimensions()
	response := &MazeResponse{
		Level:        descriptor.Level,
		Tier:         descriptor.Tier,
		Algorithm:    string(descriptor.Algorithm),
		BraidPercent: descriptor.BraidPercent,
		Width:        width,
		Height:       height,
		Start:        maze.StartPosition(),
		Exit:         maze.ExitPosition(),
		Rows:         renderRows(maze),
	}
	ctx.JSON(http.StatusOK, response)
}

// complete records a finished run and advances the player's progression.
func (lc *LevelController) complete(ctx *gin.Context) {
	number, ok := levelParam(ctx)
	if !ok {
		return
	}

	playerID, ok := playerIDFromClaims(ctx)
	if !ok {
		return
	}

	var request CompleteRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.ElapsedMs <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "elapsed_ms must be positive"})
		return
	}

	elapsed := time.Duration(request.ElapsedMs) * time.Millisecond
	if err := lc.progress.Complete(ctx, playerID, number, elapsed); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// levelLeaderboard returns the fastest recorded runs for a level.
func (lc *LevelController) levelLeaderboard(ctx *gin.Context) {
	number, ok := levelParam(ctx)
	if !ok {
		return
	}

	entries, err := lc.leaderboard.Top(ctx, number, leaderboardSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}

	response := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, LeaderboardEntryResponse{
			PlayerID: e.PlayerID,
			TimeMs:   e.Time.Milliseconds(),
		})
	}
	ctx.JSON(http.StatusOK, response)
}

// playerProgress returns the caller's resume level and completion history.
func (lc *LevelController) playerProgress(ctx *gin.Context) {
	playerID, ok := playerIDFromClaims(ctx)
	if !ok {
		return
	}

	next, err := lc.progress.Resume(ctx, playerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := lc.progress.History(ctx, playerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading progress"})
		return
	}

	history := make([]ProgressResponse, 0, len(records))
	for _, p := range records {
		history = append(history, progressResponseFrom(p))
	}
	ctx.JSON(http.StatusOK, gin.H{
		"next_level": next,
		"history":    history,
	})
}

// levelParam parses the :number path segment, rejecting non-positive levels.
func levelParam(ctx *gin.Context) (int, bool) {
	raw := ctx.Params.ByName("number")
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid level number"})
		return 0, false
	}
	return number, true
}

// playerIDFromClaims extracts the authenticated player's ID attached by the
// authorization middleware.
func playerIDFromClaims(ctx *gin.Context) (uuid.UUID, bool) {
	claims, exists := ctx.Get(identity.ContextUserClaims)
	if !exists {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}

	claimMap, ok := claims.(map[string]interface{})
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}

	idString, ok := claimMap["playerID"].(string)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}

	playerID, err := uuid.Parse(idString)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return playerID, true
}
