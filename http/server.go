package http

import (
	"io"
	"net/http"
	"time"

	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/modmail-cloud/departments-worker/bot/button"
	btnmanager "github.com/modmail-cloud/departments-worker/bot/button/manager"
	"github.com/modmail-cloud/departments-worker/bot/command"
	cmdmanager "github.com/modmail-cloud/departments-worker/bot/command/manager"
	"github.com/modmail-cloud/departments-worker/config"
	"github.com/modmail-cloud/departments-worker/worker"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Interaction callback types, per the Discord gateway contract.
const (
	responseTypePong                  = 1
	responseTypeDeferredUpdateMessage = 6
)

// responseTimeout bounds how long the HTTP callback waits for the handler's
// first reply before falling back to a deferred response.
const responseTimeout = time.Second * 3

// Server receives interaction payloads forwarded by the gateway proxy and
// writes the first handler response as the HTTP callback body.
type Server struct {
	logger           *zap.Logger
	commandManager   *cmdmanager.CommandManager
	componentManager *btnmanager.ComponentManager
}

func NewServer(logger *zap.Logger, commandManager *cmdmanager.CommandManager, componentManager *btnmanager.ComponentManager) *Server {
	return &Server{
		logger:           logger,
		commandManager:   commandManager,
		componentManager: componentManager,
	}
}

func (s *Server) Run(addr string) error {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/interactions", s.handleInteraction)

	s.logger.Info("Starting interaction server", zap.String("addr", addr))
	return router.Run(addr)
}

func (s *Server) handleInteraction(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var header struct {
		Type interaction.InteractionType `json:"type"`
	}

	if err := json.Unmarshal(body, &header); err != nil {
		s.logger.Warn("Failed to decode interaction", zap.Error(err))
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	switch header.Type {
	case interaction.InteractionTypePing:
		c.JSON(http.StatusOK, gin.H{"type": responseTypePong})
	case interaction.InteractionTypeApplicationCommand:
		s.handleCommand(c, body)
	case interaction.InteractionTypeMessageComponent:
		s.handleComponent(c, body)
	default:
		c.AbortWithStatus(http.StatusBadRequest)
	}
}

func (s *Server) handleCommand(c *gin.Context, body []byte) {
	var data interaction.ApplicationCommandInteraction
	if err := json.Unmarshal(body, &data); err != nil {
		s.logger.Warn("Failed to decode application command", zap.Error(err))
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	responseChannel := make(chan command.Response, 1)
	cc := s.commandManager.ExecuteCommand(s.workerContext(), data, responseChannel)
	if cc == nil {
		c.JSON(http.StatusOK, command.ResponseDeferred{}.Build())
		return
	}

	select {
	case res := <-responseChannel:
		c.JSON(http.StatusOK, res.Build())
	case <-time.After(responseTimeout):
		s.logger.Warn("Command did not respond in time, deferring",
			zap.String("command", data.Data.Name))

		// Defer claims the first reply unless the handler just beat it; either
		// way the channel now holds exactly one response to write back, and
		// later replies edit the original response.
		cc.Defer()
		c.JSON(http.StatusOK, (<-responseChannel).Build())
	}
}

func (s *Server) handleComponent(c *gin.Context, body []byte) {
	var data interaction.MessageComponentInteraction
	if err := json.Unmarshal(body, &data); err != nil {
		s.logger.Warn("Failed to decode message component", zap.Error(err))
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	responseChannel := make(chan button.Response, 1)
	menuCtx := s.componentManager.HandleInteraction(s.workerContext(), data, responseChannel)
	if menuCtx == nil {
		c.JSON(http.StatusOK, gin.H{"type": responseTypeDeferredUpdateMessage})
		return
	}

	select {
	case res := <-responseChannel:
		c.JSON(http.StatusOK, res.Build())
	case <-time.After(responseTimeout):
		menuCtx.Ack()
		c.JSON(http.StatusOK, (<-responseChannel).Build())
	}
}

func (s *Server) workerContext() *worker.Context {
	return &worker.Context{
		Token:       config.Conf.Bot.Token,
		BotId:       config.Conf.Bot.Id,
		RateLimiter: nil, // Use http-proxy ratelimit functionality
	}
}
