package gateway

import (
	"errors"
	"net/http"

	"github.com/AlexanderGrooff/kobe-client/pkg/client"
	"github.com/AlexanderGrooff/kobe-client/pkg/common"
	"github.com/AlexanderGrooff/kobe-client/pkg/kobe"
	"github.com/AlexanderGrooff/kobe-client/pkg/request"
	"github.com/AlexanderGrooff/kobe-client/pkg/resilient"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Server exposes a client.TaskAPI over HTTP
type Server struct {
	router *gin.Engine
	api    client.TaskAPI
	port   string
}

// NewServer creates a new HTTP server and registers its routes
func NewServer(api client.TaskAPI, port string) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router: router,
		api:    api,
		port:   port,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := s.router.Group("/api/v1")
	{
		api.POST("/adhoc", s.submitAdhoc)
		api.POST("/playbook", s.submitPlaybook)
		api.GET("/results/:id", s.getResult)
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	common.LogInfo("Starting gateway", map[string]interface{}{"port": s.port})
	return s.router.Run(":" + s.port)
}

// Handler returns the router, for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) submitAdhoc(c *gin.Context) {
	var req kobe.RunAdhocRequest
	if err := bindProto(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := request.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	handle, err := s.api.SubmitAdhoc(c.Request.Context(), &req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusAccepted, handle)
}

func (s *Server) submitPlaybook(c *gin.Context) {
	var req kobe.RunPlaybookRequest
	if err := bindProto(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := request.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	handle, err := s.api.SubmitPlaybook(c.Request.Context(), &req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusAccepted, handle)
}

// bindProto decodes the request body with the protobuf JSON mapping.
// Unknown fields are rejected.
func bindProto(c *gin.Context, msg proto.Message) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	return protojson.Unmarshal(body, msg)
}

func (s *Server) getResult(c *gin.Context) {
	result, err := s.api.FetchResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) fail(c *gin.Context, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		common.LogError("Gateway call failed", map[string]interface{}{
			"path":  c.FullPath(),
			"error": err.Error(),
		})
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	var (
		notFound *client.NotFoundError
		connErr  *client.ConnectionError
		remote   *client.RemoteError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &connErr), resilient.IsOpen(err):
		return http.StatusServiceUnavailable
	case errors.As(err, &remote):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
