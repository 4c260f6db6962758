package http

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/config"
	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/services"
)

type Server struct {
	engine *gin.Engine
	cfg    config.Config
}

func NewServer(cfg config.Config) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	completionSvc := services.NewCompletionService(cfg)
	extractSvc := services.NewExtractService(cfg)
	mailSvc := services.NewMailService(cfg)
	pdfSvc := services.NewPDFService()

	if mailSvc.Configured() {
		if err := mailSvc.Verify(); err != nil {
			log.Printf("warning: email configuration is invalid, sharing may not work: %v", err)
		}
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(RequestLogger())
	engine.Use(MaxBodySize(cfg.MaxUploadBytes))
	engine.Use(CORS(cfg))

	api := NewAPI(cfg, completionSvc, extractSvc, mailSvc, pdfSvc)
	registerRoutes(engine, api)

	return &Server{engine: engine, cfg: cfg}, nil
}

func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	return s.engine.Run(addr)
}
