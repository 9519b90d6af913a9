package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/startuphub-br/startuphub-api/internal/app/community"
	"go.uber.org/zap"
)

// CommunityHandler expõe os endpoints de startups, mentores e mentorias
type CommunityHandler struct {
	service *community.Service
	logger  *zap.Logger
}

func NewCommunityHandler(service *community.Service, logger *zap.Logger) *CommunityHandler {
	return &CommunityHandler{
		service: service,
		logger:  logger,
	}
}

// ListStartups responde com todas as startups e seus mentores
func (h *CommunityHandler) ListStartups(c *gin.Context) {
	startups, err := h.service.ListStartups(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, startups)
}

type startupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	MentorID    string `json:"mentorId"`
}

// CreateStartup cria uma nova startup
func (h *CommunityHandler) CreateStartup(c *gin.Context) {
	var req startupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	startup, err := h.service.CreateStartup(c.Request.Context(), community.StartupInput{
		Name:        req.Name,
		Description: req.Description,
		MentorID:    req.MentorID,
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, startup)
}

// ListMentors responde com todos os mentores
func (h *CommunityHandler) ListMentors(c *gin.Context) {
	mentors, err := h.service.ListMentors(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mentors)
}

type mentorRequest struct {
	Name      string `json:"name" binding:"required"`
	Expertise string `json:"expertise"`
}

// CreateMentor cria um novo mentor
func (h *CommunityHandler) CreateMentor(c *gin.Context) {
	var req mentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	mentor, err := h.service.CreateMentor(c.Request.Context(), community.MentorInput{
		Name:      req.Name,
		Expertise: req.Expertise,
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, mentor)
}

// ListMentorships responde com todas as mentorias, incluindo startup e mentor
func (h *CommunityHandler) ListMentorships(c *gin.Context) {
	mentorships, err := h.service.ListMentorships(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mentorships)
}

type mentorshipRequest struct {
	StartupID string `json:"startupId" binding:"required"`
	MentorID  string `json:"mentorId" binding:"required"`
}

// CreateMentorship vincula uma startup a um mentor
func (h *CommunityHandler) CreateMentorship(c *gin.Context) {
	var req mentorshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	mentorship, err := h.service.CreateMentorship(c.Request.Context(), community.MentorshipInput{
		StartupID: req.StartupID,
		MentorID:  req.MentorID,
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, mentorship)
}
