package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/marketplace/backend/internal/application/partner"
)

// AgentHandler handles agent registration endpoints
type AgentHandler struct {
	BaseHandler
	registrationService *partnerapp.RegistrationService
}

// NewAgentHandler creates a new AgentHandler
func NewAgentHandler(registrationService *partnerapp.RegistrationService) *AgentHandler {
	return &AgentHandler{registrationService: registrationService}
}

// registerAgentBody is the JSON body for agent registration. MainUserID
// points at the main account's agent-user record when registering a
// sub-user.
type registerAgentBody struct {
	Name       string  `json:"name" binding:"required,min=1,max=200"`
	AgentType  string  `json:"agent_type" binding:"required,oneof=supplier customer"`
	MainUserID *string `json:"main_user_id" binding:"omitempty,uuid"`
}

// Register handles POST /agents
func (h *AgentHandler) Register(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var body registerAgentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	req := partnerapp.RegisterAgentRequest{
		UserID:     userID,
		Name:       body.Name,
		AgentType:  body.AgentType,
		MainUserID: toUUIDPtr(body.MainUserID),
	}

	resp, err := h.registrationService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}
