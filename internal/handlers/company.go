package handlers

import (
	"net/http"

	"github.com/akileinonen/maintenance-wizard/internal/auth"
	dom "github.com/akileinonen/maintenance-wizard/internal/domain"
	"github.com/akileinonen/maintenance-wizard/internal/dto"
	"github.com/akileinonen/maintenance-wizard/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler exposes the caller's company and invite-code rotation.
type CompanyHandler struct {
	svc *service.CompanyService
}

// NewCompanyHandler returns a new CompanyHandler.
func NewCompanyHandler(svc *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

// Get godoc
// @Summary      Current company
// @Tags         company
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.CompanyResponse
// @Failure      500  {object}  map[string]string
// @Router       /company [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	id := auth.IdentityFromContext(c)
	company, err := h.svc.Get(c.Request.Context(), id.CompanyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, companyToResponse(company, id.Role == dom.RoleAdmin))
}

// RotateInvite godoc
// @Summary      Rotate the company invite code
// @Tags         company
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /company/invite [post]
func (h *CompanyHandler) RotateInvite(c *gin.Context) {
	id := auth.IdentityFromContext(c)
	company, err := h.svc.RotateInviteCode(c.Request.Context(), id.CompanyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, companyToResponse(company, true))
}

func companyToResponse(company dom.Company, withInvite bool) dto.CompanyResponse {
	resp := dto.CompanyResponse{
		ID:        company.ID,
		Name:      company.Name,
		CreatedAt: company.CreatedAt,
	}
	if withInvite {
		resp.InviteCode = company.InviteCode
	}
	return resp
}
