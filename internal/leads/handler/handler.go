package handler

import (
	"net/http"

	"satei_admin_backend/internal/leads/classify"
	"satei_admin_backend/internal/leads/service"
	"satei_admin_backend/internal/leads/transport"
	"satei_admin_backend/platform/httpkit"
	"satei_admin_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgUnknownCategory  = "unknown category"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/counts", h.Counts)
	rg.GET("/:id", h.GetByID)
	rg.GET("/:id/classification", h.Classification)
}

func (h *Handler) List(c *gin.Context) {
	var req transport.ListLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	category := classify.CategoryAll
	if req.Category != "" {
		parsed, ok := classify.ParseCategory(req.Category)
		if !ok {
			httpkit.Error(c, http.StatusBadRequest, msgUnknownCategory, req.Category)
			return
		}
		category = parsed
	}

	leads, err := h.svc.List(c.Request.Context(), category)
	if httpkit.HandleError(c, err) {
		return
	}

	resp := transport.ListLeadsResponse{
		Category: string(category),
		Total:    len(leads),
		Leads:    make([]transport.LeadResponse, 0, len(leads)),
	}
	for _, cl := range leads {
		resp.Leads = append(resp.Leads, toLeadResponse(cl))
	}

	httpkit.OK(c, resp)
}

func (h *Handler) Counts(c *gin.Context) {
	today, counts, err := h.svc.Counts(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	resp := transport.CountsResponse{
		Today:  today,
		Counts: make(map[string]int, len(counts)),
	}
	for category, count := range counts {
		resp.Counts[string(category)] = count
	}

	httpkit.OK(c, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	cl, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, toLeadResponse(cl))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	cl, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, toLeadResponse(cl))
}

func (h *Handler) Classification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	memberships, err := h.svc.Classification(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ClassificationResponse{
		ID:         id,
		Categories: toMembershipResponses(memberships),
	})
}

func toLeadResponse(cl service.ClassifiedLead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:         cl.Lead.ID,
		Data:       cl.Lead.Data,
		Categories: toMembershipResponses(cl.Categories),
		CreatedAt:  cl.Lead.CreatedAt,
		UpdatedAt:  cl.Lead.UpdatedAt,
	}
}

func toMembershipResponses(memberships []classify.Membership) []transport.MembershipResponse {
	out := make([]transport.MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		out = append(out, transport.MembershipResponse{
			Category: string(m.Category),
			Label:    m.Label,
		})
	}
	return out
}
