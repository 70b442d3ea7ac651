package handler

import (
	"errors"
	"net/http"

	"github.com/TTJ-s/qr-annujoom/internal/campaign"
	"github.com/TTJ-s/qr-annujoom/internal/format"
	"github.com/TTJ-s/qr-annujoom/internal/i18n"
	"github.com/TTJ-s/qr-annujoom/internal/model"
	"github.com/gin-gonic/gin"
)

const descriptionPreview = 150

type CampaignHandler struct {
	client *campaign.Client
}

func NewCampaignHandler(client *campaign.Client) *CampaignHandler {
	return &CampaignHandler{client: client}
}

// GetCategories serves the chooser screen: one card per category, first
// visible campaign winning.
func (h *CampaignHandler) GetCategories(c *gin.Context) {
	campaigns, err := h.client.List(c.Request.Context())
	if err != nil {
		h.writeClientError(c, err)
		return
	}

	visible := campaign.VisibleSet(campaigns)
	cards := make([]CategoryCard, 0, len(visible))
	for _, cmp := range visible {
		cards = append(cards, CategoryCard{
			CampaignID:  cmp.ID,
			Category:    string(cmp.Category),
			Title:       cmp.Title,
			Description: cmp.Category.Description(),
			Image:       cmp.Image(),
		})
	}
	SuccessResponse(c, http.StatusOK, "ok", cards)
}

// GetGeneral serves the General Campaign listing, or tells the caller to go
// straight to the detail view when exactly one campaign is live.
func (h *CampaignHandler) GetGeneral(c *gin.Context) {
	campaigns, err := h.client.List(c.Request.Context())
	if err != nil {
		h.writeClientError(c, err)
		return
	}
	lang := language(c)

	general := campaign.General(campaigns)
	if id, ok := campaign.SingleRedirect(general); ok {
		SuccessResponse(c, http.StatusOK, "ok", GeneralCampaignsResponse{RedirectTo: "/campaign/" + id})
		return
	}

	summaries := make([]CampaignSummary, 0, len(general))
	for _, cmp := range general {
		summaries = append(summaries, CampaignSummary{
			ID:          cmp.ID,
			Title:       cmp.Title,
			Description: format.CleanDescription(i18n.Resolve(cmp.Description, lang), descriptionPreview),
			Image:       cmp.Image(),
			Collected:   format.Currency(cmp.CollectedAmount),
			Target:      format.CurrencyPtr(cmp.TargetAmount),
			Progress:    format.Progress(cmp.CollectedAmount, cmp.TargetAmount),
			DueDate:     format.Date(cmp.TargetDate),
		})
	}
	SuccessResponse(c, http.StatusOK, "ok", GeneralCampaignsResponse{Campaigns: summaries})
}

// GetCampaign serves the detail/donate view for one campaign.
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	cmp, err := h.client.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeClientError(c, err)
		return
	}
	lang := language(c)

	SuccessResponse(c, http.StatusOK, "ok", h.detail(cmp, lang, c.Query("donate") == "true"))
}

func (h *CampaignHandler) detail(cmp *model.Campaign, lang i18n.Language, focus bool) CampaignDetail {
	d := CampaignDetail{
		ID:            cmp.ID,
		Category:      string(cmp.Category),
		Title:         cmp.Title,
		Description:   format.CleanDescription(i18n.Resolve(cmp.Description, lang), 5000),
		Image:         cmp.Image(),
		Collected:     format.Currency(cmp.CollectedAmount),
		Target:        format.CurrencyPtr(cmp.TargetAmount),
		Progress:      format.Progress(cmp.CollectedAmount, cmp.TargetAmount),
		HasTarget:     cmp.HasTarget(),
		TargetReached: cmp.TargetReached(),
		FocusAmount:   focus,
	}
	if cmp.TargetDate != nil {
		d.DueDate = format.Date(cmp.TargetDate)
	}
	return d
}

func (h *CampaignHandler) writeClientError(c *gin.Context, err error) {
	lang := language(c)
	switch {
	case errors.Is(err, campaign.ErrNotFound):
		LocalizedErrorResponse(c, http.StatusNotFound, i18n.MsgCampaignNotFound, lang)
	case errors.Is(err, campaign.ErrUnreachable):
		ErrorResponse(c, http.StatusBadGateway, err.Error())
	default:
		ErrorResponse(c, http.StatusBadGateway, err.Error())
	}
}
