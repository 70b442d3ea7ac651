package handler

import (
	"net/http"

	"github.com/TTJ-s/qr-annujoom/internal/format"
	"github.com/TTJ-s/qr-annujoom/internal/logic"
	"github.com/gin-gonic/gin"
)

const recentDonorLimit = 10

type DonationHandler struct {
	donations *logic.DonationLogic
}

func NewDonationHandler(donations *logic.DonationLogic) *DonationHandler {
	return &DonationHandler{donations: donations}
}

// RecentDonors lists the latest verified donations for a campaign, donor
// names anonymised when the donor gave none.
func (h *DonationHandler) RecentDonors(c *gin.Context) {
	donations, err := h.donations.RecentByCampaign(c.Request.Context(), c.Param("id"), recentDonorLimit)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	donors := make([]RecentDonor, 0, len(donations))
	for _, d := range donations {
		name := d.DonorName
		if name == "" {
			name = "Anonymous"
		}
		donors = append(donors, RecentDonor{
			Name:   name,
			Amount: format.Currency(d.Amount),
			When:   d.UpdatedAt.Format("02 Jan 2006"),
		})
	}
	SuccessResponse(c, http.StatusOK, "ok", donors)
}
