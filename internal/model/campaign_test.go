package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func target(v float64) *float64 { return &v }

func TestVisible(t *testing.T) {
	c := Campaign{Status: CampaignStatusActive, ApprovalStatus: ApprovalStatusApproved}
	assert.True(t, c.Visible())

	c.Status = CampaignStatusInactive
	assert.False(t, c.Visible())

	c.Status = CampaignStatusActive
	c.ApprovalStatus = ApprovalStatusPending
	assert.False(t, c.Visible())
}

func TestTargetReached(t *testing.T) {
	c := Campaign{CollectedAmount: 5000}
	// No target can never be reached.
	assert.False(t, c.TargetReached())

	c.TargetAmount = target(0)
	assert.False(t, c.TargetReached())

	c.TargetAmount = target(5000)
	assert.True(t, c.TargetReached())

	c.TargetAmount = target(5001)
	assert.False(t, c.TargetReached())
}

func TestImageFallsBackToCategoryArtwork(t *testing.T) {
	c := Campaign{Category: CategoryZakat, CoverImage: "https://cdn.example.com/c.jpg"}
	assert.Equal(t, "https://cdn.example.com/c.jpg", c.Image())

	c.CoverImage = ""
	assert.Equal(t, "/assets/images/zakat.jpg", c.Image())
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryGhuslMayyit, ParseCategory("Ghusl Mayyit"))
	assert.Equal(t, CategoryUnknown, ParseCategory("Something Else"))
	assert.Equal(t, CategoryUnknown, ParseCategory(""))
}

func TestUnknownCategoryDefaults(t *testing.T) {
	unknown := ParseCategory("Flood Relief")
	assert.Equal(t, "/assets/images/general-campaign.jpg", unknown.Image())
	assert.NotEmpty(t, unknown.Description().EN)
	assert.NotEmpty(t, unknown.Description().ML)
}
