package model

import (
	"time"

	"github.com/TTJ-s/qr-annujoom/internal/i18n"
)

// CampaignStatus mirrors the backend's lifecycle field. Campaigns are created
// and approved out-of-band; this service only reads them.
type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusInactive CampaignStatus = "inactive"
	CampaignStatusClosed   CampaignStatus = "closed"
)

// ApprovalStatus is the backend's moderation state.
type ApprovalStatus string

const (
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Campaign is the upstream campaign document. Not persisted here.
type Campaign struct {
	ID              string             `json:"_id"`
	Category        Category           `json:"category"`
	Title           i18n.LocalizedText `json:"title"`
	Description     i18n.LocalizedText `json:"description"`
	CoverImage      string             `json:"cover_image"`
	CollectedAmount float64            `json:"collected_amount"`
	TargetAmount    *float64           `json:"target_amount,omitempty"`
	TargetDate      *time.Time         `json:"target_date,omitempty"`
	Status          CampaignStatus     `json:"status"`
	ApprovalStatus  ApprovalStatus     `json:"approval_status"`
}

// Visible reports whether end users may see this campaign.
func (c *Campaign) Visible() bool {
	return c.Status == CampaignStatusActive && c.ApprovalStatus == ApprovalStatusApproved
}

// HasTarget reports whether the campaign has a positive target amount.
func (c *Campaign) HasTarget() bool {
	return c.TargetAmount != nil && *c.TargetAmount > 0
}

// TargetReached reports whether the collected amount has met the target.
// Campaigns without a target never reach it.
func (c *Campaign) TargetReached() bool {
	return c.HasTarget() && c.CollectedAmount >= *c.TargetAmount
}

// Image returns the campaign cover image, falling back to the category
// artwork when the backend has none.
func (c *Campaign) Image() string {
	if c.CoverImage != "" {
		return c.CoverImage
	}
	return c.Category.Image()
}
