package handler

import (
	"github.com/TTJ-s/qr-annujoom/internal/i18n"
	"github.com/TTJ-s/qr-annujoom/internal/payment"
)

// Response is the uniform envelope for every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// CategoryCard is one tile on the category chooser screen.
type CategoryCard struct {
	CampaignID  string             `json:"campaign_id"`
	Category    string             `json:"category"`
	Title       i18n.LocalizedText `json:"title"`
	Description i18n.LocalizedText `json:"description"`
	Image       string             `json:"image"`
}

// CampaignSummary is one row of the general-campaign listing.
type CampaignSummary struct {
	ID          string             `json:"id"`
	Title       i18n.LocalizedText `json:"title"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	Collected   string             `json:"collected"`
	Target      string             `json:"target"`
	Progress    int                `json:"progress"`
	DueDate     string             `json:"due_date"`
}

// GeneralCampaignsResponse is the listing, or a redirect when exactly one
// general campaign is live.
type GeneralCampaignsResponse struct {
	RedirectTo string            `json:"redirect_to,omitempty"`
	Campaigns  []CampaignSummary `json:"campaigns,omitempty"`
}

// CampaignDetail is the donate view.
type CampaignDetail struct {
	ID            string             `json:"id"`
	Category      string             `json:"category"`
	Title         i18n.LocalizedText `json:"title"`
	Description   string             `json:"description"`
	Image         string             `json:"image"`
	Collected     string             `json:"collected"`
	Target        string             `json:"target"`
	Progress      int                `json:"progress"`
	HasTarget     bool               `json:"has_target"`
	TargetReached bool               `json:"target_reached"`
	DueDate       string             `json:"due_date,omitempty"`
	// FocusAmount mirrors the ?donate=true deep link that auto-focuses the
	// amount field.
	FocusAmount bool `json:"focus_amount"`
}

// RecentDonor is one row of the recent-donations strip on the detail view.
type RecentDonor struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	When   string `json:"when"`
}

// QuoteResponse lists the fee breakdown per available payment method.
type QuoteResponse struct {
	Quotes map[payment.Method]payment.Quote `json:"quotes"`
}

// OrderResponse is the created order plus the gateway continuation.
type OrderResponse struct {
	DonationID string              `json:"donation_id"`
	OrderID    string              `json:"order_id"`
	Quote      payment.Quote       `json:"quote"`
	Invocation *payment.Invocation `json:"invocation"`
}

// VerifyResponse reports a settled donation and where to reload totals.
type VerifyResponse struct {
	CampaignID string `json:"campaign_id"`
	Banner     string `json:"banner"`
}

// LanguageResponse carries the remembered language preference.
type LanguageResponse struct {
	Language string `json:"language"`
}
