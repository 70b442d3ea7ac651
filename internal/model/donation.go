package model

import (
	"time"

	"gorm.io/gorm"
)

// Donation is one contribution attempt tied to a campaign. Created when the
// donor submits the form; never deleted, status only moves forward.
type Donation struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`

	CampaignID string  `json:"campaign_id" gorm:"not null;index"`
	Amount     float64 `json:"amount" gorm:"not null"`
	Fee        float64 `json:"fee" gorm:"default:0"`
	Total      float64 `json:"total" gorm:"not null"`
	Currency   string  `json:"currency" gorm:"default:'INR'"`
	Gateway    string  `json:"gateway" gorm:"not null"`

	// Donor identity; phone/email only in the strict flow variant.
	DonorName  string `json:"donor_name"`
	DonorPhone string `json:"donor_phone"`
	DonorEmail string `json:"donor_email"`
	ReferredBy string `json:"referred_by"`

	// Backend and provider identifiers filled in as the attempt progresses.
	UpstreamID string `json:"upstream_id" gorm:"index"`
	OrderID    string `json:"order_id" gorm:"uniqueIndex"`
	PaymentID  string `json:"payment_id"`
	Signature  string `json:"signature"`

	Status DonationStatus `json:"status" gorm:"default:'created'"`
}

// DonationStatus is the checkout attempt's persistent state.
type DonationStatus string

const (
	DonationStatusCreated      DonationStatus = "created"
	DonationStatusOrderCreated DonationStatus = "order_created"
	DonationStatusVerified     DonationStatus = "verified"
	DonationStatusFailed       DonationStatus = "failed"
)
