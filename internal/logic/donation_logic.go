package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TTJ-s/qr-annujoom/internal/model"
	"gorm.io/gorm"
)

// DonationLogic keeps the local donation ledger.
type DonationLogic struct {
	db *gorm.DB
}

// NewDonationLogic creates the donation ledger logic.
func NewDonationLogic(db *gorm.DB) *DonationLogic {
	return &DonationLogic{db: db}
}

// RecordOrder stores a donation whose gateway order was just created.
func (l *DonationLogic) RecordOrder(ctx context.Context, d *model.Donation) error {
	if d.OrderID == "" {
		return errors.New("donation has no order id")
	}
	if d.Status == "" {
		d.Status = model.DonationStatusOrderCreated
	}
	if err := l.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("record donation: %w", err)
	}
	return nil
}

// FindByOrderID loads the donation for a provider order.
func (l *DonationLogic) FindByOrderID(ctx context.Context, orderID string) (*model.Donation, error) {
	var d model.Donation
	err := l.db.WithContext(ctx).Where("order_id = ?", orderID).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("donation for order %s not found", orderID)
		}
		return nil, fmt.Errorf("load donation: %w", err)
	}
	return &d, nil
}

// MarkVerified settles a donation after successful verification. The status
// only moves forward; a verified donation is never downgraded.
func (l *DonationLogic) MarkVerified(ctx context.Context, orderID, paymentID, signature string) (*model.Donation, error) {
	d, err := l.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if d.Status == model.DonationStatusVerified {
		return d, nil
	}
	updates := map[string]interface{}{
		"status":     model.DonationStatusVerified,
		"payment_id": paymentID,
		"signature":  signature,
	}
	if err := l.db.WithContext(ctx).Model(d).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("mark donation verified: %w", err)
	}
	return d, nil
}

// MarkFailed records a definitively failed attempt.
func (l *DonationLogic) MarkFailed(ctx context.Context, orderID string) error {
	d, err := l.FindByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if d.Status == model.DonationStatusVerified {
		return nil
	}
	return l.db.WithContext(ctx).Model(d).
		Update("status", model.DonationStatusFailed).Error
}

// PendingSince lists donations stuck in order_created since before the
// cutoff, oldest first, for the reconcile job.
func (l *DonationLogic) PendingSince(ctx context.Context, cutoff time.Time, limit int) ([]model.Donation, error) {
	var donations []model.Donation
	err := l.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", model.DonationStatusOrderCreated, cutoff).
		Order("updated_at asc").
		Limit(limit).
		Find(&donations).Error
	if err != nil {
		return nil, fmt.Errorf("list pending donations: %w", err)
	}
	return donations, nil
}

// RecentByCampaign lists the latest verified donations for a campaign.
func (l *DonationLogic) RecentByCampaign(ctx context.Context, campaignID string, limit int) ([]model.Donation, error) {
	var donations []model.Donation
	err := l.db.WithContext(ctx).
		Where("campaign_id = ? AND status = ?", campaignID, model.DonationStatusVerified).
		Order("created_at desc").
		Limit(limit).
		Find(&donations).Error
	if err != nil {
		return nil, fmt.Errorf("list donations for campaign %s: %w", campaignID, err)
	}
	return donations, nil
}
