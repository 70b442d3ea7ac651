package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/TTJ-s/qr-annujoom/internal/i18n"
	"github.com/TTJ-s/qr-annujoom/internal/model"
	"gorm.io/gorm"
)

// PreferenceLogic persists per-session state across page reloads: the
// remembered language and the referral code captured from the route path.
type PreferenceLogic struct {
	db *gorm.DB
}

// NewPreferenceLogic creates the preference store.
func NewPreferenceLogic(db *gorm.DB) *PreferenceLogic {
	return &PreferenceLogic{db: db}
}

func (l *PreferenceLogic) load(ctx context.Context, sessionID string) (*model.SessionPreference, error) {
	var pref model.SessionPreference
	err := l.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (l *PreferenceLogic) upsert(ctx context.Context, sessionID string, updates map[string]interface{}) error {
	pref, err := l.load(ctx, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pref = &model.SessionPreference{SessionID: sessionID}
		if err := l.db.WithContext(ctx).Create(pref).Error; err != nil {
			return fmt.Errorf("create session preference: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("load session preference: %w", err)
	}
	if err := l.db.WithContext(ctx).Model(pref).Updates(updates).Error; err != nil {
		return fmt.Errorf("update session preference: %w", err)
	}
	return nil
}

// Language returns the session's language, defaulting to English.
func (l *PreferenceLogic) Language(ctx context.Context, sessionID string) i18n.Language {
	pref, err := l.load(ctx, sessionID)
	if err != nil {
		return i18n.English
	}
	return i18n.ParseLanguage(pref.Language)
}

// SetLanguage remembers the session's language.
func (l *PreferenceLogic) SetLanguage(ctx context.Context, sessionID string, lang i18n.Language) error {
	return l.upsert(ctx, sessionID, map[string]interface{}{"language": string(lang)})
}

// SetReferral captures a referral code for the session's next donation.
func (l *PreferenceLogic) SetReferral(ctx context.Context, sessionID, code string) error {
	return l.upsert(ctx, sessionID, map[string]interface{}{"referred_by": code})
}

// ReferredBy returns the stored referral code, empty when none.
func (l *PreferenceLogic) ReferredBy(ctx context.Context, sessionID string) (string, error) {
	pref, err := l.load(ctx, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load session preference: %w", err)
	}
	return pref.ReferredBy, nil
}

// ClearReferral drops the stored referral code after a verified donation.
func (l *PreferenceLogic) ClearReferral(ctx context.Context, sessionID string) error {
	return l.upsert(ctx, sessionID, map[string]interface{}{"referred_by": ""})
}
