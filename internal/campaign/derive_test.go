package campaign

import (
	"testing"
	"time"

	"github.com/TTJ-s/qr-annujoom/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visible(id string, category model.Category) model.Campaign {
	return model.Campaign{
		ID:             id,
		Category:       category,
		Status:         model.CampaignStatusActive,
		ApprovalStatus: model.ApprovalStatusApproved,
	}
}

func TestVisibleSetDeduplicatesByCategory(t *testing.T) {
	campaigns := []model.Campaign{
		visible("1", model.CategoryZakat),
		visible("2", model.CategoryZakat),
		visible("3", model.CategoryOrphan),
	}

	got := VisibleSet(campaigns)

	require.Len(t, got, 2)
	// First occurrence wins.
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, model.CategoryZakat, got[0].Category)
	assert.Equal(t, "3", got[1].ID)
	assert.Equal(t, model.CategoryOrphan, got[1].Category)
}

func TestVisibleSetFiltersInactiveAndUnapproved(t *testing.T) {
	inactive := visible("1", model.CategoryZakat)
	inactive.Status = model.CampaignStatusInactive

	pending := visible("2", model.CategoryOrphan)
	pending.ApprovalStatus = model.ApprovalStatusPending

	got := VisibleSet([]model.Campaign{inactive, pending, visible("3", model.CategoryWidow)})

	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestGeneralSortsByDueDateMissingLast(t *testing.T) {
	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	january := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	a := visible("a", model.CategoryGeneralCampaign)
	a.TargetDate = &march
	b := visible("b", model.CategoryGeneralCampaign)
	c := visible("c", model.CategoryGeneralCampaign)
	c.TargetDate = &january

	got := General([]model.Campaign{a, b, c})

	require.Len(t, got, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestGeneralKeepsOnlyGeneralCampaigns(t *testing.T) {
	got := General([]model.Campaign{
		visible("1", model.CategoryZakat),
		visible("2", model.CategoryGeneralCampaign),
		visible("3", model.CategoryGeneralFunding),
	})

	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestSingleRedirect(t *testing.T) {
	one := []model.Campaign{visible("only", model.CategoryGeneralCampaign)}

	id, ok := SingleRedirect(one)
	assert.True(t, ok)
	assert.Equal(t, "only", id)

	_, ok = SingleRedirect(nil)
	assert.False(t, ok)

	_, ok = SingleRedirect(append(one, visible("second", model.CategoryGeneralCampaign)))
	assert.False(t, ok)
}
