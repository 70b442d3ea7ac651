package campaign

import (
	"sort"
	"time"

	"github.com/TTJ-s/qr-annujoom/internal/model"
)

// VisibleSet filters to active+approved campaigns and keeps at most one
// representative per category, first occurrence winning. This derived list
// drives the category chooser screen.
func VisibleSet(campaigns []model.Campaign) []model.Campaign {
	seen := make(map[model.Category]bool, len(campaigns))
	out := make([]model.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if !c.Visible() || seen[c.Category] {
			continue
		}
		seen[c.Category] = true
		out = append(out, c)
	}
	return out
}

// General filters to visible General Campaign entries sorted ascending by
// due date, campaigns without a due date last.
func General(campaigns []model.Campaign) []model.Campaign {
	out := make([]model.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c.Category == model.CategoryGeneralCampaign && c.Visible() {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return dueDate(out[i]).Before(dueDate(out[j]))
	})
	return out
}

// farFuture stands in for a missing due date so open-ended campaigns sort last.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

func dueDate(c model.Campaign) time.Time {
	if c.TargetDate == nil {
		return farFuture
	}
	return *c.TargetDate
}

// SingleRedirect reports the one campaign id the caller should navigate to
// directly when the general listing has exactly one entry.
func SingleRedirect(campaigns []model.Campaign) (string, bool) {
	if len(campaigns) == 1 {
		return campaigns[0].ID, true
	}
	return "", false
}
