package visitor

import (
	"context"
	"log/slog"
	"time"

	"teklif-api/internal/models"
	"teklif-api/internal/repository"
)

// Tracker appends enriched visitor records. Fire-and-forget: failures are
// logged and never reach the caller.
type Tracker struct {
	repo    *repository.VisitorRepository
	locator *GeoLocator
}

func NewTracker(repo *repository.VisitorRepository) *Tracker {
	return &Tracker{repo: repo, locator: NewGeoLocator()}
}

func (t *Tracker) Track(ctx context.Context, ip, userAgent, page string) {
	geo := t.locator.Lookup(ip)
	info := ParseUserAgent(userAgent)

	record := &models.Visitor{
		IP:        ip,
		Page:      page,
		Country:   geo.Country,
		City:      geo.City,
		Region:    geo.Region,
		Timezone:  geo.Timezone,
		Browser:   info.Browser,
		OS:        info.OS,
		Device:    info.Device,
		UserAgent: info.UserAgent,
		Timestamp: time.Now().UTC(),
	}

	if err := t.repo.Insert(ctx, record); err != nil {
		slog.Warn("visitor tracking failed", "ip", ip, "page", page, "error", err)
	}
}
