package services

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/Jannescynatix/ipg/internal/database"
	"github.com/Jannescynatix/ipg/internal/models"
)

const (
	// OnlineWindow is how far back a visit may lie for its IP to count as
	// "online now".
	OnlineWindow = 5 * time.Minute

	// RecentVisitsLimit caps the visit list embedded in the stats summary.
	// The full list is available via the visits endpoint with all=true.
	RecentVisitsLimit = 20

	// ListLimit is the default page size of the raw list endpoints.
	ListLimit = 50
)

type VisitService struct {
	geoService *GeoService
}

func NewVisitService(geoService *GeoService) *VisitService {
	return &VisitService{
		geoService: geoService,
	}
}

// Record geolocates the visit's IP address and persists the visit. The
// lookup is best effort: on any failure both country and city stay
// "Unbekannt" and the visit is stored anyway.
func (s *VisitService) Record(ctx context.Context, visit *models.Visit) error {
	visit.Country = models.UnknownLocation
	visit.City = models.UnknownLocation

	country, city, err := s.geoService.Lookup(visit.IPAddress)
	if err != nil {
		log.Printf("Geolocation lookup for %s failed: %v", visit.IPAddress, err)
	} else {
		visit.Country = country
		visit.City = city
	}

	_, err = database.DB.NewInsert().Model(visit).Exec(ctx)
	return err
}

// ListVisits returns visits newest first. With all=true the result is
// unbounded, otherwise it is capped at ListLimit.
func (s *VisitService) ListVisits(ctx context.Context, all bool) ([]models.Visit, error) {
	visits := make([]models.Visit, 0)
	query := database.DB.NewSelect().
		Model(&visits).
		Order("created_at DESC")
	if !all {
		query = query.Limit(ListLimit)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return visits, nil
}

type DayCount struct {
	Date  string `bun:"date" json:"date"`
	Count int    `bun:"count" json:"count"`
}

type OSCount struct {
	OS    string `bun:"os" json:"os"`
	Count int    `bun:"count" json:"count"`
}

type BrowserCount struct {
	Browser string `bun:"browser" json:"browser"`
	Count   int    `bun:"count" json:"count"`
}

type StatsSummary struct {
	TotalVisits      int            `json:"totalVisits"`
	UniqueIPs        int            `json:"uniqueIPs"`
	OnlineUsers      int            `json:"onlineUsers"`
	FailedLoginCount int            `json:"failedLoginCount"`
	AvgDuration      float64        `json:"avgDuration"`
	VisitsByDay      []DayCount     `json:"visitsByDay"`
	VisitsByOS       []OSCount      `json:"visitsByOS"`
	VisitsByBrowser  []BrowserCount `json:"visitsByBrowser"`
	Visits           []models.Visit `json:"visits"`
}

// Stats recomputes the dashboard summary from current storage state. No
// caching; the dashboard polls every 30 seconds and volumes are small.
func (s *VisitService) Stats(ctx context.Context) (*StatsSummary, error) {
	db := database.DB
	summary := &StatsSummary{
		VisitsByDay:     make([]DayCount, 0),
		VisitsByOS:      make([]OSCount, 0),
		VisitsByBrowser: make([]BrowserCount, 0),
		Visits:          make([]models.Visit, 0),
	}

	totalVisits, err := db.NewSelect().Model((*models.Visit)(nil)).Count(ctx)
	if err != nil {
		return nil, err
	}
	summary.TotalVisits = totalVisits

	if err := db.NewSelect().
		Model((*models.Visit)(nil)).
		ColumnExpr("COUNT(DISTINCT ip_address)").
		Scan(ctx, &summary.UniqueIPs); err != nil {
		return nil, err
	}

	onlineThreshold := time.Now().Add(-OnlineWindow)
	if err := db.NewSelect().
		Model((*models.Visit)(nil)).
		ColumnExpr("COUNT(DISTINCT ip_address)").
		Where("created_at >= ?", onlineThreshold).
		Scan(ctx, &summary.OnlineUsers); err != nil {
		return nil, err
	}

	failedLogins, err := db.NewSelect().Model((*models.FailedLogin)(nil)).Count(ctx)
	if err != nil {
		return nil, err
	}
	summary.FailedLoginCount = failedLogins

	var durationSum float64
	if err := db.NewSelect().
		Model((*models.Visit)(nil)).
		ColumnExpr("COALESCE(SUM(duration_seconds), 0)").
		Scan(ctx, &durationSum); err != nil {
		return nil, err
	}
	summary.AvgDuration = AverageDuration(durationSum, totalVisits)

	if err := db.NewSelect().
		Model((*models.Visit)(nil)).
		ColumnExpr("to_char(created_at, 'YYYY-MM-DD') AS date").
		ColumnExpr("COUNT(*) AS count").
		GroupExpr("to_char(created_at, 'YYYY-MM-DD')").
		OrderExpr("date ASC").
		Scan(ctx, &summary.VisitsByDay); err != nil {
		return nil, err
	}

	if err := db.NewSelect().
		Model((*models.Visit)(nil)).
		Column("os").
		ColumnExpr("COUNT(*) AS count").
		Group("os").
		OrderExpr("count DESC").
		Scan(ctx, &summary.VisitsByOS); err != nil {
		return nil, err
	}

	if err := db.NewSelect().
		Model((*models.Visit)(nil)).
		Column("browser").
		ColumnExpr("COUNT(*) AS count").
		Group("browser").
		OrderExpr("count DESC").
		Scan(ctx, &summary.VisitsByBrowser); err != nil {
		return nil, err
	}

	if err := db.NewSelect().
		Model(&summary.Visits).
		Order("created_at DESC").
		Limit(RecentVisitsLimit).
		Scan(ctx); err != nil {
		return nil, err
	}

	return summary, nil
}

// AverageDuration computes sum/count rounded to two decimal places. Zero
// visits yield zero.
func AverageDuration(durationSum float64, totalVisits int) float64 {
	if totalVisits == 0 {
		return 0
	}
	return math.Round(durationSum/float64(totalVisits)*100) / 100
}

// ClearAll irreversibly removes every tracked record: visits, the
// authentication audit trail and all giveaway entries. The admin account
// itself is kept.
func (s *VisitService) ClearAll(ctx context.Context) error {
	tables := []interface{}{
		(*models.Visit)(nil),
		(*models.FailedLogin)(nil),
		(*models.SuccessfulLogin)(nil),
		(*models.SuccessfulLogout)(nil),
		(*models.GiveawayParticipant)(nil),
	}

	for _, table := range tables {
		if _, err := database.DB.NewTruncateTable().Model(table).Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ListFailedLogins returns failed logins newest first.
func (s *VisitService) ListFailedLogins(ctx context.Context, all bool) ([]models.FailedLogin, error) {
	events := make([]models.FailedLogin, 0)
	query := database.DB.NewSelect().Model(&events).Order("created_at DESC")
	if !all {
		query = query.Limit(ListLimit)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

// ListSuccessfulLogins returns successful logins newest first.
func (s *VisitService) ListSuccessfulLogins(ctx context.Context, all bool) ([]models.SuccessfulLogin, error) {
	events := make([]models.SuccessfulLogin, 0)
	query := database.DB.NewSelect().Model(&events).Order("created_at DESC")
	if !all {
		query = query.Limit(ListLimit)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

// ListSuccessfulLogouts returns logouts newest first.
func (s *VisitService) ListSuccessfulLogouts(ctx context.Context, all bool) ([]models.SuccessfulLogout, error) {
	events := make([]models.SuccessfulLogout, 0)
	query := database.DB.NewSelect().Model(&events).Order("created_at DESC")
	if !all {
		query = query.Limit(ListLimit)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return events, nil
}
