package handlers_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecclesiabr/ecclesia/internal/handlers"
	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newReportApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	handler := &handlers.ReportHandler{DB: db}
	app.Get("/api/reports/period-total", handler.PeriodTotal)
	app.Get("/api/reports/type-totals", handler.TypeTotals)
	app.Get("/api/reports/parishioners/:id/history", handler.History)
	app.Get("/api/reports/birthdays", handler.Birthdays)
	return app
}

func TestPeriodTotalHandler(t *testing.T) {
	db := setupTestDB(t)
	community := seedCommunity(t, db)
	app := newReportApp(db)

	for i, amount := range []int64{100, 50} {
		contribution := models.Contribution{
			CommunityID:      community.ID,
			Type:             models.Tithe,
			Amount:           decimal.NewFromInt(amount),
			ContributionDate: models.NewDate(time.Date(2025, time.January, 10+i, 0, 0, 0, 0, time.UTC)),
		}
		if err := db.Create(&contribution).Error; err != nil {
			t.Fatalf("Failed to create contribution: %v", err)
		}
	}

	t.Run("totals in range", func(t *testing.T) {
		var body struct {
			Total string `json:"total"`
			Count int64  `json:"count"`
		}
		resp := doRequest(t, app, httptest.NewRequest("GET",
			"/api/reports/period-total?start_date=2025-01-01&end_date=2025-01-31", nil), &body)
		if resp.StatusCode != 200 {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if body.Total != "150.00" || body.Count != 2 {
			t.Errorf("body = %+v, want total 150.00 count 2", body)
		}
	})

	t.Run("missing dates", func(t *testing.T) {
		resp := doRequest(t, app, httptest.NewRequest("GET", "/api/reports/period-total", nil), nil)
		if resp.StatusCode != 400 {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("start after end", func(t *testing.T) {
		resp := doRequest(t, app, httptest.NewRequest("GET",
			"/api/reports/period-total?start_date=2025-02-01&end_date=2025-01-01", nil), nil)
		if resp.StatusCode != 400 {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		resp := doRequest(t, app, httptest.NewRequest("GET",
			"/api/reports/period-total?start_date=01/01/2025&end_date=2025-01-31", nil), nil)
		if resp.StatusCode != 400 {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestTypeTotalsHandler(t *testing.T) {
	db := setupTestDB(t)
	community := seedCommunity(t, db)
	app := newReportApp(db)

	contribution := models.Contribution{
		CommunityID:      community.ID,
		Type:             models.Tithe,
		Amount:           decimal.NewFromInt(75),
		ContributionDate: models.NewDate(time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)),
	}
	if err := db.Create(&contribution).Error; err != nil {
		t.Fatalf("Failed to create contribution: %v", err)
	}

	var body struct {
		Totals []struct {
			Type  string `json:"type"`
			Total string `json:"total"`
			Count int64  `json:"count"`
		} `json:"totals"`
	}
	resp := doRequest(t, app, httptest.NewRequest("GET",
		"/api/reports/type-totals?start_date=2025-05-01&end_date=2025-05-31", nil), &body)
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(body.Totals) != 2 {
		t.Fatalf("len(totals) = %d, want one entry per declared type", len(body.Totals))
	}
	if body.Totals[0].Type != "TITHE" || body.Totals[0].Total != "75.00" {
		t.Errorf("tithe entry = %+v, want 75.00", body.Totals[0])
	}
	if body.Totals[1].Type != "OFFERING" || body.Totals[1].Total != "0.00" || body.Totals[1].Count != 0 {
		t.Errorf("offering entry = %+v, want zero backfill", body.Totals[1])
	}
}

func TestHistoryHandler(t *testing.T) {
	db := setupTestDB(t)
	community := seedCommunity(t, db)
	app := newReportApp(db)

	parishioner := models.Parishioner{CommunityID: community.ID, Name: "João", Active: true}
	if err := db.Create(&parishioner).Error; err != nil {
		t.Fatalf("Failed to create parishioner: %v", err)
	}
	contribution := models.Contribution{
		ParishionerID:    &parishioner.ID,
		CommunityID:      community.ID,
		Type:             models.Tithe,
		Amount:           decimal.NewFromInt(100),
		ContributionDate: models.NewDate(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)),
	}
	if err := db.Create(&contribution).Error; err != nil {
		t.Fatalf("Failed to create contribution: %v", err)
	}

	t.Run("existing parishioner", func(t *testing.T) {
		var body struct {
			ParishionerName string `json:"parishioner_name"`
			Total           string `json:"total"`
			Count           int    `json:"count"`
		}
		resp := doRequest(t, app, httptest.NewRequest("GET", "/api/reports/parishioners/1/history", nil), &body)
		if resp.StatusCode != 200 {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if body.ParishionerName != "João" || body.Total != "100.00" || body.Count != 1 {
			t.Errorf("body = %+v, want João/100.00/1", body)
		}
	})

	t.Run("unknown parishioner", func(t *testing.T) {
		resp := doRequest(t, app, httptest.NewRequest("GET", "/api/reports/parishioners/999/history", nil), nil)
		if resp.StatusCode != 404 {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}

func TestBirthdaysHandler(t *testing.T) {
	db := setupTestDB(t)
	community := seedCommunity(t, db)
	app := newReportApp(db)

	birth := models.NewDate(time.Now().AddDate(-30, 0, 0))
	parishioner := models.Parishioner{CommunityID: community.ID, Name: "Aniversariante", BirthDate: &birth, Active: true}
	if err := db.Create(&parishioner).Error; err != nil {
		t.Fatalf("Failed to create parishioner: %v", err)
	}

	t.Run("today period", func(t *testing.T) {
		var rows []struct {
			Name          string `json:"name"`
			CommunityName string `json:"community_name"`
		}
		resp := doRequest(t, app, httptest.NewRequest("GET", "/api/reports/birthdays?period=today", nil), &rows)
		if resp.StatusCode != 200 {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if len(rows) != 1 || rows[0].Name != "Aniversariante" {
			t.Fatalf("rows = %+v, want the seeded parishioner", rows)
		}
		if rows[0].CommunityName != "Comunidade A" {
			t.Errorf("community_name = %q, want Comunidade A", rows[0].CommunityName)
		}
	})

	t.Run("invalid period", func(t *testing.T) {
		resp := doRequest(t, app, httptest.NewRequest("GET", "/api/reports/birthdays?period=fortnight", nil), nil)
		if resp.StatusCode != 400 {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("missing period", func(t *testing.T) {
		resp := doRequest(t, app, httptest.NewRequest("GET", "/api/reports/birthdays", nil), nil)
		if resp.StatusCode != 400 {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}
