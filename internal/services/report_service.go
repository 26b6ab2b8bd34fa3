// report_service.go
//
// Ecclesia parish tithe and membership management service.

package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// BirthdayPeriod selects which parishioner birthdays a report covers.
type BirthdayPeriod string

const (
	BirthdayToday BirthdayPeriod = "today"
	BirthdayWeek  BirthdayPeriod = "7days"
	BirthdayMonth BirthdayPeriod = "month"
)

// birthdayWindowDays is the rolling window length for the 7days period.
const birthdayWindowDays = 7

// Valid reports whether p is a known birthday period.
func (p BirthdayPeriod) Valid() bool {
	switch p {
	case BirthdayToday, BirthdayWeek, BirthdayMonth:
		return true
	}
	return false
}

// PeriodTotal is the aggregate over contributions in a date range.
type PeriodTotal struct {
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// TypeTotal is the aggregate for one contribution type in a date range.
type TypeTotal struct {
	Type  models.ContributionType `json:"type"`
	Total decimal.Decimal         `json:"total"`
	Count int64                   `json:"count"`
}

// ParishionerHistory is a parishioner's full contribution record.
type ParishionerHistory struct {
	ParishionerID   uint                  `json:"parishioner_id"`
	ParishionerName string                `json:"parishioner_name"`
	Total           decimal.Decimal       `json:"total"`
	Count           int                   `json:"count"`
	Contributions   []models.Contribution `json:"contributions"`
}

// BirthdayRow is one matching parishioner in a birthday report. The community
// name comes from a join, not a per-row lookup.
type BirthdayRow struct {
	ID            uint        `json:"id"`
	Name          string      `json:"name"`
	BirthDate     models.Date `json:"birth_date"`
	Phone         *string     `json:"phone"`
	Email         *string     `json:"email"`
	CommunityID   uint        `json:"community_id"`
	CommunityName string      `json:"community_name"`
}

// GetPeriodTotal sums contributions with a date in [start, end] inclusive,
// optionally scoped to one community. An empty range yields a zero total, not
// an absent one. Callers validate start <= end before reaching here.
func GetPeriodTotal(db *gorm.DB, start, end models.Date, communityID *uint) (PeriodTotal, error) {
	query := db.Model(&models.Contribution{}).
		Clauses(hints.CommentBefore("select", "report:period-total")).
		Where("contribution_date >= ? AND contribution_date <= ?", start, end)
	if communityID != nil {
		query = query.Where("community_id = ?", *communityID)
	}

	var row PeriodTotal
	if err := query.Select("COALESCE(SUM(amount), 0) AS total, COUNT(id) AS count").Scan(&row).Error; err != nil {
		return PeriodTotal{}, err
	}
	return row, nil
}

// GetTotalsByType groups contribution sums and counts by type over [start,
// end] inclusive. The result always holds exactly one entry per declared
// type, in declaration order; types with no rows in range are backfilled with
// zeros after grouping.
func GetTotalsByType(db *gorm.DB, start, end models.Date, communityID *uint) ([]TypeTotal, error) {
	query := db.Model(&models.Contribution{}).
		Clauses(hints.CommentBefore("select", "report:type-totals")).
		Where("contribution_date >= ? AND contribution_date <= ?", start, end)
	if communityID != nil {
		query = query.Where("community_id = ?", *communityID)
	}

	var rows []TypeTotal
	err := query.Select("type, COALESCE(SUM(amount), 0) AS total, COUNT(id) AS count").
		Group("type").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byType := make(map[models.ContributionType]TypeTotal, len(rows))
	for _, row := range rows {
		byType[row.Type] = row
	}

	totals := make([]TypeTotal, 0, len(models.ContributionTypes))
	for _, t := range models.ContributionTypes {
		if row, ok := byType[t]; ok {
			totals = append(totals, row)
		} else {
			totals = append(totals, TypeTotal{Type: t, Total: decimal.Zero})
		}
	}
	return totals, nil
}

// GetParishionerHistory returns a parishioner's contributions ordered by date
// descending with their overall total and count. The total is an in-memory
// sum over the fetched rows; one parishioner's contribution set is small, and
// high-cardinality aggregation belongs to the period reports.
func GetParishionerHistory(db *gorm.DB, parishionerID uint) (*ParishionerHistory, error) {
	parishioner, err := GetParishioner(db, parishionerID)
	if err != nil {
		return nil, err
	}

	var contributions []models.Contribution
	err = db.Clauses(hints.CommentBefore("select", "report:history")).
		Where("parishioner_id = ?", parishionerID).
		Order("contribution_date DESC, id DESC").
		Find(&contributions).Error
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, c := range contributions {
		total = total.Add(c.Amount)
	}

	return &ParishionerHistory{
		ParishionerID:   parishioner.ID,
		ParishionerName: parishioner.Name,
		Total:           total,
		Count:           len(contributions),
		Contributions:   contributions,
	}, nil
}

// GetBirthdays reports parishioners whose birthday falls in the selected
// period, evaluated against the current date.
func GetBirthdays(db *gorm.DB, period BirthdayPeriod, communityID *uint) ([]BirthdayRow, error) {
	return GetBirthdaysOn(db, period, communityID, time.Now())
}

// GetBirthdaysOn is GetBirthdays with an explicit evaluation date. Only
// active parishioners with a recorded birth date are eligible. The window
// predicate runs in Go over the candidate set: the supported SQL dialects
// disagree on date-part extraction syntax, and the candidate set for an
// admin tool is small. Results are ordered by birth month, then day, year
// ignored.
func GetBirthdaysOn(db *gorm.DB, period BirthdayPeriod, communityID *uint, today time.Time) ([]BirthdayRow, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("unknown birthday period: %s", period)
	}

	query := db.Table("parishioners").
		Clauses(hints.CommentBefore("select", "report:birthdays")).
		Select("parishioners.id, parishioners.name, parishioners.birth_date, parishioners.phone, parishioners.email, parishioners.community_id, communities.name AS community_name").
		Joins("INNER JOIN communities ON communities.id = parishioners.community_id").
		Where("parishioners.active = ?", true).
		Where("parishioners.birth_date IS NOT NULL")
	if communityID != nil {
		query = query.Where("parishioners.community_id = ?", *communityID)
	}

	var candidates []BirthdayRow
	if err := query.Scan(&candidates).Error; err != nil {
		return nil, err
	}

	matches := make([]BirthdayRow, 0, len(candidates))
	for _, row := range candidates {
		birth := row.BirthDate.Time()
		switch period {
		case BirthdayToday:
			if birth.Month() == today.Month() && birth.Day() == today.Day() {
				matches = append(matches, row)
			}
		case BirthdayMonth:
			if birth.Month() == today.Month() {
				matches = append(matches, row)
			}
		case BirthdayWeek:
			if birthdayInWindow(today, birthdayWindowDays, birth.Month(), birth.Day()) {
				matches = append(matches, row)
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		bi, bj := matches[i].BirthDate.Time(), matches[j].BirthDate.Time()
		return birthCode(bi.Month(), bi.Day()) < birthCode(bj.Month(), bj.Day())
	})

	return matches, nil
}
