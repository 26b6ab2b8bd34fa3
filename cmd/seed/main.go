// main.go
//
// Seeds the database with a starter parish, communities, users, parishioners,
// and contributions. Safe to run more than once.

package main

import (
	"errors"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ecclesiabr/ecclesia/internal/config"
	"github.com/ecclesiabr/ecclesia/internal/database"
	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/ecclesiabr/ecclesia/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Println("Seed complete")
	log.Println("Admin login: admin@ecclesia.com / Admin123!")
	log.Println("Operator login: operador@ecclesia.com / Opera123!")
}

func seed(db *gorm.DB) error {
	parish, err := ensureParish(db, "Paróquia São João")
	if err != nil {
		return err
	}

	saoPedro, err := ensureCommunity(db, parish.ID, "Comunidade São Pedro")
	if err != nil {
		return err
	}
	santaMaria, err := ensureCommunity(db, parish.ID, "Comunidade Santa Maria")
	if err != nil {
		return err
	}

	if err := ensureUser(db, "Administrador do Sistema", "admin@ecclesia.com", "Admin123!", models.RoleAdmin); err != nil {
		return err
	}
	if err := ensureUser(db, "Operador do Sistema", "operador@ecclesia.com", "Opera123!", models.RoleOperator); err != nil {
		return err
	}

	today := time.Now()
	thisMonth := today.Month()
	birth := func(year int, month time.Month, day int) *models.Date {
		d := models.NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		return &d
	}

	parishioners := []models.Parishioner{
		{
			Name:        "João da Silva",
			CommunityID: saoPedro.ID,
			NationalID:  strPtr("123.456.789-01"),
			Phone:       strPtr("(11) 98765-4321"),
			Email:       strPtr("joao.silva@email.com"),
			BirthDate:   birth(1975, thisMonth, 10),
			Address:     strPtr("Rua das Flores, 123"),
			Active:      true,
		},
		{
			Name:        "Maria Santos",
			CommunityID: saoPedro.ID,
			NationalID:  strPtr("234.567.890-12"),
			Phone:       strPtr("(11) 98765-4322"),
			Email:       strPtr("maria.santos@email.com"),
			BirthDate:   birth(1980, thisMonth, 20),
			Address:     strPtr("Av. Principal, 456"),
			Active:      true,
		},
		{
			Name:        "Pedro Oliveira",
			CommunityID: santaMaria.ID,
			NationalID:  strPtr("345.678.901-23"),
			Phone:       strPtr("(11) 98765-4323"),
			Email:       strPtr("pedro.oliveira@email.com"),
			BirthDate:   birth(1965, time.March, 15),
			Address:     strPtr("Rua dos Pinheiros, 789"),
			Active:      true,
		},
		{
			Name:        "Ana Costa",
			CommunityID: santaMaria.ID,
			Phone:       strPtr("(11) 98765-4324"),
			BirthDate:   birth(1990, thisMonth, 5),
			Active:      true,
		},
		{
			Name:        "Carlos Mendes",
			CommunityID: saoPedro.ID,
			NationalID:  strPtr("456.789.012-34"),
			Phone:       strPtr("(11) 98765-4325"),
			Email:       strPtr("carlos.mendes@email.com"),
			BirthDate:   birth(1955, time.June, 25),
			Address:     strPtr("Praça Central, 101"),
			Active:      false,
		},
	}

	seeded := make([]models.Parishioner, 0, len(parishioners))
	for _, p := range parishioners {
		existing, err := findParishioner(db, p)
		if err != nil {
			return err
		}
		if existing == nil {
			if err := db.Create(&p).Error; err != nil {
				return err
			}
			seeded = append(seeded, p)
		} else {
			seeded = append(seeded, *existing)
		}
	}

	var contributionCount int64
	if err := db.Model(&models.Contribution{}).Count(&contributionCount).Error; err != nil {
		return err
	}
	if contributionCount > 0 {
		log.Printf("Contributions already present (%d rows), skipping", contributionCount)
		return nil
	}

	daysAgo := func(n int) models.Date {
		return models.NewDate(today.AddDate(0, 0, -n))
	}
	monthOf := func(n int) *string {
		s := today.AddDate(0, 0, -n).Format("2006-01")
		return &s
	}

	contributions := []models.Contribution{
		{ParishionerID: &seeded[0].ID, CommunityID: saoPedro.ID, Type: models.Tithe, Amount: decimal.NewFromInt(150), ContributionDate: daysAgo(30), PaymentMethod: strPtr("PIX"), ReferenceMonth: monthOf(30)},
		{ParishionerID: &seeded[0].ID, CommunityID: saoPedro.ID, Type: models.Tithe, Amount: decimal.NewFromInt(150), ContributionDate: daysAgo(60), PaymentMethod: strPtr("PIX"), ReferenceMonth: monthOf(60)},
		{ParishionerID: &seeded[1].ID, CommunityID: saoPedro.ID, Type: models.Tithe, Amount: decimal.NewFromInt(200), ContributionDate: daysAgo(15), PaymentMethod: strPtr("Dinheiro"), ReferenceMonth: monthOf(0)},
		{ParishionerID: &seeded[1].ID, CommunityID: saoPedro.ID, Type: models.Offering, Amount: decimal.NewFromInt(50), ContributionDate: daysAgo(7), PaymentMethod: strPtr("Dinheiro")},
		{ParishionerID: &seeded[2].ID, CommunityID: santaMaria.ID, Type: models.Tithe, Amount: decimal.NewFromInt(300), ContributionDate: daysAgo(20), PaymentMethod: strPtr("Transferência"), ReferenceMonth: monthOf(0)},
		{ParishionerID: &seeded[2].ID, CommunityID: santaMaria.ID, Type: models.Offering, Amount: decimal.NewFromInt(100), ContributionDate: daysAgo(10), PaymentMethod: strPtr("PIX")},
		{ParishionerID: &seeded[3].ID, CommunityID: santaMaria.ID, Type: models.Tithe, Amount: decimal.NewFromInt(100), ContributionDate: daysAgo(5), PaymentMethod: strPtr("Dinheiro"), ReferenceMonth: monthOf(0)},
		{CommunityID: saoPedro.ID, Type: models.Offering, Amount: decimal.NewFromInt(25), ContributionDate: daysAgo(3), PaymentMethod: strPtr("Dinheiro")},
		{CommunityID: santaMaria.ID, Type: models.Offering, Amount: decimal.NewFromInt(30), ContributionDate: daysAgo(1), PaymentMethod: strPtr("Dinheiro")},
		{ParishionerID: &seeded[0].ID, CommunityID: saoPedro.ID, Type: models.Offering, Amount: decimal.NewFromInt(75), ContributionDate: daysAgo(0), PaymentMethod: strPtr("PIX")},
	}

	for i := range contributions {
		if err := db.Create(&contributions[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("Created %d contributions", len(contributions))
	return nil
}

func ensureParish(db *gorm.DB, name string) (*models.Parish, error) {
	var parish models.Parish
	err := db.Where("name = ?", name).First(&parish).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		parish = models.Parish{Name: name}
		err = db.Create(&parish).Error
	}
	if err != nil {
		return nil, err
	}
	return &parish, nil
}

func ensureCommunity(db *gorm.DB, parishID uint, name string) (*models.Community, error) {
	var community models.Community
	err := db.Where("name = ? AND parish_id = ?", name, parishID).First(&community).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		community = models.Community{Name: name, ParishID: parishID}
		err = db.Create(&community).Error
	}
	if err != nil {
		return nil, err
	}
	return &community, nil
}

func ensureUser(db *gorm.DB, name, email, password string, role models.Role) error {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}).Error
}

// findParishioner matches by national ID when present, falling back to name.
func findParishioner(db *gorm.DB, p models.Parishioner) (*models.Parishioner, error) {
	var existing models.Parishioner
	query := db.Where("name = ?", p.Name)
	if p.NationalID != nil {
		query = db.Where("national_id = ?", *p.NationalID)
	}
	err := query.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if p.NationalID == nil {
			return nil, nil
		}
		err = db.Where("name = ?", p.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
	}
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func strPtr(s string) *string { return &s }
