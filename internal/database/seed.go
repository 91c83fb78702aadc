package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/models"
)

// SeedContent inserts the initial catalog rows when their tables are
// empty: the three fixed pricing tiers, the default site content
// strings, the service and subsidiary listings, and the social links.
// Seeding is idempotent per table.
func SeedContent(db *gorm.DB) error {
	if err := seedPricingTiers(db); err != nil {
		return err
	}
	if err := seedSiteContent(db); err != nil {
		return err
	}
	if err := seedServices(db); err != nil {
		return err
	}
	if err := seedSubsidiaries(db); err != nil {
		return err
	}
	return seedSocialLinks(db)
}

// SeedAdmin bootstraps the first admin identity and its role assignment
// when no users exist yet. It is a no-op when email or password is empty
// or when any user already exists.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	user := models.User{Email: email, Name: "Administrator"}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	if err := db.Create(&models.UserRole{UserID: user.ID, Role: models.RoleAdmin}).Error; err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"email": email}).Info("Bootstrap admin created")
	return nil
}

func seedPricingTiers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.PricingTier{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tiers := []models.PricingTier{
		{
			Tier:        models.TierFoundation,
			Name:        "Foundation",
			Description: "Essential digital presence and brand positioning for businesses ready to establish their online foundation.",
			Price:       "Starting from $2,500/mo",
			Features: []string{
				"Brand identity & guidelines",
				"Custom website design",
				"Basic SEO optimization",
				"Monthly performance report",
				"Email support",
			},
			TargetAudience: "Startups and early-stage businesses",
			DisplayOrder:   1,
			IsVisible:      true,
		},
		{
			Tier:        models.TierGrowth,
			Name:        "Growth",
			Description: "Comprehensive digital strategy and execution for businesses ready to scale their market presence and revenue.",
			Price:       "Starting from $5,000/mo",
			Features: []string{
				"Everything in Foundation",
				"Paid advertising management",
				"Social media management",
				"Advanced analytics",
				"Bi-weekly strategy calls",
				"Priority support",
			},
			TargetAudience: "Established businesses scaling operations",
			DisplayOrder:   2,
			IsVisible:      true,
		},
		{
			Tier:        models.TierPartnership,
			Name:        "Partnership",
			Description: "Full-service digital partnership with dedicated team resources, strategic advisory, and hands-on growth execution.",
			Price:       "Custom pricing",
			Features: []string{
				"Everything in Growth",
				"Dedicated account team",
				"Custom integrations",
				"Weekly strategy sessions",
				"24/7 priority support",
				"Performance guarantees",
			},
			TargetAudience: "Enterprise and high-growth companies",
			DisplayOrder:   3,
			IsVisible:      true,
		},
	}

	for i := range tiers {
		if err := db.Create(&tiers[i]).Error; err != nil {
			return err
		}
	}
	log.Info("Pricing tiers seeded")
	return nil
}

func seedSiteContent(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.SiteContentEntry{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	entries := []models.SiteContentEntry{
		{Key: "contact_email", Content: "hello@forteraglobalgroup.com", Label: "Contact Email", Category: "contact"},
		{Key: "contact_phone", Content: "+234 800 000 0000", Label: "Contact Phone", Category: "contact"},
		{Key: "contact_whatsapp", Content: "+2348000000000", Label: "WhatsApp Number", Category: "contact"},
		{Key: "contact_address_city", Content: "Lagos", Label: "City", Category: "contact"},
		{Key: "contact_address_state", Content: "Lagos State", Label: "State", Category: "contact"},
		{Key: "contact_address_country", Content: "Nigeria", Label: "Country", Category: "contact"},
		{Key: "home_hero_title", Content: "Building the Future", Label: "Home Hero Title", Category: "home"},
		{Key: "home_hero_description", Content: "A multi-industry holding company building, funding, and scaling structured businesses for long-term impact.", Label: "Home Hero Description", Category: "home"},
		{Key: "digital_hero_title", Content: "Data-Driven Growth Partner", Label: "Digital Hero Title", Category: "digital"},
		{Key: "digital_hero_description", Content: "A data-driven growth and digital strategy partner for fintech, real estate, and structured SMEs.", Label: "Digital Hero Description", Category: "digital"},
	}

	for i := range entries {
		if err := db.Create(&entries[i]).Error; err != nil {
			return err
		}
	}
	log.Info("Site content seeded")
	return nil
}

func seedServices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	services := []models.Service{
		{Title: "Branding & Visual Identity", Description: "Brand systems, guidelines, and positioning that make structured businesses memorable.", Icon: "Palette", DisplayOrder: 1, IsVisible: true},
		{Title: "Website & Digital Systems", Description: "Custom websites and digital infrastructure built for conversion and scale.", Icon: "Globe", DisplayOrder: 2, IsVisible: true},
		{Title: "SEO & Performance", Description: "Search visibility and site performance work that compounds over time.", Icon: "TrendingUp", DisplayOrder: 3, IsVisible: true},
		{Title: "Paid Ads & Growth Marketing", Description: "Managed acquisition campaigns across search and social channels.", Icon: "Target", DisplayOrder: 4, IsVisible: true},
		{Title: "Social Media Management", Description: "Editorial planning, publishing, and community management.", Icon: "Users", DisplayOrder: 5, IsVisible: true},
		{Title: "Analytics & Reporting", Description: "Measurement, dashboards, and monthly reporting on what moved.", Icon: "BarChart3", DisplayOrder: 6, IsVisible: true},
		{Title: "Automation & Scaling", Description: "Workflow automation and systems that let lean teams operate at scale.", Icon: "Zap", DisplayOrder: 7, IsVisible: true},
	}

	for i := range services {
		if err := db.Create(&services[i]).Error; err != nil {
			return err
		}
	}
	log.Info("Services seeded")
	return nil
}

func seedSubsidiaries(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Subsidiary{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	subsidiaries := []models.Subsidiary{
		{Name: "Fortera Digital", Description: "Data-driven growth and digital strategy partner.", Icon: "Monitor", Status: models.SubsidiaryStatusActive, DisplayOrder: 1, IsVisible: true},
		{Name: "Fortera Real Estate", Description: "Structured property development and management.", Icon: "Building2", Status: models.SubsidiaryStatusUpcoming, DisplayOrder: 2, IsVisible: true},
		{Name: "Fortera Technology", Description: "Software products for structured businesses.", Icon: "Cpu", Status: models.SubsidiaryStatusPlanned, DisplayOrder: 3, IsVisible: true},
		{Name: "Fortera Energy", Description: "Clean energy infrastructure investments.", Icon: "Zap", Status: models.SubsidiaryStatusPlanned, DisplayOrder: 4, IsVisible: true},
		{Name: "Fortera Finance", Description: "Capital and financial services for SMEs.", Icon: "Wallet", Status: models.SubsidiaryStatusPlanned, DisplayOrder: 5, IsVisible: true},
		{Name: "Fortera Health", Description: "Healthcare delivery and wellness ventures.", Icon: "HeartPulse", Status: models.SubsidiaryStatusPlanned, DisplayOrder: 6, IsVisible: true},
	}

	for i := range subsidiaries {
		if err := db.Create(&subsidiaries[i]).Error; err != nil {
			return err
		}
	}
	log.Info("Subsidiaries seeded")
	return nil
}

func seedSocialLinks(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.SocialLink{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	links := []models.SocialLink{
		{Platform: "Twitter", URL: "https://twitter.com/forteraglobal", Icon: "twitter", DisplayOrder: 1, IsVisible: true},
		{Platform: "LinkedIn", URL: "https://linkedin.com/company/forteraglobalgroup", Icon: "linkedin", DisplayOrder: 2, IsVisible: true},
		{Platform: "Instagram", URL: "https://instagram.com/forteraglobalgroup", Icon: "instagram", DisplayOrder: 3, IsVisible: true},
		{Platform: "Facebook", URL: "https://facebook.com/forteraglobalgroup", Icon: "facebook", DisplayOrder: 4, IsVisible: true},
		{Platform: "YouTube", URL: "https://youtube.com/@forteraglobalgroup", Icon: "youtube", DisplayOrder: 5, IsVisible: true},
	}

	for i := range links {
		if err := db.Create(&links[i]).Error; err != nil {
			return err
		}
	}
	log.Info("Social links seeded")
	return nil
}
