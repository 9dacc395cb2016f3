package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"studio-booking-backend/internal/auth"
	"studio-booking-backend/internal/config"
	"studio-booking-backend/internal/database"
	"studio-booking-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TenantData struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

type UserData struct {
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Phone     string `yaml:"phone,omitempty"`
	Password  string `yaml:"password,omitempty"`

	// Memberships by tenant slug; the first one becomes the active tenant
	Memberships []MembershipData `yaml:"memberships,omitempty"`
}

type MembershipData struct {
	TenantSlug string `yaml:"tenant_slug"`
	Role       string `yaml:"role"`
}

type BookingData struct {
	TenantSlug    string    `yaml:"tenant_slug"`
	CustomerName  string    `yaml:"customer_name"`
	CustomerEmail string    `yaml:"customer_email,omitempty"`
	StartsAt      time.Time `yaml:"starts_at"`
	EndsAt        time.Time `yaml:"ends_at"`
	Status        string    `yaml:"status,omitempty"`
	CreatedBy     string    `yaml:"created_by"`
}

type SeedFile struct {
	Tenants  []TenantData  `yaml:"tenants"`
	Users    []UserData    `yaml:"users"`
	Bookings []BookingData `yaml:"bookings"`
}

func main() {
	log.Println("Loading initial data from YAML...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	path := "scripts/data/seed.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := loadSeedFile(db, path); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFile(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	tenantsBySlug := make(map[string]*models.Tenant)
	for _, data := range seed.Tenants {
		tenant, err := upsertTenant(db, data)
		if err != nil {
			return fmt.Errorf("tenant %q: %w", data.Slug, err)
		}
		tenantsBySlug[tenant.Slug] = tenant
	}
	log.Printf("Tenants: %d", len(tenantsBySlug))

	rolesByName := make(map[string]*models.Role)
	var roles []models.Role
	if err := db.Find(&roles).Error; err != nil {
		return fmt.Errorf("load roles: %w", err)
	}
	for i := range roles {
		rolesByName[string(roles[i].Name)] = &roles[i]
	}

	usersByEmail := make(map[string]*models.Profile)
	for _, data := range seed.Users {
		profile, err := upsertUser(db, data, tenantsBySlug, rolesByName)
		if err != nil {
			return fmt.Errorf("user %q: %w", data.Email, err)
		}
		usersByEmail[profile.Email] = profile
	}
	log.Printf("Users: %d", len(usersByEmail))

	created := 0
	for _, data := range seed.Bookings {
		ok, err := createBooking(db, data, tenantsBySlug, usersByEmail)
		if err != nil {
			return fmt.Errorf("booking %q: %w", data.CustomerName, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("Bookings: %d", created)

	return nil
}

func upsertTenant(db *gorm.DB, data TenantData) (*models.Tenant, error) {
	var tenant models.Tenant
	err := db.First(&tenant, "slug = ?", data.Slug).Error
	if err == nil {
		return &tenant, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	tenant = models.Tenant{Name: data.Name, Slug: data.Slug}
	if err := db.Create(&tenant).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func upsertUser(db *gorm.DB, data UserData, tenants map[string]*models.Tenant, roles map[string]*models.Role) (*models.Profile, error) {
	email := strings.ToLower(data.Email)

	var profile models.Profile
	err := db.First(&profile, "email = ?", email).Error
	if err == gorm.ErrRecordNotFound {
		profile = models.Profile{
			Email:     email,
			FirstName: data.FirstName,
			LastName:  data.LastName,
			Phone:     data.Phone,
		}
		if data.Password != "" {
			hash, err := auth.HashPassword(data.Password)
			if err != nil {
				return nil, err
			}
			profile.PasswordHash = hash
		}
		if err := db.Create(&profile).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	for i, m := range data.Memberships {
		tenant, ok := tenants[m.TenantSlug]
		if !ok {
			return nil, fmt.Errorf("unknown tenant slug %q", m.TenantSlug)
		}
		role, ok := roles[m.Role]
		if !ok {
			return nil, fmt.Errorf("unknown role %q", m.Role)
		}

		var count int64
		if err := db.Model(&models.TenantMember{}).
			Where("user_id = ? AND tenant_id = ?", profile.ID, tenant.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			member := models.TenantMember{UserID: profile.ID, TenantID: tenant.ID, RoleID: role.ID}
			if err := db.Create(&member).Error; err != nil {
				return nil, err
			}
		}

		if i == 0 && profile.ActiveTenantID == nil {
			if err := db.Model(&models.Profile{}).Where("id = ?", profile.ID).Updates(map[string]interface{}{
				"active_tenant_id": tenant.ID,
				"active_role_id":   role.ID,
			}).Error; err != nil {
				return nil, err
			}
			profile.ActiveTenantID = &tenant.ID
			profile.ActiveRoleID = &role.ID
		}
	}

	return &profile, nil
}

func createBooking(db *gorm.DB, data BookingData, tenants map[string]*models.Tenant, users map[string]*models.Profile) (bool, error) {
	tenant, ok := tenants[data.TenantSlug]
	if !ok {
		return false, fmt.Errorf("unknown tenant slug %q", data.TenantSlug)
	}
	creator, ok := users[strings.ToLower(data.CreatedBy)]
	if !ok {
		return false, fmt.Errorf("unknown creator %q", data.CreatedBy)
	}

	var count int64
	if err := db.Model(&models.Booking{}).
		Where("tenant_id = ? AND customer_name = ? AND starts_at = ?", tenant.ID, data.CustomerName, data.StartsAt).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	status := models.BookingStatusConfirmed
	if data.Status != "" {
		status = models.BookingStatus(data.Status)
		if !status.IsValid() {
			return false, fmt.Errorf("invalid status %q", data.Status)
		}
	}

	booking := models.Booking{
		TenantID:      tenant.ID,
		CustomerName:  data.CustomerName,
		CustomerEmail: data.CustomerEmail,
		StartsAt:      data.StartsAt,
		EndsAt:        data.EndsAt,
		Status:        status,
		CreatedBy:     creator.ID,
	}
	if err := db.Create(&booking).Error; err != nil {
		return false, err
	}
	return true, nil
}
