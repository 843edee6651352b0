package main

import (
	"log"
	"os"
	"time"

	"estateoffice/internal/database"
	"estateoffice/internal/domain"
	"estateoffice/internal/pkg/utils"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Property{},
		&domain.ContactLead{},
		&domain.InvestmentOffer{},
		&domain.BlogPost{},
		&domain.Testimonial{},
		&domain.Client{},
		&domain.Task{},
		&domain.Notification{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM tasks")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM testimonials")
	db.Exec("DELETE FROM blog_posts")
	db.Exec("DELETE FROM investment_offers")
	db.Exec("DELETE FROM contact_leads")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@estateoffice.ma",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Administrateur",
		IsActive:     true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@estateoffice.ma / admin123")

	editorHash, _ := bcrypt.GenerateFromPassword([]byte("editor123"), bcrypt.DefaultCost)
	editor := domain.User{
		Email:        "editor@estateoffice.ma",
		PasswordHash: string(editorHash),
		Role:         domain.RoleEditor,
		Name:         "Rédacteur",
		IsActive:     true,
	}
	db.Create(&editor)

	agentHash, _ := bcrypt.GenerateFromPassword([]byte("agent123"), bcrypt.DefaultCost)
	agent := domain.User{
		Email:        "agent@estateoffice.ma",
		PasswordHash: string(agentHash),
		Role:         domain.RoleAgent,
		Name:         "Agent commercial",
		Phone:        "+212612345678",
		IsActive:     true,
	}
	db.Create(&agent)

	log.Println("Creating properties...")

	properties := []domain.Property{
		{
			Title:       "Appartement vue mer à Casablanca",
			Slug:        "appartement-vue-mer-casablanca",
			Description: "Appartement de standing avec vue imprenable sur la corniche.",
			City:        "Casablanca",
			Address:     "Boulevard de la Corniche",
			Price:       2400000,
			Currency:    "MAD",
			Surface:     120,
			Rooms:       3,
			Status:      domain.PropertyPublished,
			Photos:      utils.PhotosToString([]string{"/uploads/casa-corniche-1.jpg"}),
			CreatedBy:   admin.ID,
		},
		{
			Title:       "Villa avec piscine à Marrakech",
			Slug:        "villa-piscine-marrakech",
			Description: "Villa contemporaine dans la palmeraie, piscine privée.",
			City:        "Marrakech",
			Address:     "Route de la Palmeraie",
			Price:       5800000,
			Currency:    "MAD",
			Surface:     340,
			Rooms:       5,
			Status:      domain.PropertyPublished,
			Photos:      utils.PhotosToString([]string{"/uploads/marrakech-villa-1.jpg", "/uploads/marrakech-villa-2.jpg"}),
			CreatedBy:   admin.ID,
		},
		{
			Title:       "Riad à rénover dans la médina de Fès",
			Slug:        "riad-medina-fes",
			Description: "Riad traditionnel, fort potentiel locatif après rénovation.",
			City:        "Fès",
			Address:     "Médina, quartier Batha",
			Price:       1100000,
			Currency:    "MAD",
			Surface:     210,
			Rooms:       6,
			Status:      domain.PropertyDraft,
			CreatedBy:   editor.ID,
		},
	}
	for i := range properties {
		db.Create(&properties[i])
	}

	log.Println("Creating blog posts...")

	now := time.Now()
	posts := []domain.BlogPost{
		{
			Title:       "Investir dans l'immobilier au Maroc en 2026",
			Slug:        "investir-immobilier-maroc-2026",
			Excerpt:     "Pourquoi le marché marocain attire toujours les investisseurs.",
			Body:        "Le marché marocain reste porteur pour les investisseurs étrangers...",
			AuthorID:    editor.ID,
			Published:   true,
			PublishedAt: &now,
		},
		{
			Title:    "Guide du financement participatif immobilier",
			Slug:     "guide-financement-participatif",
			Body:     "Brouillon en cours de rédaction.",
			AuthorID: editor.ID,
		},
	}
	for i := range posts {
		db.Create(&posts[i])
	}

	log.Println("Creating testimonials...")

	testimonials := []domain.Testimonial{
		{
			AuthorName: "Karim B.",
			Email:      "karim@example.com",
			Rating:     5,
			Message:    "Accompagnement impeccable du premier contact à la signature.",
			Status:     domain.TestimonialApproved,
		},
		{
			AuthorName: "Sofia L.",
			Rating:     4,
			Message:    "Équipe réactive, je recommande pour un premier investissement.",
			Status:     domain.TestimonialPending,
		},
	}
	for i := range testimonials {
		db.Create(&testimonials[i])
	}

	log.Println("Creating sample lead and task...")

	lead := domain.ContactLead{
		Name:         "Yassine El Amrani",
		Email:        "yassine@example.com",
		Phone:        "+212661234567",
		CountryISO2:  "MA",
		Message:      "Je souhaite une estimation de mon appartement à Rabat.",
		ServiceType:  domain.ServiceEstimation,
		ConsentGiven: true,
		Status:       domain.LeadNew,
	}
	db.Create(&lead)

	task := domain.Task{
		Title:      "Rappeler Yassine pour l'estimation",
		Details:    "Préparer les comparables du quartier Agdal.",
		AssignedTo: agent.ID,
		DueAt:      now.Add(48 * time.Hour),
		Status:     domain.TaskOpen,
	}
	db.Create(&task)

	log.Println("Seed completed")
}
