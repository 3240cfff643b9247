package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"wooders/internal/database"
	"wooders/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("wooders.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Admin{},
		&domain.Order{},
		&domain.Testimonial{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM testimonials")
	db.Exec("DELETE FROM admins")

	// ================== ADMIN ==================
	log.Println("Creating admin...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.Admin{
		Email:        "admin@woodersrwanda.rw",
		PasswordHash: string(adminHash),
		Name:         "Wooders Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@woodersrwanda.rw / admin123")

	// ================== ORDERS ==================
	log.Println("Creating orders...")
	customers := []struct {
		name, email, phone, address string
	}{
		{"Aline Uwase", "aline@example.rw", "+250 788 111 222", "KG 5 Ave, Kigali"},
		{"Jean Habimana", "jean@example.rw", "+250 788 333 444", "Huye, Southern Province"},
		{"Grace Mukamana", "grace@example.rw", "+250 788 555 666", "Musanze, Northern Province"},
	}
	products := []domain.OrderItem{
		{ProductID: "prod-chair", Name: "Carved Dining Chair", Quantity: 1, Price: 45000},
		{ProductID: "prod-bowl", Name: "Hand-Turned Salad Bowl", Quantity: 2, Price: 12000},
		{ProductID: "prod-table", Name: "Coffee Table", Quantity: 1, Price: 80000},
		{ProductID: "prod-stool", Name: "Milking Stool", Quantity: 3, Price: 8000},
	}
	statuses := []domain.OrderStatus{
		domain.OrderPending,
		domain.OrderProcessing,
		domain.OrderShipped,
		domain.OrderDelivered,
		domain.OrderCancelled,
	}

	for i := 0; i < 8; i++ {
		customer := customers[i%len(customers)]
		item := products[rand.Intn(len(products))]

		o := domain.Order{
			OrderNumber:     fmt.Sprintf("ORD-%d-SEED%05d", time.Now().UnixMilli()-int64(i)*86400000, i),
			CustomerName:    customer.name,
			CustomerEmail:   customer.email,
			CustomerPhone:   customer.phone,
			Items:           []domain.OrderItem{item},
			TotalAmount:     float64(item.Quantity) * item.Price,
			Status:          statuses[i%len(statuses)],
			ShippingAddress: customer.address,
		}
		db.Create(&o)
	}

	// ================== TESTIMONIALS ==================
	log.Println("Creating testimonials...")
	testimonials := []domain.Testimonial{
		{
			Name:     "Aline Uwase",
			Email:    "aline@example.rw",
			Feedback: "The dining chairs are beautiful, solid work and fast delivery.",
			Rating:   5,
			Status:   domain.TestimonialApproved,
		},
		{
			Name:     "Jean Habimana",
			Email:    "jean@example.rw",
			Feedback: "Lovely bowl, exactly as pictured.",
			Rating:   4,
			Status:   domain.TestimonialApproved,
		},
		{
			Name:     "Grace Mukamana",
			Email:    "grace@example.rw",
			Feedback: "Still waiting on my order update.",
			Rating:   3,
			Status:   domain.TestimonialPending,
		},
		{
			Name:     "Test User",
			Email:    "spam@example.com",
			Feedback: "Buy cheap watches online!!!",
			Rating:   1,
			Status:   domain.TestimonialRejected,
		},
	}
	for i := range testimonials {
		db.Create(&testimonials[i])
	}

	log.Println("Seed completed!")
	log.Println("Admin account: admin@woodersrwanda.rw / admin123")
}
