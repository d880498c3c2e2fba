package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/sou9na-labs/soukseed/internal/models"
	"github.com/sou9na-labs/soukseed/internal/store"
)

const (
	userBatchSize = 100

	// Share of non-admin users that are producers; the rest are buyers.
	producerShare = 0.2

	// All generated users share this password so demo logins are easy.
	seedPassword = "TestPass123!"

	adminEmail = "admin@sou9na.ma"
	adminPhone = "212612000000"
)

// seedUsers generates one admin plus a producer/buyer population and
// inserts them in batches. Returns the assigned IDs in insertion order.
func (s *Seeder) seedUsers(ctx context.Context, count int) ([]primitive.ObjectID, error) {
	color.Cyan("👥 Creating %d users...", count)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := buildUsers(s.gen, count, string(hash))

	var ids []primitive.ObjectID
	batches := (len(users) + userBatchSize - 1) / userBatchSize
	for start := 0; start < len(users); start += userBatchSize {
		end := start + userBatchSize
		if end > len(users) {
			end = len(users)
		}
		docs := make([]interface{}, 0, end-start)
		for _, u := range users[start:end] {
			docs = append(docs, u)
		}
		batchIDs, err := s.store.InsertMany(ctx, store.Users, docs)
		if err != nil {
			return nil, err
		}
		ids = append(ids, batchIDs...)
		color.Green("   ✓ Inserted batch %d/%d", start/userBatchSize+1, batches)
	}

	producers, buyers := splitCounts(count)
	color.Green("✅ Created %d users (%d producers, %d buyers, 1 admin)\n", len(users), producers, buyers)
	return ids, nil
}

// splitCounts derives the producer/buyer split for a total user count that
// includes the single admin.
func splitCounts(total int) (producers, buyers int) {
	producers = int(float64(total-1) * producerShare)
	buyers = total - 1 - producers
	return producers, buyers
}

func buildUsers(g *DataGenerator, count int, passwordHash string) []models.User {
	now := time.Now()
	users := make([]models.User, 0, count)

	// Reserve the admin identifiers so random draws cannot collide.
	g.usedEmails[adminEmail] = struct{}{}
	g.usedPhones[adminPhone] = struct{}{}

	users = append(users, models.User{
		Email:        adminEmail,
		Phone:        adminPhone,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	producers, buyers := splitCounts(count)

	appendActors := func(role models.Role, n int) {
		for i := 0; i < n; i++ {
			first, last := g.FullName()
			users = append(users, models.User{
				Email:        g.UniqueEmail(first, last, i),
				Phone:        g.UniquePhone(),
				PasswordHash: passwordHash,
				Role:         role,
				CreatedAt:    g.PastTime(2),
				UpdatedAt:    now,
			})
		}
	}

	appendActors(models.RoleProducer, producers)
	appendActors(models.RoleBuyer, buyers)

	return users
}
