package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sou9na-labs/soukseed/internal/models"
	"github.com/sou9na-labs/soukseed/internal/store"
)

const productBatchSize = 200

// seedProducts generates perCoop products for every cooperative. Each
// cooperative is read back from storage; IDs that no longer resolve are
// skipped with a warning instead of aborting the stage.
func (s *Seeder) seedProducts(ctx context.Context, coopIDs []primitive.ObjectID, perCoop int) ([]primitive.ObjectID, error) {
	color.Cyan("📦 Creating products (%d per cooperative)...", perCoop)

	var all []models.Product
	for _, coopID := range coopIDs {
		var coop models.Cooperative
		err := s.store.Collection(store.Cooperatives).FindOne(ctx, bson.M{"_id": coopID}).Decode(&coop)
		if errors.Is(err, mongo.ErrNoDocuments) {
			color.Yellow("   ⚠️  Cooperative %s not found, skipping", coopID.Hex())
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load cooperative %s: %w", coopID.Hex(), err)
		}

		all = append(all, buildProducts(s.gen, coop, perCoop)...)
	}

	var ids []primitive.ObjectID
	batches := (len(all) + productBatchSize - 1) / productBatchSize
	for start := 0; start < len(all); start += productBatchSize {
		end := start + productBatchSize
		if end > len(all) {
			end = len(all)
		}
		docs := make([]interface{}, 0, end-start)
		for _, p := range all[start:end] {
			docs = append(docs, p)
		}
		batchIDs, err := s.store.InsertMany(ctx, store.Products, docs)
		if err != nil {
			return nil, err
		}
		ids = append(ids, batchIDs...)
		color.Green("   ✓ Inserted batch %d/%d", start/productBatchSize+1, batches)
	}

	color.Green("✅ Created %d products\n", len(all))
	return ids, nil
}

// inferCategory matches the cooperative name against the priority-ordered
// category table: the first category owning a keyword that contains a
// word of the name wins. Names matching nothing get a uniformly random
// category.
func inferCategory(g *DataGenerator, coopName string) Category {
	lowered := strings.ToLower(coopName)
	for _, word := range strings.Fields(lowered) {
		for _, cat := range productCategories {
			for _, kw := range cat.Keywords {
				if strings.Contains(strings.ToLower(kw), word) {
					return cat
				}
			}
		}
	}
	return productCategories[g.rand.Intn(len(productCategories))]
}

func buildProducts(g *DataGenerator, coop models.Cooperative, count int) []models.Product {
	cat := inferCategory(g, coop.Name)

	now := time.Now()
	products := make([]models.Product, 0, count)
	for i := 0; i < count; i++ {
		name := productName(g, cat)
		price, unit := priceAndUnit(g, cat)
		images := productImages(g, cat, name)

		products = append(products, models.Product{
			CooperativeID: coop.ID,
			Name:          name,
			Description:   fmt.Sprintf("Premium quality %s from %s. Sustainably sourced and certified organic.", name, coop.Region),
			Price:         price,
			Unit:          unit,
			StockQuantity: g.IntBetween(10, 500),
			ImageURL:      images[0],
			ImageURLs:     images,
			DeletedAt:     nil,
			CreatedAt:     g.PastTime(1),
			UpdatedAt:     now,
		})
	}
	return products
}

func productName(g *DataGenerator, cat Category) string {
	if len(cat.Products) == 0 {
		return fmt.Sprintf("%s Product", cat.Name)
	}
	return cat.Products[g.rand.Intn(len(cat.Products))]
}

// priceAndUnit applies the per-category heuristic table; categories
// without dedicated pricing fall back to the generic range and a random
// unit.
func priceAndUnit(g *DataGenerator, cat Category) (float64, string) {
	if cat.PriceMax > 0 {
		return round2(g.Between(cat.PriceMin, cat.PriceMax)), cat.Unit
	}
	unit := genericUnits[g.rand.Intn(len(genericUnits))]
	return round2(g.Between(genericPriceMin, genericPriceMax)), unit
}
