package seeder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sou9na-labs/soukseed/internal/models"
	"github.com/sou9na-labs/soukseed/internal/store"
)

// seedCooperatives creates up to count cooperatives, each owned by a
// distinct producer read back from storage. When fewer producers exist
// than requested the count is capped with a warning.
func (s *Seeder) seedCooperatives(ctx context.Context, count int) ([]primitive.ObjectID, error) {
	color.Cyan("🏪 Creating %d cooperatives...", count)

	producers, err := s.findProducerIDs(ctx, count)
	if err != nil {
		return nil, err
	}

	coops, capped := buildCooperatives(s.gen, producers, count)
	if capped {
		color.Yellow("⚠️  Only %d producers available, creating %d cooperatives", len(producers), len(coops))
	}

	docs := make([]interface{}, 0, len(coops))
	regions := make(map[string]struct{})
	for _, c := range coops {
		docs = append(docs, c)
		regions[c.Region] = struct{}{}
	}

	ids, err := s.store.InsertMany(ctx, store.Cooperatives, docs)
	if err != nil {
		return nil, err
	}

	color.Green("✅ Created %d cooperatives across %d regions\n", len(coops), len(regions))
	return ids, nil
}

func (s *Seeder) findProducerIDs(ctx context.Context, limit int) ([]primitive.ObjectID, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetLimit(int64(limit))

	cursor, err := s.store.Collection(store.Users).Find(ctx, bson.M{"role": models.RoleProducer}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query producers: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []primitive.ObjectID
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}

// buildCooperatives assigns each cooperative a distinct producer by
// shuffling the producer pool once and consuming it in order. The second
// return value reports whether the requested count had to be capped.
func buildCooperatives(g *DataGenerator, producers []primitive.ObjectID, count int) ([]models.Cooperative, bool) {
	capped := false
	if len(producers) < count {
		count = len(producers)
		capped = true
	}

	owners := make([]primitive.ObjectID, len(producers))
	copy(owners, producers)
	g.rand.Shuffle(len(owners), func(i, j int) {
		owners[i], owners[j] = owners[j], owners[i]
	})

	now := time.Now()
	coops := make([]models.Cooperative, 0, count)

	for i := 0; i < count; i++ {
		region := moroccanRegions[g.rand.Intn(len(moroccanRegions))]
		city := region.Cities[g.rand.Intn(len(region.Cities))]

		coops = append(coops, models.Cooperative{
			Name:               cooperativeName(g, region, city),
			UserID:             owners[i],
			RegistrationNumber: registrationNumber(g, region, i+1),
			Region:             region.Name,
			Latitude:           round6(region.Lat + g.Between(-0.5, 0.5)),
			Longitude:          round6(region.Lng + g.Between(-0.5, 0.5)),
			Address:            g.StreetAddress(city, region.Name),
			CreatedAt:          g.PastTime(2),
			UpdatedAt:          now,
		})
	}

	return coops, capped
}

// cooperativeName mixes a commodity keyword with the city or region using
// a small set of Arabic, French and English templates.
func cooperativeName(g *DataGenerator, region Region, city string) string {
	cat := productCategories[g.rand.Intn(len(productCategories))]
	ar := cat.Keywords[0]
	en := cat.Name
	if len(cat.Keywords) > 1 {
		en = cat.Keywords[1]
	}

	names := []string{
		fmt.Sprintf("تعاونية %s %s", ar, city),
		fmt.Sprintf("جمعية %s %s", ar, region.Name),
		fmt.Sprintf("%s %s Cooperative", city, en),
		fmt.Sprintf("Coopérative %s %s", en, city),
		fmt.Sprintf("%s %s Collective", region.Name, en),
		fmt.Sprintf("جمعية %s لل%s", city, ar),
	}
	return names[g.rand.Intn(len(names))]
}

// registrationNumber builds a unique-looking code from the region name, a
// registration year and the sequence number, e.g. REG-CAS-2023-0007.
func registrationNumber(g *DataGenerator, region Region, seq int) string {
	prefix := regionCodePrefix(region.Name)
	year := g.IntBetween(2020, 2024)
	return fmt.Sprintf("REG-%s-%d-%04d", prefix, year, seq)
}

func regionCodePrefix(name string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(name)
	runes := []rune(strings.ToUpper(cleaned))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes)
}
