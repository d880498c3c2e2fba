package seeder

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// DataGenerator owns the random source for a seeding run together with
// the uniqueness bookkeeping for contact identifiers. A non-zero seed
// makes the whole run reproducible.
type DataGenerator struct {
	rand       *rand.Rand
	usedEmails map[string]struct{}
	usedPhones map[string]struct{}
}

func NewDataGenerator(seed int64) *DataGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DataGenerator{
		rand:       rand.New(rand.NewSource(seed)),
		usedEmails: make(map[string]struct{}),
		usedPhones: make(map[string]struct{}),
	}
}

func (g *DataGenerator) FullName() (string, string) {
	first := moroccanFirstNames[g.rand.Intn(len(moroccanFirstNames))]
	last := moroccanLastNames[g.rand.Intn(len(moroccanLastNames))]
	return first, last
}

// UniqueEmail derives an address from the name and index, appending a
// numeric suffix until it no longer collides with an earlier one.
func (g *DataGenerator) UniqueEmail(first, last string, index int) string {
	base := fmt.Sprintf("%s.%s%d", mailToken(first), mailToken(last), index)
	email := base + "@sou9na.ma"
	for counter := 0; ; counter++ {
		if _, taken := g.usedEmails[email]; !taken {
			break
		}
		email = fmt.Sprintf("%s%d@sou9na.ma", base, counter)
	}
	g.usedEmails[email] = struct{}{}
	return email
}

// UniquePhone produces a Moroccan mobile number: country code 212, a
// valid mobile prefix in [612,679] and six random digits. Collisions are
// retried with a fresh draw.
func (g *DataGenerator) UniquePhone() string {
	for {
		prefix := 612 + g.rand.Intn(68)
		phone := fmt.Sprintf("212%d%06d", prefix, g.rand.Intn(1000000))
		if _, taken := g.usedPhones[phone]; !taken {
			g.usedPhones[phone] = struct{}{}
			return phone
		}
	}
}

// PastTime returns a uniformly random instant within the past number of
// years, measured from now.
func (g *DataGenerator) PastTime(years int) time.Time {
	now := time.Now()
	span := now.Sub(now.AddDate(-years, 0, 0))
	return now.Add(-time.Duration(g.rand.Int63n(int64(span))))
}

// Between returns a uniform float64 in [min, max).
func (g *DataGenerator) Between(min, max float64) float64 {
	return min + g.rand.Float64()*(max-min)
}

// IntBetween returns a uniform int in [min, max] inclusive.
func (g *DataGenerator) IntBetween(min, max int) int {
	return min + g.rand.Intn(max-min+1)
}

func (g *DataGenerator) StreetAddress(city, region string) string {
	streetType := streetTypes[g.rand.Intn(len(streetTypes))]
	street := streetNames[g.rand.Intn(len(streetNames))]
	return fmt.Sprintf("%s %s, %s, %s, Morocco", streetType, street, city, region)
}

// mailToken lowercases a name and drops the spaces of compound surnames
// so it is safe inside an email local part.
func mailToken(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b = append(b, c)
	}
	return string(b)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
