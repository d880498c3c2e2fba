package seeder

import (
	"math"
	"regexp"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func makeObjectIDs(n int) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, n)
	for i := range ids {
		ids[i] = primitive.NewObjectID()
	}
	return ids
}

func TestBuildCooperativesDistinctOwners(t *testing.T) {
	g := NewDataGenerator(1)
	producers := makeObjectIDs(60)

	coops, capped := buildCooperatives(g, producers, 60)
	if capped {
		t.Error("Did not expect capping with enough producers")
	}
	if len(coops) != 60 {
		t.Fatalf("Expected 60 cooperatives, got %d", len(coops))
	}

	owners := make(map[primitive.ObjectID]struct{})
	for _, c := range coops {
		if _, dup := owners[c.UserID]; dup {
			t.Fatalf("Producer %s owns more than one cooperative", c.UserID.Hex())
		}
		owners[c.UserID] = struct{}{}
	}
}

func TestBuildCooperativesCapped(t *testing.T) {
	g := NewDataGenerator(2)
	producers := makeObjectIDs(10)

	coops, capped := buildCooperatives(g, producers, 25)
	if !capped {
		t.Error("Expected the count to be reported as capped")
	}
	if len(coops) != 10 {
		t.Fatalf("Expected the count capped to 10, got %d", len(coops))
	}
}

func TestBuildCooperativesGeographyAndCode(t *testing.T) {
	g := NewDataGenerator(3)
	coops, _ := buildCooperatives(g, makeObjectIDs(40), 40)

	regionsByName := make(map[string]Region)
	for _, r := range moroccanRegions {
		regionsByName[r.Name] = r
	}

	codePattern := regexp.MustCompile(`^REG-[^-]{1,3}-20(2[0-4])-\d{4}$`)

	for _, c := range coops {
		region, ok := regionsByName[c.Region]
		if !ok {
			t.Fatalf("Cooperative assigned unknown region %q", c.Region)
		}
		if math.Abs(c.Latitude-region.Lat) > 0.5+1e-9 {
			t.Errorf("Latitude %v too far from %s centroid", c.Latitude, region.Name)
		}
		if math.Abs(c.Longitude-region.Lng) > 0.5+1e-9 {
			t.Errorf("Longitude %v too far from %s centroid", c.Longitude, region.Name)
		}
		if !codePattern.MatchString(c.RegistrationNumber) {
			t.Errorf("Registration number %q has unexpected shape", c.RegistrationNumber)
		}
		if c.Address == "" || c.Name == "" {
			t.Error("Cooperative missing name or address")
		}
	}
}

func TestRegionCodePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Casablanca-Settat", "CAS"},
		{"Oriental", "ORI"},
		{"Béni Mellal-Khénifra", "BÉN"},
	}
	for _, tt := range tests {
		if got := regionCodePrefix(tt.in); got != tt.want {
			t.Errorf("regionCodePrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
