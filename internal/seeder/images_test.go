package seeder

import (
	"fmt"
	"testing"
)

func TestImageCandidatesDeterministic(t *testing.T) {
	cat := productCategories[0]

	first := imageCandidates(cat, "Premium Organic Argan Oil")
	second := imageCandidates(cat, "Premium Organic Argan Oil")

	if len(first) != 4 {
		t.Fatalf("Expected 4 candidates, got %d", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Candidates differ between calls: %s vs %s", first[i], second[i])
		}
	}

	other := imageCandidates(cat, "Raw Argan Nuts")
	if first[0] == other[0] && first[1] == other[1] && first[2] == other[2] && first[3] == other[3] {
		t.Log("Different products mapped to the same image block (hash collision)")
	}
}

func TestImageCandidatesSeedBlock(t *testing.T) {
	for _, cat := range productCategories {
		urls := imageCandidates(cat, "Sample")
		for i, url := range urls {
			var seed int
			if _, err := fmt.Sscanf(url, "https://picsum.photos/seed/%d/800/800", &seed); err != nil {
				t.Fatalf("Unexpected URL shape %q: %v", url, err)
			}
			if seed < cat.ImageBase+i || seed > cat.ImageBase+i+9 {
				t.Errorf("Seed %d outside the %s block", seed, cat.Name)
			}
		}
	}
}

func TestProductImages(t *testing.T) {
	g := NewDataGenerator(9)
	cat := productCategories[2]

	candidates := make(map[string]struct{})
	for _, url := range imageCandidates(cat, "Mountain Honey") {
		candidates[url] = struct{}{}
	}

	for i := 0; i < 100; i++ {
		images := productImages(g, cat, "Mountain Honey")
		if len(images) < 2 || len(images) > 4 {
			t.Fatalf("Expected 2-4 images, got %d", len(images))
		}
		seen := make(map[string]struct{})
		for _, url := range images {
			if _, ok := candidates[url]; !ok {
				t.Fatalf("Image %q is not one of the candidates", url)
			}
			if _, dup := seen[url]; dup {
				t.Fatalf("Image %q picked twice", url)
			}
			seen[url] = struct{}{}
		}
	}
}
