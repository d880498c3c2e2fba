package seeder

import (
	"fmt"
	"hash/fnv"
)

// Picsum serves a stable image for a given seed embedded in the URL, so
// no image hosting of our own is needed.
const picsumURL = "https://picsum.photos/seed/%d/800/800"

// imageCandidates returns the four candidate image URLs for a product.
// The set depends only on the category and product name: the category
// supplies a seed block and an FNV hash of "category_name" perturbs it,
// so the same product always maps to the same candidates.
func imageCandidates(cat Category, productName string) []string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s_%s", cat.Name, productName)
	seedBase := int(h.Sum32() % 1000)

	urls := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		seed := cat.ImageBase + i + seedBase%10
		urls = append(urls, fmt.Sprintf(picsumURL, seed))
	}
	return urls
}

// productImages picks 2-4 of the candidates without replacement. The
// first returned URL is the primary image.
func productImages(g *DataGenerator, cat Category, productName string) []string {
	candidates := imageCandidates(cat, productName)

	order := g.rand.Perm(len(candidates))
	n := g.IntBetween(2, 4)
	if n > len(candidates) {
		n = len(candidates)
	}

	picked := make([]string, 0, n)
	for _, idx := range order[:n] {
		picked = append(picked, candidates[idx])
	}
	return picked
}
