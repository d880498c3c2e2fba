package seeder

import (
	"math"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sou9na-labs/soukseed/internal/models"
)

func TestStatusDistribution(t *testing.T) {
	g := NewDataGenerator(1)
	statuses := statusDistribution(g, 100)

	if len(statuses) != 100 {
		t.Fatalf("Expected 100 statuses, got %d", len(statuses))
	}

	counts := make(map[models.TransactionStatus]int)
	for _, s := range statuses {
		counts[s]++
	}

	want := map[models.TransactionStatus]int{
		models.StatusSettled:   60,
		models.StatusDelivered: 15,
		models.StatusShipped:   10,
		models.StatusEscrowed:  10,
		models.StatusFailed:    5,
	}
	for status, n := range want {
		if counts[status] != n {
			t.Errorf("Expected %d %s, got %d", n, status, counts[status])
		}
	}
}

func TestStatusDistributionPadsWithSettled(t *testing.T) {
	g := NewDataGenerator(2)

	// Weight rounding for 7 yields 4+1+0+0+0 slots; the remainder is
	// filled with SETTLED.
	statuses := statusDistribution(g, 7)
	if len(statuses) != 7 {
		t.Fatalf("Expected 7 statuses, got %d", len(statuses))
	}

	settled := 0
	for _, s := range statuses {
		if s == models.StatusSettled {
			settled++
		}
	}
	if settled != 6 {
		t.Errorf("Expected 6 SETTLED after padding, got %d", settled)
	}
}

func TestBuildTransactionAmounts(t *testing.T) {
	g := NewDataGenerator(3)
	buyer := primitive.NewObjectID()
	seller := primitive.NewObjectID()

	for i := 0; i < 100; i++ {
		product := productRef{ID: primitive.NewObjectID(), Price: 199.99}
		tx := buildTransaction(g, buyer, seller, product, models.StatusShipped)

		if tx.Quantity < 1 || tx.Quantity > 5 {
			t.Fatalf("Quantity %d outside 1-5 for a regular-priced product", tx.Quantity)
		}
		if tx.Amount != round2(product.Price*float64(tx.Quantity)) {
			t.Fatalf("Amount %v does not match price*quantity", tx.Amount)
		}
		if tx.Fee != round2(tx.Amount*feeRate) {
			t.Fatalf("Fee %v is not 5%% of %v", tx.Fee, tx.Amount)
		}
		if math.Abs(tx.TotalAmount-round2(tx.Amount+tx.Fee)) > 1e-9 {
			t.Fatalf("Total %v is not amount+fee", tx.TotalAmount)
		}
	}
}

func TestBuildTransactionBulkQuantityForCheapItems(t *testing.T) {
	g := NewDataGenerator(4)
	product := productRef{ID: primitive.NewObjectID(), Price: 35}

	for i := 0; i < 100; i++ {
		tx := buildTransaction(g, primitive.NewObjectID(), primitive.NewObjectID(), product, models.StatusSettled)
		if tx.Quantity < 2 || tx.Quantity > 10 {
			t.Fatalf("Quantity %d outside 2-10 for a cheap product", tx.Quantity)
		}
	}
}

func TestBuildTransactionSettled(t *testing.T) {
	g := NewDataGenerator(5)

	for i := 0; i < 50; i++ {
		product := productRef{ID: primitive.NewObjectID(), Price: 120}
		tx := buildTransaction(g, primitive.NewObjectID(), primitive.NewObjectID(), product, models.StatusSettled)

		if tx.SettledAt == nil {
			t.Fatal("SETTLED transaction missing settledAt")
		}
		days := tx.SettledAt.Sub(tx.CreatedAt).Hours() / 24
		if days < 0.9 || days > 7.1 { // AddDate spans can shift an hour over DST
			t.Fatalf("settledAt %v days after creation, want 1-7", days)
		}
		if !tx.UpdatedAt.Equal(*tx.SettledAt) {
			t.Fatal("SETTLED transaction updatedAt must equal settledAt")
		}
		if tx.QRSignature == nil || len(*tx.QRSignature) != 32 {
			t.Fatal("SETTLED transaction must carry a 32-char delivery proof")
		}
	}
}

func TestBuildTransactionSignaturePresence(t *testing.T) {
	g := NewDataGenerator(6)
	product := productRef{ID: primitive.NewObjectID(), Price: 120}

	withSig := map[models.TransactionStatus]bool{
		models.StatusDelivered: true,
		models.StatusSettled:   true,
	}

	for _, status := range []models.TransactionStatus{
		models.StatusInitiated, models.StatusEscrowed, models.StatusShipped,
		models.StatusDelivered, models.StatusSettled, models.StatusFailed,
	} {
		tx := buildTransaction(g, primitive.NewObjectID(), primitive.NewObjectID(), product, status)
		if withSig[status] && tx.QRSignature == nil {
			t.Errorf("%s transaction missing qrSignature", status)
		}
		if !withSig[status] && tx.QRSignature != nil {
			t.Errorf("%s transaction should not carry a qrSignature", status)
		}
		if status != models.StatusSettled && tx.SettledAt != nil {
			t.Errorf("%s transaction should not carry settledAt", status)
		}
	}
}

func TestDeliveryProofDeterministic(t *testing.T) {
	buyer := primitive.NewObjectID()
	product := primitive.NewObjectID()
	at := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	a := deliveryProof(buyer, product, at)
	b := deliveryProof(buyer, product, at)
	if a != b {
		t.Error("Same inputs produced different delivery proofs")
	}
	if len(a) != 32 {
		t.Errorf("Expected a 32-char proof, got %d chars", len(a))
	}
	if c := deliveryProof(buyer, product, at.Add(time.Second)); c == a {
		t.Error("Different creation instants produced the same proof")
	}
}

func TestBuildTransactionLogsHistory(t *testing.T) {
	g := NewDataGenerator(7)
	product := productRef{ID: primitive.NewObjectID(), Price: 120}

	tests := []struct {
		status models.TransactionStatus
		want   []models.TransactionStatus
	}{
		{models.StatusInitiated, []models.TransactionStatus{models.StatusInitiated}},
		{models.StatusShipped, []models.TransactionStatus{models.StatusInitiated, models.StatusEscrowed, models.StatusShipped}},
		{models.StatusSettled, []models.TransactionStatus{models.StatusInitiated, models.StatusEscrowed, models.StatusShipped, models.StatusDelivered, models.StatusSettled}},
		{models.StatusFailed, []models.TransactionStatus{models.StatusInitiated, models.StatusFailed}},
	}

	for _, tt := range tests {
		tx := buildTransaction(g, primitive.NewObjectID(), primitive.NewObjectID(), product, tt.status)
		txID := primitive.NewObjectID()
		logs := buildTransactionLogs(txID, tx)

		if len(logs) != len(tt.want) {
			t.Fatalf("%s: expected %d log entries, got %d", tt.status, len(tt.want), len(logs))
		}
		for i, l := range logs {
			if l.Status != tt.want[i] {
				t.Errorf("%s: entry %d is %s, want %s", tt.status, i, l.Status, tt.want[i])
			}
			if l.TransactionID != txID {
				t.Errorf("%s: entry %d not linked to the transaction", tt.status, i)
			}
			if l.Message == "" {
				t.Errorf("%s: entry %d has no message", tt.status, i)
			}
			wantAt := tx.CreatedAt.Add(time.Duration(i) * 2 * time.Hour)
			if !l.CreatedAt.Equal(wantAt) {
				t.Errorf("%s: entry %d at %v, want %v", tt.status, i, l.CreatedAt, wantAt)
			}
		}
	}
}

func TestBuildTransactionLogsPayload(t *testing.T) {
	g := NewDataGenerator(8)
	product := productRef{ID: primitive.NewObjectID(), Price: 120}

	tx := buildTransaction(g, primitive.NewObjectID(), primitive.NewObjectID(), product, models.StatusSettled)
	logs := buildTransactionLogs(primitive.NewObjectID(), tx)

	withPayload := map[models.TransactionStatus]bool{
		models.StatusEscrowed:  true,
		models.StatusDelivered: true,
		models.StatusSettled:   true,
	}

	for _, l := range logs {
		if withPayload[l.Status] {
			if _, ok := l.APIResponse["qrSignature"]; !ok {
				t.Errorf("%s entry missing the qrSignature payload field", l.Status)
			}
			if _, ok := l.APIResponse["escrowTransactionId"]; !ok {
				t.Errorf("%s entry missing the escrowTransactionId payload field", l.Status)
			}
		} else if len(l.APIResponse) != 0 {
			t.Errorf("%s entry should have an empty payload", l.Status)
		}
	}
}
