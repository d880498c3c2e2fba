package seeder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/fatih/color"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sou9na-labs/soukseed/internal/models"
	"github.com/sou9na-labs/soukseed/internal/store"
)

const (
	transactionBatchSize = 200
	logBatchSize         = 500

	// Sample at most this many buyers for the transaction pool.
	buyerPoolLimit = 500

	feeRate           = 0.05
	escrowProbability = 0.9
)

// statusWeights is the fixed distribution final statuses are drawn from.
// Rounding remainders are padded with SETTLED.
var statusWeights = []struct {
	status models.TransactionStatus
	weight float64
}{
	{models.StatusSettled, 0.60},
	{models.StatusDelivered, 0.15},
	{models.StatusShipped, 0.10},
	{models.StatusEscrowed, 0.10},
	{models.StatusFailed, 0.05},
}

var logMessages = map[models.TransactionStatus]string{
	models.StatusInitiated: "Transaction created and initiated",
	models.StatusEscrowed:  "Funds escrowed successfully",
	models.StatusShipped:   "Product shipped by seller",
	models.StatusDelivered: "Product marked as delivered",
	models.StatusSettled:   "Payment released to seller",
	models.StatusFailed:    "Transaction failed",
}

// productRef is the slice of product fields the ledger stage needs.
type productRef struct {
	ID            primitive.ObjectID `bson:"_id"`
	CooperativeID primitive.ObjectID `bson:"cooperativeId"`
	Price         float64            `bson:"price"`
}

// seedTransactions generates up to count transactions plus their status
// history logs. Buyers, products and the cooperative owner map are all
// re-read from storage; draws whose cooperative has no resolvable owner
// are skipped.
func (s *Seeder) seedTransactions(ctx context.Context, count int) ([]primitive.ObjectID, error) {
	color.Cyan("💳 Creating %d transactions...", count)

	buyers, err := s.findBuyerIDs(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.findProductRefs(ctx)
	if err != nil {
		return nil, err
	}
	if len(buyers) == 0 || len(products) == 0 {
		color.Yellow("⚠️  No buyers or products found, skipping transaction creation")
		return nil, nil
	}

	sellers, err := s.findCooperativeOwners(ctx)
	if err != nil {
		return nil, err
	}

	statuses := statusDistribution(s.gen, count)

	var txs []models.Transaction
	for i := 0; i < count; i++ {
		buyer := buyers[s.gen.rand.Intn(len(buyers))]
		product := products[s.gen.rand.Intn(len(products))]

		seller, ok := sellers[product.CooperativeID]
		if !ok {
			continue
		}

		txs = append(txs, buildTransaction(s.gen, buyer, seller, product, statuses[i]))
	}

	var ids []primitive.ObjectID
	batches := (len(txs) + transactionBatchSize - 1) / transactionBatchSize
	for start := 0; start < len(txs); start += transactionBatchSize {
		end := start + transactionBatchSize
		if end > len(txs) {
			end = len(txs)
		}
		docs := make([]interface{}, 0, end-start)
		for _, tx := range txs[start:end] {
			docs = append(docs, tx)
		}
		batchIDs, err := s.store.InsertMany(ctx, store.Transactions, docs)
		if err != nil {
			return nil, err
		}
		ids = append(ids, batchIDs...)
		color.Green("   ✓ Inserted batch %d/%d", start/transactionBatchSize+1, batches)
	}

	color.Cyan("   📝 Creating transaction logs...")
	var logs []models.TransactionLog
	for i, tx := range txs {
		logs = append(logs, buildTransactionLogs(ids[i], tx)...)
	}

	for start := 0; start < len(logs); start += logBatchSize {
		end := start + logBatchSize
		if end > len(logs) {
			end = len(logs)
		}
		docs := make([]interface{}, 0, end-start)
		for _, l := range logs[start:end] {
			docs = append(docs, l)
		}
		if _, err := s.store.InsertMany(ctx, store.TransactionLogs, docs); err != nil {
			return nil, err
		}
	}
	color.Green("   ✓ Created %d transaction logs", len(logs))

	color.Green("✅ Created %d transactions\n", len(txs))
	return ids, nil
}

func (s *Seeder) findBuyerIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetLimit(buyerPoolLimit)

	cursor, err := s.store.Collection(store.Users).Find(ctx, bson.M{"role": models.RoleBuyer}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query buyers: %w", err)
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

func (s *Seeder) findProductRefs(ctx context.Context) ([]productRef, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "cooperativeId": 1, "price": 1})

	cursor, err := s.store.Collection(store.Products).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var refs []productRef
	for cursor.Next(ctx) {
		var ref productRef
		if err := cursor.Decode(&ref); err != nil {
			continue
		}
		refs = append(refs, ref)
	}
	return refs, cursor.Err()
}

// findCooperativeOwners maps each cooperative to its owning producer.
func (s *Seeder) findCooperativeOwners(ctx context.Context) (map[primitive.ObjectID]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "userId": 1})

	cursor, err := s.store.Collection(store.Cooperatives).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query cooperatives: %w", err)
	}
	defer cursor.Close(ctx)

	owners := make(map[primitive.ObjectID]primitive.ObjectID)
	for cursor.Next(ctx) {
		var doc struct {
			ID     primitive.ObjectID `bson:"_id"`
			UserID primitive.ObjectID `bson:"userId"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		owners[doc.ID] = doc.UserID
	}
	return owners, cursor.Err()
}

// statusDistribution allocates final statuses according to statusWeights,
// pads the rounding remainder with SETTLED and shuffles the slots so the
// status is uncorrelated with generation order.
func statusDistribution(g *DataGenerator, count int) []models.TransactionStatus {
	statuses := make([]models.TransactionStatus, 0, count)
	for _, w := range statusWeights {
		n := int(float64(count) * w.weight)
		for i := 0; i < n; i++ {
			statuses = append(statuses, w.status)
		}
	}
	for len(statuses) < count {
		statuses = append(statuses, models.StatusSettled)
	}
	statuses = statuses[:count]

	g.rand.Shuffle(len(statuses), func(i, j int) {
		statuses[i], statuses[j] = statuses[j], statuses[i]
	})
	return statuses
}

func buildTransaction(g *DataGenerator, buyer, seller primitive.ObjectID, product productRef, status models.TransactionStatus) models.Transaction {
	quantity := g.IntBetween(1, 5)
	if product.Price < 50 {
		// Cheaper items are bought in bulk.
		quantity = g.IntBetween(2, 10)
	}

	amount := round2(product.Price * float64(quantity))
	fee := round2(amount * feeRate)
	total := round2(amount + fee)

	createdAt := g.PastTime(2)

	var escrowID *string
	if g.rand.Float64() < escrowProbability {
		id := fmt.Sprintf("ESC%d", g.IntBetween(100000, 999999))
		escrowID = &id
	}

	var qrSignature *string
	if status == models.StatusDelivered || status == models.StatusSettled {
		sig := deliveryProof(buyer, product.ID, createdAt)
		qrSignature = &sig
	}

	var settledAt *time.Time
	updatedAt := createdAt.AddDate(0, 0, g.IntBetween(0, 3))
	if status == models.StatusSettled {
		t := createdAt.AddDate(0, 0, g.IntBetween(1, 7))
		settledAt = &t
		updatedAt = t
	}

	return models.Transaction{
		BuyerID:             buyer,
		SellerID:            seller,
		ProductID:           product.ID,
		Quantity:            quantity,
		Amount:              amount,
		Fee:                 fee,
		TotalAmount:         total,
		Status:              status,
		EscrowTransactionID: escrowID,
		QRSignature:         qrSignature,
		SettledAt:           settledAt,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}

// deliveryProof is the truncated digest scanned at handover: a buyer,
// product and creation instant always produce the same token.
func deliveryProof(buyer, product primitive.ObjectID, createdAt time.Time) string {
	sum := sha256.Sum256([]byte(buyer.Hex() + product.Hex() + createdAt.Format(time.RFC3339Nano)))
	return hex.EncodeToString(sum[:])[:32]
}

// buildTransactionLogs reconstructs the status history that led to the
// transaction's final status: FAILED logs INITIATED then FAILED, any
// other status logs the canonical order truncated at itself. Log entries
// are spaced two hours apart.
func buildTransactionLogs(txID primitive.ObjectID, tx models.Transaction) []models.TransactionLog {
	var sequence []models.TransactionStatus
	if tx.Status == models.StatusFailed {
		sequence = []models.TransactionStatus{models.StatusInitiated, models.StatusFailed}
	} else {
		for _, status := range models.StatusOrder {
			sequence = append(sequence, status)
			if status == tx.Status {
				break
			}
		}
	}

	logs := make([]models.TransactionLog, 0, len(sequence))
	for i, status := range sequence {
		payload := map[string]interface{}{}
		switch status {
		case models.StatusEscrowed, models.StatusDelivered, models.StatusSettled:
			payload = map[string]interface{}{
				"escrowTransactionId": tx.EscrowTransactionID,
				"qrSignature":         tx.QRSignature,
			}
		}

		logs = append(logs, models.TransactionLog{
			TransactionID: txID,
			Status:        status,
			Message:       logMessages[status],
			APIResponse:   payload,
			CreatedAt:     tx.CreatedAt.Add(time.Duration(i) * 2 * time.Hour),
		})
	}
	return logs
}
