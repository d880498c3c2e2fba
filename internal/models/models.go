package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleProducer Role = "PRODUCER"
	RoleBuyer    Role = "BUYER"
)

type TransactionStatus string

const (
	StatusInitiated TransactionStatus = "INITIATED"
	StatusEscrowed  TransactionStatus = "ESCROWED"
	StatusShipped   TransactionStatus = "SHIPPED"
	StatusDelivered TransactionStatus = "DELIVERED"
	StatusSettled   TransactionStatus = "SETTLED"
	StatusFailed    TransactionStatus = "FAILED"
)

// StatusOrder is the canonical progression of a non-failed transaction.
// A FAILED transaction only ever logs INITIATED followed by FAILED.
var StatusOrder = []TransactionStatus{
	StatusInitiated,
	StatusEscrowed,
	StatusShipped,
	StatusDelivered,
	StatusSettled,
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Cooperative struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name               string             `bson:"name" json:"name"`
	UserID             primitive.ObjectID `bson:"userId" json:"userId"`
	RegistrationNumber string             `bson:"registrationNumber" json:"registrationNumber"`
	Region             string             `bson:"region" json:"region"`
	Latitude           float64            `bson:"latitude" json:"latitude"`
	Longitude          float64            `bson:"longitude" json:"longitude"`
	Address            string             `bson:"address" json:"address"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CooperativeID primitive.ObjectID `bson:"cooperativeId" json:"cooperativeId"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	Unit          string             `bson:"unit" json:"unit"`
	StockQuantity int                `bson:"stockQuantity" json:"stockQuantity"`
	ImageURL      string             `bson:"imageUrl" json:"imageUrl"`
	ImageURLs     []string           `bson:"imageUrls" json:"imageUrls"`
	DeletedAt     *time.Time         `bson:"deletedAt" json:"deletedAt"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Transaction struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BuyerID             primitive.ObjectID `bson:"buyerId" json:"buyerId"`
	SellerID            primitive.ObjectID `bson:"sellerId" json:"sellerId"`
	ProductID           primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity            int                `bson:"quantity" json:"quantity"`
	Amount              float64            `bson:"amount" json:"amount"`
	Fee                 float64            `bson:"fee" json:"fee"`
	TotalAmount         float64            `bson:"totalAmount" json:"totalAmount"`
	Status              TransactionStatus  `bson:"status" json:"status"`
	EscrowTransactionID *string            `bson:"escrowTransactionId" json:"escrowTransactionId"`
	QRSignature         *string            `bson:"qrSignature" json:"qrSignature"`
	SettledAt           *time.Time         `bson:"settledAt" json:"settledAt"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type TransactionLog struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	TransactionID primitive.ObjectID     `bson:"transactionId" json:"transactionId"`
	Status        TransactionStatus      `bson:"status" json:"status"`
	Message       string                 `bson:"message" json:"message"`
	APIResponse   map[string]interface{} `bson:"apiResponse" json:"apiResponse"`
	CreatedAt     time.Time              `bson:"createdAt" json:"createdAt"`
}
