package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type orderStore struct {
	coll *mongo.Collection
}

// Amounts are stored as doubles, the way the storefront writes them.
type itemDoc struct {
	ProductId   string  `bson:"productId"`
	ProductName string  `bson:"productName"`
	Price       float64 `bson:"price"`
	Quantity    int     `bson:"quantity"`
	Size        string  `bson:"size,omitempty"`
	Color       string  `bson:"color,omitempty"`
}

type orderDoc struct {
	Id              primitive.ObjectID `bson:"_id,omitempty"`
	CustomerName    string             `bson:"customerName"`
	CustomerPhone   string             `bson:"customerPhone"`
	CustomerAddress string             `bson:"customerAddress"`
	Wilaya          string             `bson:"wilaya"`
	Products        []itemDoc          `bson:"products"`
	TotalAmount     float64            `bson:"totalAmount"`
	ShippingCost    float64            `bson:"shippingCost"`
	Status          string             `bson:"status"`
	Notes           string             `bson:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

func (d *orderDoc) entity() entity.Order {
	items := make([]entity.OrderItem, 0, len(d.Products))
	for _, it := range d.Products {
		items = append(items, entity.OrderItem{
			ProductId:   it.ProductId,
			ProductName: it.ProductName,
			Price:       decimal.NewFromFloat(it.Price),
			Quantity:    it.Quantity,
			Size:        it.Size,
			Color:       it.Color,
		})
	}
	return entity.Order{
		Id:              d.Id.Hex(),
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		CustomerAddress: d.CustomerAddress,
		Wilaya:          d.Wilaya,
		TotalAmount:     decimal.NewFromFloat(d.TotalAmount),
		ShippingCost:    decimal.NewFromFloat(d.ShippingCost),
		Status:          entity.OrderStatus(d.Status),
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
		Items:           items,
	}
}

// objectId parses an order id. Malformed ids cannot exist in the collection.
func objectId(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, gerr.ErrOrderNotFound
	}
	return oid, nil
}

func (os *orderStore) Ping(ctx context.Context) error {
	return ping(ctx, os.coll)
}

func (os *orderStore) AddOrder(ctx context.Context, on *entity.OrderNew) (*entity.Order, error) {
	if on == nil {
		return nil, fmt.Errorf("%w: order is nil", gerr.ErrInvalidOrder)
	}
	if err := on.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", gerr.ErrInvalidOrder, err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	createdAt := on.CreatedAt.UTC().Truncate(time.Millisecond)
	if on.CreatedAt.IsZero() {
		createdAt = now
	}
	items := make([]itemDoc, 0, len(on.Items))
	for _, it := range on.Items {
		items = append(items, itemDoc{
			ProductId:   it.ProductId,
			ProductName: it.ProductName,
			Price:       it.Price.InexactFloat64(),
			Quantity:    it.Quantity,
			Size:        it.Size,
			Color:       it.Color,
		})
	}
	doc := orderDoc{
		Id:              primitive.NewObjectID(),
		CustomerName:    on.CustomerName,
		CustomerPhone:   on.CustomerPhone,
		CustomerAddress: on.CustomerAddress,
		Wilaya:          on.Wilaya,
		Products:        items,
		TotalAmount:     on.TotalAmount.InexactFloat64(),
		ShippingCost:    on.ShippingCost.InexactFloat64(),
		Status:          string(on.Status),
		Notes:           on.Notes,
		CreatedAt:       createdAt,
		UpdatedAt:       now,
	}
	if _, err := os.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("can't insert order: %w", err)
	}
	o := doc.entity()
	return &o, nil
}

func (os *orderStore) GetOrderById(ctx context.Context, id string) (*entity.Order, error) {
	oid, err := objectId(id)
	if err != nil {
		return nil, err
	}
	var doc orderDoc
	if err := os.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, gerr.ErrOrderNotFound
		}
		return nil, fmt.Errorf("can't get order by id: %w", err)
	}
	o := doc.entity()
	return &o, nil
}

func (os *orderStore) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", gerr.ErrInvalidOrder, status)
	}
	oid, err := objectId(id)
	if err != nil {
		return err
	}
	res, err := os.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"status":    string(status),
			"updatedAt": time.Now().UTC(),
		},
	})
	if err != nil {
		return fmt.Errorf("can't update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return gerr.ErrOrderNotFound
	}
	return nil
}

func (os *orderStore) DeleteOrderById(ctx context.Context, id string) error {
	oid, err := objectId(id)
	if err != nil {
		return err
	}
	res, err := os.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("can't delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return gerr.ErrOrderNotFound
	}
	return nil
}

func (os *orderStore) RecentOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := os.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("can't get recent orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []entity.Order{}
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("can't decode order: %w", err)
		}
		orders = append(orders, doc.entity())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("can't get recent orders: %w", err)
	}
	return orders, nil
}
