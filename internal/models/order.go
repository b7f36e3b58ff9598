package models

import "time"

const OrderStatusPending = "pending"

type OrderItem struct {
	Name     string  `json:"name" bson:"name" validate:"required,max=200"`
	Price    float64 `json:"price" bson:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" bson:"quantity" validate:"gte=1"`
}

// Order - kalemler ürünlerin kopyasıdır, Product'a referans yoktur.
// Subtotal/Tax/Total istemciden geldiği gibi saklanır.
type Order struct {
	ID          string      `json:"_id" bson:"-"`
	TableNumber int         `json:"tableNumber" bson:"tableNumber" validate:"gte=0"`
	Items       []OrderItem `json:"items" bson:"items" validate:"dive"`
	Subtotal    float64     `json:"subtotal" bson:"subtotal" validate:"gte=0"`
	Tax         float64     `json:"tax" bson:"tax" validate:"gte=0"`
	Total       float64     `json:"total" bson:"total" validate:"gte=0"`
	Status      string      `json:"status" bson:"status"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`
}

// ApplyDefaults yeni siparişte boş bırakılan status ve createdAt alanlarını doldurur
func (o *Order) ApplyDefaults(now time.Time) {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.Items == nil {
		o.Items = []OrderItem{}
	}
}

type OrderPatch struct {
	TableNumber *int        `json:"tableNumber" validate:"omitempty,gte=0"`
	Items       []OrderItem `json:"items" validate:"omitempty,dive"`
	Subtotal    *float64    `json:"subtotal" validate:"omitempty,gte=0"`
	Tax         *float64    `json:"tax" validate:"omitempty,gte=0"`
	Total       *float64    `json:"total" validate:"omitempty,gte=0"`
	Status      *string     `json:"status"`
}

func (p OrderPatch) Apply(dst *Order) {
	if p.TableNumber != nil {
		dst.TableNumber = *p.TableNumber
	}
	if p.Items != nil {
		dst.Items = p.Items
	}
	if p.Subtotal != nil {
		dst.Subtotal = *p.Subtotal
	}
	if p.Tax != nil {
		dst.Tax = *p.Tax
	}
	if p.Total != nil {
		dst.Total = *p.Total
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
}

func (p OrderPatch) Fields() map[string]any {
	m := map[string]any{}
	if p.TableNumber != nil {
		m["tableNumber"] = *p.TableNumber
	}
	if p.Items != nil {
		m["items"] = p.Items
	}
	if p.Subtotal != nil {
		m["subtotal"] = *p.Subtotal
	}
	if p.Tax != nil {
		m["tax"] = *p.Tax
	}
	if p.Total != nil {
		m["total"] = *p.Total
	}
	if p.Status != nil {
		m["status"] = *p.Status
	}
	return m
}
