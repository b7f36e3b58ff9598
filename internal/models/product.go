package models

type Product struct {
	ID          string  `json:"_id" bson:"-"`
	Name        string  `json:"name" bson:"name" validate:"max=200"`
	Description string  `json:"description" bson:"description" validate:"max=2000"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
	Category    string  `json:"category" bson:"category" validate:"max=100"`
	Image       string  `json:"image" bson:"image" validate:"max=2048"`
}

// ProductPatch - PUT /api/products/:id gövdesi, sadece gönderilen alanlar değişir
type ProductPatch struct {
	Name        *string  `json:"name" validate:"omitempty,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Image       *string  `json:"image" validate:"omitempty,max=2048"`
}

func (p ProductPatch) Apply(dst *Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.Image != nil {
		dst.Image = *p.Image
	}
}

// Fields patch'i alan adı -> değer map'ine çevirir (bson / gorm update'leri için)
func (p ProductPatch) Fields() map[string]any {
	m := map[string]any{}
	if p.Name != nil {
		m["name"] = *p.Name
	}
	if p.Description != nil {
		m["description"] = *p.Description
	}
	if p.Price != nil {
		m["price"] = *p.Price
	}
	if p.Category != nil {
		m["category"] = *p.Category
	}
	if p.Image != nil {
		m["image"] = *p.Image
	}
	return m
}
