package models

// SettingsKey - ayarlar tek bir kayıttır, her backend'de bu sabit anahtarla tutulur
const SettingsKey = "restaurant"

type Settings struct {
	ID             string  `json:"_id" bson:"_id"`
	RestaurantName string  `json:"restaurantName" bson:"restaurantName"`
	WhatsappNumber string  `json:"whatsappNumber" bson:"whatsappNumber"`
	TaxRate        float64 `json:"taxRate" bson:"taxRate"`
}

// DefaultSettings ilk okumada oluşturulan kayıt
func DefaultSettings() Settings {
	return Settings{
		ID:             SettingsKey,
		RestaurantName: "My Restaurant",
		WhatsappNumber: "911234567890", // Hindistan formatı
		TaxRate:        10,
	}
}

type SettingsPatch struct {
	RestaurantName *string  `json:"restaurantName" validate:"omitempty,max=200"`
	WhatsappNumber *string  `json:"whatsappNumber" validate:"omitempty,max=32"`
	TaxRate        *float64 `json:"taxRate" validate:"omitempty,gte=0,lte=100"`
}

func (p SettingsPatch) Apply(dst *Settings) {
	if p.RestaurantName != nil {
		dst.RestaurantName = *p.RestaurantName
	}
	if p.WhatsappNumber != nil {
		dst.WhatsappNumber = *p.WhatsappNumber
	}
	if p.TaxRate != nil {
		dst.TaxRate = *p.TaxRate
	}
}

func (p SettingsPatch) Fields() map[string]any {
	m := map[string]any{}
	if p.RestaurantName != nil {
		m["restaurantName"] = *p.RestaurantName
	}
	if p.WhatsappNumber != nil {
		m["whatsappNumber"] = *p.WhatsappNumber
	}
	if p.TaxRate != nil {
		m["taxRate"] = *p.TaxRate
	}
	return m
}
