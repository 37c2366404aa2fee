package models

// AddressResult is a geocoded address as returned to clients.
type AddressResult struct {
	Address          string  `json:"address" example:"123 Main Street, Beverly Hills, CA 90210"`
	FormattedAddress string  `json:"formatted_address" example:"123 Main St, Beverly Hills, CA 90210, USA"`
	Latitude         float64 `json:"latitude" example:"34.0736"`
	Longitude        float64 `json:"longitude" example:"-118.4004"`
	PlaceID          string  `json:"place_id" example:"ChIJN1t_tDeuEmsRUsoyG83frY4"`
}

// PropertyInfo is the fabricated valuation record for a geocoded address.
type PropertyInfo struct {
	Address        AddressResult `json:"address"`
	EstimatedValue *int          `json:"estimated_value"`
	PropertyType   *string       `json:"property_type"`
	Bedrooms       *int          `json:"bedrooms"`
	Bathrooms      *float64      `json:"bathrooms"`
	SquareFeet     *int          `json:"square_feet"`
	YearBuilt      *int          `json:"year_built"`
	LastSalePrice  *int          `json:"last_sale_price"`
}

type HouseInfoResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	PropertyInfo *PropertyInfo `json:"property_info"`
}

type RootResponse struct {
	Message string `json:"message" example:"House Info API is running!"`
	Version string `json:"version" example:"1.0.0"`
}

type HealthResponse struct {
	Status        string            `json:"status" example:"healthy"`
	APIs          map[string]string `json:"apis"`
	DetectionMode string            `json:"detection_mode" example:"mock"`
}
