// Package models defines the shared domain and wire types for the
// FarmAssist server: the diagnosis record produced by the analyze
// pipeline and the shop records returned by the nearby-shops proxy.
package models

// Canonical crop vocabulary. Free text from the vision model is mapped
// onto one of these by the normalizer; anything unrecognized becomes
// CropUnknown.
const (
	CropTomato    = "tomato"
	CropRice      = "rice"
	CropWheat     = "wheat"
	CropCorn      = "corn"
	CropPotato    = "potato"
	CropCotton    = "cotton"
	CropSugarcane = "sugarcane"
	CropUnknown   = "Unknown"
)

// Risk ratings carried on a diagnosis.
const (
	RiskLow     = "Low"
	RiskMedium  = "Medium"
	RiskHigh    = "High"
	RiskUnknown = "Unknown"
)

// Pesticide is an indicative (not prescriptive) pesticide recommendation
// attached to an advisory-table entry.
type Pesticide struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Safety string `json:"safety"`
}

// Diagnosis is the structured result of analyzing one leaf image.
// It is created fresh per request and never persisted.
//
// After the normalizer has run, Crop is always drawn from the canonical
// crop vocabulary and Disease is either a canonical disease phrase or
// the lowercased model text.
type Diagnosis struct {
	IsPlant      bool       `json:"isPlant"`
	Crop         string     `json:"crop"`
	Disease      string     `json:"disease,omitempty"`
	Risk         string     `json:"risk"`
	Actions      []string   `json:"actions"`
	Warning      string     `json:"warning,omitempty"`
	GovtAdvisory string     `json:"govtAdvisory,omitempty"`
	Pesticide    *Pesticide `json:"pesticide,omitempty"`
}

// AnalyzeResponse is the wire envelope for the analyze endpoint.
type AnalyzeResponse struct {
	Success  bool       `json:"success"`
	Analysis *Diagnosis `json:"analysis,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// ShopLocation is a WGS84 coordinate pair.
type ShopLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ShopGeometry wraps the location of a place result.
type ShopGeometry struct {
	Location ShopLocation `json:"location"`
}

// ShopHours carries the open-now flag of a place result.
type ShopHours struct {
	OpenNow bool `json:"open_now"`
}

// Shop is one agro-shop result from the places proxy. Field names follow
// the Places nearby-search response so filtered results pass through to
// the client unchanged.
type Shop struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Vicinity         string        `json:"vicinity,omitempty"`
	Rating           float64       `json:"rating,omitempty"`
	UserRatingsTotal int           `json:"user_ratings_total,omitempty"`
	Types            []string      `json:"types,omitempty"`
	Geometry         *ShopGeometry `json:"geometry,omitempty"`
	OpeningHours     *ShopHours    `json:"opening_hours,omitempty"`
}
