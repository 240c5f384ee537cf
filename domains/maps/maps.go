package maps

import "context"

// Response is the upstream body forwarded untouched.
type Response struct {
	ContentType string
	Body        []byte
}

type GeocodeRequest struct {
	Query      string `json:"query" query:"query"`
	Limit      string `json:"limit" query:"limit"`
	CountrySet string `json:"countrySet" query:"countrySet"`
	Language   string `json:"language" query:"language"`
}

type ReverseGeocodeRequest struct {
	Position string `json:"position" query:"position"` // "lat,lon"
	Language string `json:"language" query:"language"`
}

type FuzzySearchRequest struct {
	Query    string `json:"query" query:"query"`
	Limit    string `json:"limit" query:"limit"`
	Language string `json:"language" query:"language"`
}

type POISearchRequest struct {
	Query  string `json:"query" query:"query"`
	Limit  string `json:"limit" query:"limit"`
	Lat    string `json:"lat" query:"lat"`
	Lon    string `json:"lon" query:"lon"`
	Radius string `json:"radius" query:"radius"`
}

type NearbySearchRequest struct {
	Lat    string `json:"lat" query:"lat"`
	Lon    string `json:"lon" query:"lon"`
	Radius string `json:"radius" query:"radius"`
	Limit  string `json:"limit" query:"limit"`
}

type CalculateRouteRequest struct {
	RoutePlanningLocations string `json:"routePlanningLocations" query:"routePlanningLocations"`
	ContentType            string `json:"contentType" query:"contentType"`
	Language               string `json:"language" query:"language"`
}

// ReachableRangeRequest forwards every query parameter, Origin and ContentType included.
type ReachableRangeRequest struct {
	Origin      string            `json:"origin"`
	ContentType string            `json:"contentType"`
	Params      map[string]string `json:"-"`
}

// PassthroughRequest is used by operations that forward the query string as is.
type PassthroughRequest struct {
	Params map[string]string `json:"-"`
}

type IMapsUsecase interface {
	Geocode(ctx context.Context, request GeocodeRequest) (Response, error)
	ReverseGeocode(ctx context.Context, request ReverseGeocodeRequest) (Response, error)
	FuzzySearch(ctx context.Context, request FuzzySearchRequest) (Response, error)
	POISearch(ctx context.Context, request POISearchRequest) (Response, error)
	NearbySearch(ctx context.Context, request NearbySearchRequest) (Response, error)
	CalculateRoute(ctx context.Context, request CalculateRouteRequest) (Response, error)
	ReachableRange(ctx context.Context, request ReachableRangeRequest) (Response, error)
	TrafficIncidents(ctx context.Context, request PassthroughRequest) (Response, error)
	StaticMap(ctx context.Context, request PassthroughRequest) (Response, error)
}
