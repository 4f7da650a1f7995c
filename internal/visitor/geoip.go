package visitor

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const lookupTimeout = 3 * time.Second

type Geo struct {
	Country  string
	City     string
	Region   string
	Timezone string
}

var unknownGeo = Geo{Country: "Unknown", City: "Unknown", Region: "Unknown", Timezone: "UTC"}

// GeoLocator resolves coarse location via ipapi.co. Any failure, and any
// loopback address, yields a fixed fallback rather than an error.
type GeoLocator struct {
	BaseURL string
	Client  *http.Client
}

func NewGeoLocator() *GeoLocator {
	return &GeoLocator{
		BaseURL: "https://ipapi.co",
		Client:  &http.Client{Timeout: lookupTimeout},
	}
}

func (g *GeoLocator) Lookup(ip string) Geo {
	if ip == "127.0.0.1" || ip == "::1" || ip == "localhost" {
		return Geo{Country: "Local", City: "Development", Region: "Local", Timezone: "UTC"}
	}

	resp, err := g.Client.Get(fmt.Sprintf("%s/%s/json/", g.BaseURL, ip))
	if err != nil {
		slog.Debug("geolocation lookup failed", "ip", ip, "error", err)
		return unknownGeo
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unknownGeo
	}

	var payload struct {
		CountryName string `json:"country_name"`
		City        string `json:"city"`
		Region      string `json:"region"`
		Timezone    string `json:"timezone"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return unknownGeo
	}

	geo := unknownGeo
	if payload.CountryName != "" {
		geo.Country = payload.CountryName
	}
	if payload.City != "" {
		geo.City = payload.City
	}
	if payload.Region != "" {
		geo.Region = payload.Region
	}
	if payload.Timezone != "" {
		geo.Timezone = payload.Timezone
	}
	return geo
}
