package station

import "github.com/umahmood/haversine"

// StationData struct that contains the location of a station
type StationData struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceTo returns the distance in kilometers between two stations using haversine formula
func (sd StationData) DistanceTo(other StationData) float64 {
	station1 := haversine.Coord{Lat: sd.Latitude, Lon: sd.Longitude}
	station2 := haversine.Coord{Lat: other.Latitude, Lon: other.Longitude}

	_, km := haversine.Distance(station1, station2)
	return km
}
