package model

// Track is the academic school a student enrolls in.
type Track string

const (
	TrackScience  Track = "science"
	TrackMedicine Track = "medicine"
	TrackBusiness Track = "business"
	TrackArts     Track = "arts"
)

var Tracks = []Track{TrackScience, TrackMedicine, TrackBusiness, TrackArts}

// Background is the family financial background.
type Background string

const (
	BackgroundPoor Background = "poor"
	BackgroundOK   Background = "ok"
	BackgroundMid  Background = "mid"
	BackgroundRich Background = "rich"
)

var Backgrounds = []Background{BackgroundPoor, BackgroundOK, BackgroundMid, BackgroundRich}

// ParseBackground maps free text to a background, defaulting to ok.
func ParseBackground(s string) Background {
	for _, b := range Backgrounds {
		if string(b) == s {
			return b
		}
	}
	return BackgroundOK
}

// Route is the optional long-term goal picked at the start.
type Route string

const (
	RouteNone     Route = ""
	RouteResearch Route = "research"
	RouteCareer   Route = "career"
	RouteAbroad   Route = "abroad"
)

var Routes = []Route{RouteResearch, RouteCareer, RouteAbroad}

// ParseRoute maps free text to a route. Unknown input means no route.
func ParseRoute(s string) Route {
	for _, r := range Routes {
		if string(r) == s {
			return r
		}
	}
	return RouteNone
}
