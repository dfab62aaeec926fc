package service

import "giftdash/internal/model"

const (
	defaultZoom    = 2
	autoFitPadding = 40
	focusZoom      = 16 // street level, as after a marker click
)

var (
	zoomByPercent  = map[int]int{10: 2, 20: 4, 50: 8, 100: 16}
	presetPercents = []int{10, 20, 50, 100}
)

// ZoomPreset is one entry of the map's zoom selector.
type ZoomPreset struct {
	Percent int `json:"percent"`
	Zoom    int `json:"zoom"`
}

// Bounds is a lon/lat bounding box.
type Bounds struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`
}

// MapView is the initial camera for the map widget.
type MapView struct {
	// Center is [lon, lat].
	Center  [2]float64   `json:"center"`
	Zoom    int          `json:"zoom"`
	AutoFit bool         `json:"auto_fit"`
	Bounds  *Bounds      `json:"bounds,omitempty"`
	Padding int          `json:"padding,omitempty"`
	Presets []ZoomPreset `json:"presets"`
}

// NewMapView centres on the first point and fits all points when there is
// more than one.
func NewMapView(points []model.GeoPoint) MapView {
	view := MapView{Zoom: defaultZoom, Presets: ZoomPresets()}
	if len(points) == 0 {
		return view
	}
	view.Center = [2]float64{points[0].Lon, points[0].Lat}
	if len(points) < 2 {
		return view
	}

	b := Bounds{MinLon: points[0].Lon, MaxLon: points[0].Lon, MinLat: points[0].Lat, MaxLat: points[0].Lat}
	for _, pt := range points[1:] {
		b.MinLon = min(b.MinLon, pt.Lon)
		b.MaxLon = max(b.MaxLon, pt.Lon)
		b.MinLat = min(b.MinLat, pt.Lat)
		b.MaxLat = max(b.MaxLat, pt.Lat)
	}
	view.AutoFit = true
	view.Bounds = &b
	view.Padding = autoFitPadding
	return view
}

// ZoomForPercent maps the widget's zoom presets to map zoom levels.
func ZoomForPercent(percent int) (int, bool) {
	z, ok := zoomByPercent[percent]
	return z, ok
}

// ZoomPresets lists the zoom selector entries in ascending order.
func ZoomPresets() []ZoomPreset {
	presets := make([]ZoomPreset, 0, len(presetPercents))
	for _, pct := range presetPercents {
		z, _ := ZoomForPercent(pct)
		presets = append(presets, ZoomPreset{Percent: pct, Zoom: z})
	}
	return presets
}

// WithZoomPercent applies a zoom preset. A chosen zoom replaces the bounds fit.
func (v MapView) WithZoomPercent(percent int) (MapView, bool) {
	z, ok := ZoomForPercent(percent)
	if !ok {
		return v, false
	}
	v.Zoom = z
	v.AutoFit = false
	v.Bounds = nil
	v.Padding = 0
	return v, true
}

// Focus centres the camera on one location at street level.
func (v MapView) Focus(lat, lon float64) MapView {
	v.Center = [2]float64{lon, lat}
	v.Zoom = focusZoom
	v.AutoFit = false
	v.Bounds = nil
	v.Padding = 0
	return v
}
