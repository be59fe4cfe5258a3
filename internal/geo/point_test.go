package geo

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func mustPoint(t testing.TB, lat, long, alt, weight float64) GeoPoint {
	t.Helper()
	p, err := NewGeoPoint(lat, long, alt, weight)
	if err != nil {
		t.Fatalf("NewGeoPoint(%v, %v, %v, %v) failed: %v", lat, long, alt, weight, err)
	}
	return p
}

func TestNewGeoPoint_Validation(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		long    float64
		alt     float64
		weight  float64
		wantErr error
	}{
		{name: "North Pole", lat: 90, long: 0},
		{name: "South Pole", lat: -90, long: 0},
		{name: "Western edge", lat: 0, long: -180},
		{name: "Just below 180", lat: 0, long: 179.999999},
		{name: "Zero weight", lat: 10, long: 10, weight: 0},
		{name: "Negative altitude", lat: 10, long: 10, alt: -6_000_000},
		{name: "Latitude 91", lat: 91, long: 0, wantErr: ErrInvalidLatitude},
		{name: "Latitude -100", lat: -100, long: 0, wantErr: ErrInvalidLatitude},
		{name: "Latitude NaN", lat: math.NaN(), long: 0, wantErr: ErrInvalidLatitude},
		{name: "Longitude 180", lat: 0, long: 180, wantErr: ErrInvalidLongitude},
		{name: "Longitude -200", lat: 0, long: -200, wantErr: ErrInvalidLongitude},
		{name: "Longitude NaN", lat: 0, long: math.NaN(), wantErr: ErrInvalidLongitude},
		{name: "Altitude Inf", lat: 0, long: 0, alt: math.Inf(1), wantErr: ErrInvalidAltitude},
		{name: "Negative weight", lat: 0, long: 0, weight: -1, wantErr: ErrInvalidWeight},
		{name: "NaN weight", lat: 0, long: 0, weight: math.NaN(), wantErr: ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGeoPoint(tt.lat, tt.long, tt.alt, tt.weight)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected success, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewGeoPoint_LatitudeAndLongitudeErrorsAreDistinct(t *testing.T) {
	_, latErr := NewPoint(91, 0, 0)
	_, longErr := NewPoint(0, 180, 0)

	if errors.Is(latErr, ErrInvalidLongitude) {
		t.Error("Latitude failure should not match ErrInvalidLongitude")
	}
	if errors.Is(longErr, ErrInvalidLatitude) {
		t.Error("Longitude failure should not match ErrInvalidLatitude")
	}
}

func TestNewGeoPoint_Cartesian(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		long float64
		alt  float64
		want r3.Vec
	}{
		{name: "Null Island", lat: 0, long: 0, want: r3.Vec{X: EarthRadiusMeters}},
		{name: "Equator 90E", lat: 0, long: 90, want: r3.Vec{Y: EarthRadiusMeters}},
		{name: "North Pole", lat: 90, long: 0, want: r3.Vec{Z: EarthRadiusMeters}},
		{name: "South Pole 1km up", lat: -90, long: 0, alt: 1000, want: r3.Vec{Z: -(EarthRadiusMeters + 1000)}},
	}

	const tolerance = 1e-6
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPoint(tt.lat, tt.long, tt.alt)
			if err != nil {
				t.Fatalf("NewPoint failed: %v", err)
			}
			if d := r3.Norm(r3.Sub(p.Cartesian(), tt.want)); d > tolerance {
				t.Errorf("Cartesian() = %+v, want %+v (off by %v m)", p.Cartesian(), tt.want, d)
			}
			if math.Abs(p.Radius()-(EarthRadiusMeters+tt.alt)) > tolerance {
				t.Errorf("Radius() = %v, want %v", p.Radius(), EarthRadiusMeters+tt.alt)
			}
		})
	}
}

func TestNewGeoPoint_DerivedAngles(t *testing.T) {
	p := mustPoint(t, 30, -45, 0, 1)

	if math.Abs(p.PolarAngle()-math.Pi/3) > 1e-12 {
		t.Errorf("PolarAngle() = %v, want π/3", p.PolarAngle())
	}
	if math.Abs(p.Azimuth()+math.Pi/4) > 1e-12 {
		t.Errorf("Azimuth() = %v, want -π/4", p.Azimuth())
	}
}

func TestFromCartesian_RoundTrip(t *testing.T) {
	tests := []struct {
		lat  float64
		long float64
		alt  float64
	}{
		{51.895846, -2.114565, 0},
		{-33.8688, 151.2093, 120},
		{35.6762, 139.6503, -50},
		{0, -180, 0},
		{12.5, 179.5, 8848},
		{-89.9, 45, 0},
		{0, 0, -6_000_000},
	}

	const tolerance = 1e-6
	for _, tc := range tests {
		p := mustPoint(t, tc.lat, tc.long, tc.alt, 2.5)

		back, err := FromCartesian(p.Cartesian(), p.Weight())
		if err != nil {
			t.Fatalf("FromCartesian(%v) failed: %v", p, err)
		}
		if math.Abs(back.Latitude()-tc.lat) > tolerance {
			t.Errorf("Round trip lat: original %v, got %v", tc.lat, back.Latitude())
		}
		if math.Abs(back.Longitude()-tc.long) > tolerance {
			t.Errorf("Round trip long: original %v, got %v", tc.long, back.Longitude())
		}
		if math.Abs(back.Altitude()-tc.alt) > 1e-3 {
			t.Errorf("Round trip alt: original %v, got %v", tc.alt, back.Altitude())
		}
		if back.Weight() != 2.5 {
			t.Errorf("Round trip weight: got %v", back.Weight())
		}
	}
}

func TestFromCartesian_PolesKeepLatitude(t *testing.T) {
	for _, lat := range []float64{90, -90} {
		p := mustPoint(t, lat, 123, 0, 1)
		back, err := FromCartesian(p.Cartesian(), 1)
		if err != nil {
			t.Fatalf("FromCartesian failed: %v", err)
		}
		// Longitude is singular at the poles; only latitude is meaningful.
		if math.Abs(back.Latitude()-lat) > 1e-9 {
			t.Errorf("Expected latitude %v, got %v", lat, back.Latitude())
		}
	}
}

func TestFromCartesian_NegativeXAxisFoldsToWesternEdge(t *testing.T) {
	p, err := FromCartesian(r3.Vec{X: -EarthRadiusMeters}, 1)
	if err != nil {
		t.Fatalf("FromCartesian failed: %v", err)
	}
	if p.Longitude() != -180 {
		t.Errorf("Expected longitude -180, got %v", p.Longitude())
	}
}

func TestFromCartesian_Origin(t *testing.T) {
	_, err := FromCartesian(r3.Vec{}, 1)
	if !errors.Is(err, ErrDegenerateCenter) {
		t.Errorf("Expected ErrDegenerateCenter, got %v", err)
	}
}

func TestGeoPoint_Add_IsCartesianMass(t *testing.T) {
	a := mustPoint(t, 10, 20, 0, 1)
	b := mustPoint(t, -5, 40, 100, 3)

	m := a.Add(b)

	if m.Weight != 4 {
		t.Errorf("Expected combined weight 4, got %v", m.Weight)
	}
	want := r3.Add(r3.Scale(1, a.Cartesian()), r3.Scale(3, b.Cartesian()))
	if d := r3.Norm(r3.Sub(m.Moment, want)); d > 1e-6 {
		t.Errorf("Moment = %+v, want %+v", m.Moment, want)
	}

	// The sum stays in meters. Reading it as degrees would put the latitude
	// in the millions, which is exactly what a Mass prevents.
	center, err := m.Centroid()
	if err != nil {
		t.Fatalf("Centroid failed: %v", err)
	}
	if center.Latitude() < -5 || center.Latitude() > 10 {
		t.Errorf("Expected centroid latitude between inputs, got %v", center.Latitude())
	}
	if center.Longitude() < 20 || center.Longitude() > 40 {
		t.Errorf("Expected centroid longitude between inputs, got %v", center.Longitude())
	}
}

func TestGeoPoint_String(t *testing.T) {
	p := mustPoint(t, 51.895846, -2.114565, 0, 1)

	if got, want := p.String(), "(51.895846, -2.114565, 0, 1)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := p.FormatFixed(2), "(51.90, -2.11, 0.00, 1.00)"; got != want {
		t.Errorf("FormatFixed(2) = %q, want %q", got, want)
	}
}

func TestGeoPoint_MarshalJSON(t *testing.T) {
	p := mustPoint(t, 48.5, 2.25, 35, 2)

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if got, want := string(data), `{"lat":48.5,"long":2.25,"alt":35,"weight":2}`; got != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func BenchmarkNewGeoPoint(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewGeoPoint(51.895846, -2.114565, 0, 1)
	}
}
