package domain

import (
	"math"
	"testing"
)

func TestDistanceKmZeroForIdenticalPoints(t *testing.T) {
	p := Coordinates{Lon: -9.1393, Lat: 38.7223}
	if d := DistanceKm(p, p); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := Coordinates{Lon: -9.1393, Lat: 38.7223}
	b := Coordinates{Lon: 139.6917, Lat: 35.6895}

	ab := DistanceKm(a, b)
	ba := DistanceKm(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: a->b=%v b->a=%v", ab, ba)
	}
	if ab <= 0 {
		t.Fatalf("distance between distinct points = %v, want > 0", ab)
	}
}

func TestDistanceKmOneDegreeOfLatitude(t *testing.T) {
	a := Coordinates{Lon: 0, Lat: 0}
	b := Coordinates{Lon: 0, Lat: 1}

	const want = 111.2
	got := DistanceKm(a, b)
	if math.Abs(got-want)/want > 0.01 {
		t.Fatalf("one degree of latitude = %v km, want %v km (±1%%)", got, want)
	}
}
