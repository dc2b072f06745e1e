// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestQuantile(t *testing.T) {
	xs := []float64{15, 20, 35, 40, 50}
	for q, want := range map[float64]float64{
		-1:   15,
		0:    15,
		0.05: 16,
		0.25: 20,
		0.30: 23,
		0.40: 29,
		0.50: 35,
		0.95: 48,
		1:    50,
		2:    50,
	} {
		if got := Quantile(xs, q); !aeq(want, got) {
			t.Errorf("Quantile(%v): want %v, got %v", q, want, got)
		}
	}
	if got := Quantile(nil, 0.5); !math.IsNaN(got) {
		t.Errorf("Quantile of empty sample: want NaN, got %v", got)
	}
	if got := Quantile([]float64{7}, 0.75); got != 7 {
		t.Errorf("Quantile of single value: want 7, got %v", got)
	}
}

func TestQuartilesUnsorted(t *testing.T) {
	q1, med, q3 := Quartiles([]float64{100, 14, 10, 15, 12})
	if q1 != 12 || med != 14 || q3 != 15 {
		t.Errorf("want 12,14,15, got %v,%v,%v", q1, med, q3)
	}
}

func TestQuantileInfinite(t *testing.T) {
	q1, med, q3 := Quartiles([]float64{1, 2, 3, 4, inf})
	if q1 != 2 || med != 3 || q3 != 4 {
		t.Errorf("want 2,3,4, got %v,%v,%v", q1, med, q3)
	}
	if got := Quantile([]float64{-inf, 1, 2, 3, 4}, 0.25); got != 1 {
		t.Errorf("Q1 next to -Inf: want 1, got %v", got)
	}
	if got := Quantile([]float64{1, 2, 3, 4, inf}, 0.9); !math.IsInf(got, 1) {
		t.Errorf("interpolating toward +Inf: want +Inf, got %v", got)
	}
}
