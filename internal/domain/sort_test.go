package domain

import (
	"slices"
	"testing"
)

func TestCompareFields(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want int
	}{
		{name: "first field decides", a: []string{"h1", "z"}, b: []string{"h2", "a"}, want: -1},
		{name: "later field decides", a: []string{"h1", "10.0.0.10"}, b: []string{"h1", "10.0.0.2"}, want: 1},
		{name: "all equal", a: []string{"h1", "443"}, b: []string{"h1", "443"}, want: 0},
		{name: "empty rows", a: nil, b: []string{}, want: 0},
		{name: "prefix row first", a: []string{"h1"}, b: []string{"h1", "x"}, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sign(CompareFields(tt.a, tt.b)); got != tt.want {
				t.Errorf("CompareFields(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSortRowsNaturalOrder(t *testing.T) {
	rows := []ServiceRow{
		{Host: "a10", Address: "10.0.0.1", Transport: "tcp", Port: "443", Service: "https"},
		{Host: "a2", Address: "10.0.0.1", Transport: "tcp", Port: "443", Service: "https"},
		{Host: "a2", Address: "10.0.0.1", Transport: "tcp", Port: "80", Service: "http"},
	}

	SortRows(rows)

	want := []string{"a2/80", "a2/443", "a10/443"}
	for i, r := range rows {
		if got := r.Host + "/" + r.Port; got != want[i] {
			t.Errorf("rows[%d] = %v, want %v", i, got, want[i])
		}
	}
}

func TestSortRowsIdempotent(t *testing.T) {
	rows := []ComponentRow{
		{ServiceRow: ServiceRow{Host: "h2"}, Component: "nginx", Version: "1.10"},
		{ServiceRow: ServiceRow{Host: "h1"}, Component: "openssl", Version: "3.0.2"},
		{ServiceRow: ServiceRow{Host: "h1"}, Component: "nginx", Version: "1.9"},
	}

	SortRows(rows)
	once := slices.Clone(rows)
	SortRows(rows)

	if !slices.Equal(once, rows) {
		t.Errorf("SortRows() not idempotent: %v then %v", once, rows)
	}
	if !IsSorted(rows) {
		t.Error("IsSorted() = false after SortRows()")
	}
	if rows[0].Version != "1.9" || rows[1].Version != "3.0.2" {
		t.Errorf("SortRows() order = %v", rows)
	}
}

func TestSortRowsStableForEqualRows(t *testing.T) {
	type tagged struct {
		ServiceRow
		tag int
	}
	rows := []tagged{
		{ServiceRow{Host: "h"}, 1},
		{ServiceRow{Host: "a"}, 2},
		{ServiceRow{Host: "h"}, 3},
	}

	SortRows(rows)

	if rows[1].tag != 1 || rows[2].tag != 3 {
		t.Errorf("SortRows() lost input order of equal rows: %v", rows)
	}
}

func TestSortLexical(t *testing.T) {
	values := []string{"b.example.com", "a10.example.com", "a2.example.com"}
	SortLexical(values)

	want := []string{"a10.example.com", "a2.example.com", "b.example.com"}
	if !slices.Equal(values, want) {
		t.Errorf("SortLexical() = %v, want %v", values, want)
	}
}
