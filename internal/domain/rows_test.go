package domain

import (
	"slices"
	"testing"
)

func TestRowProjections(t *testing.T) {
	svc := &Service{
		ID: "S1", Host: "h1", Address: "10.0.0.1", Transport: "tcp",
		Port: "443", Name: "https", ChainID: "C1",
	}
	entry := &ChainEntry{
		ChainID: "C1", Depth: "1", Level: 1, Subject: "CN=ca", Issuer: "CN=root",
		NotValidBefore: "2024-01-01", NotValidAfter: "2030-01-01",
	}
	comp := &Component{ID: "K1", Name: "nginx", Version: "2.0"}

	tests := []struct {
		name string
		row  Row
		want []string
	}{
		{
			name: "service",
			row:  NewServiceRow(svc),
			want: []string{"h1", "10.0.0.1", "tcp", "443", "https"},
		},
		{
			name: "certificate",
			row:  NewCertificateRow(svc, entry),
			want: []string{"h1", "10.0.0.1", "tcp", "443", "https", "1", "CN=ca", "CN=root", "2024-01-01", "2030-01-01"},
		},
		{
			name: "component",
			row:  NewComponentRow(svc, comp),
			want: []string{"h1", "10.0.0.1", "tcp", "443", "https", "nginx", "2.0"},
		},
		{
			name: "san",
			row:  SanRow("www.example.com"),
			want: []string{"www.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.Fields(); !slices.Equal(got, tt.want) {
				t.Errorf("Fields() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestServiceHasChain(t *testing.T) {
	if (&Service{}).HasChain() {
		t.Error("HasChain() = true for empty ChainID")
	}
	if !(&Service{ChainID: "C1"}).HasChain() {
		t.Error("HasChain() = false for ChainID C1")
	}
}
