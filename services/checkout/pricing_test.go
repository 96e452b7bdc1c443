package checkout

import (
	"errors"
	"testing"

	"bookeasy/models"
)

func TestPriceFor(t *testing.T) {
	tests := []struct {
		service string
		want    int64
	}{
		{service: models.ServiceConsultation, want: 15000},
		{service: models.ServiceStarter, want: 150000},
		{service: models.ServiceProfessional, want: 350000},
	}

	for _, tt := range tests {
		got, err := PriceFor(tt.service)
		if err != nil {
			t.Fatalf("PriceFor(%q) returned error: %v", tt.service, err)
		}
		if got != tt.want {
			t.Fatalf("PriceFor(%q) = %d, want %d", tt.service, got, tt.want)
		}
	}
}

func TestPriceForEnterprise(t *testing.T) {
	_, err := PriceFor(models.ServiceEnterprise)

	var unsupported *UnsupportedServiceError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedServiceError, got %v", err)
	}
	if unsupported.Service != models.ServiceEnterprise {
		t.Fatalf("unexpected service in error: %q", unsupported.Service)
	}
}

func TestPriceForUnknownTier(t *testing.T) {
	_, err := PriceFor("platinum")

	var invalid *InvalidServiceError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidServiceError, got %v", err)
	}
}

func TestLabelFor(t *testing.T) {
	if got := LabelFor(models.ServiceStarter); got != "Starter Package" {
		t.Fatalf("LabelFor(starter) = %q", got)
	}
	// Unknown tiers fall back to the raw value.
	if got := LabelFor("platinum"); got != "platinum" {
		t.Fatalf("LabelFor(platinum) = %q", got)
	}
}
