package checkout

import "bookeasy/models"

// prices maps each bookable tier to its price in minor currency units
// (USD cents). Enterprise is deliberately absent: it has no fixed price
// and must never reach the payment processor.
var prices = map[string]int64{
	models.ServiceConsultation: 15000,  // $150.00
	models.ServiceStarter:      150000, // $1,500.00
	models.ServiceProfessional: 350000, // $3,500.00
}

// labels maps tiers to the product name shown on the hosted checkout page.
var labels = map[string]string{
	models.ServiceConsultation: "Initial Consultation",
	models.ServiceStarter:      "Starter Package",
	models.ServiceProfessional: "Professional Package",
	models.ServiceEnterprise:   "Enterprise Engagement",
}

// PriceFor resolves a service tier to its unit amount. Unknown tiers and
// the enterprise tier both fail before any external call is made.
func PriceFor(service string) (int64, error) {
	if service == models.ServiceEnterprise {
		return 0, &UnsupportedServiceError{Service: service}
	}
	amount, ok := prices[service]
	if !ok {
		return 0, &InvalidServiceError{Service: service}
	}
	return amount, nil
}

// LabelFor returns the display label for a tier, falling back to the raw
// value for safety.
func LabelFor(service string) string {
	if label, ok := labels[service]; ok {
		return label
	}
	return service
}
