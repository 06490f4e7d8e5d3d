//revive:disable-next-line:var-naming // legacy package name used across the project
package model

// Vehicle is the demo vehicle resource. ID is assigned by the server.
type Vehicle struct {
	Manufacturer string  `json:"manufacturer"`
	Model        string  `json:"model"`
	Year         uint16  `json:"year"`
	ID           *string `json:"id"`
}

// Customer is bound from the query string of the vehicle2 endpoint.
type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
