// Package mocks provides mock implementations for testing the ticketdesk service.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	store := mocks.NewMockTicketStore(ctrl)
//	store.EXPECT().List(gomock.Any()).Return([]model.Ticket{}, nil)
package mocks

// Generate mock for TicketStore interface from internal/ports package.
// This creates MockTicketStore with methods for all TicketStore interface methods:
// Create, List, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ticket_store_mock.go github.com/target/ticketdesk-api/internal/ports TicketStore

// Generate mock for NutritionAnalyzer interface from internal/ports package.
// This creates MockNutritionAnalyzer with methods for all NutritionAnalyzer interface methods:
// Analyze
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=nutrition_analyzer_mock.go github.com/target/ticketdesk-api/internal/ports NutritionAnalyzer
