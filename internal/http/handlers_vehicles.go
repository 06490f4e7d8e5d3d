package httpx

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/target/ticketdesk-api/internal/domain/model"
	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

const vehiclePutResponse = "Vehicle PUT endpoint"

// VehicleHandlers serves the demo vehicle endpoints. Vehicles are not stored.
type VehicleHandlers struct {
	Logger *slog.Logger
}

func (h *VehicleHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func newVehicleID() *string {
	id := uuid.NewString()
	return &id
}

// Get handles GET /vehicle.
func (h *VehicleHandlers) Get(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, model.Vehicle{
		Manufacturer: "Dodge",
		Model:        "RAM 1560",
		Year:         2020,
		ID:           newVehicleID(),
	})
}

// Post handles POST /vehicle and echoes the vehicle with a fresh id.
func (h *VehicleHandlers) Post(w http.ResponseWriter, r *http.Request) {
	var v model.Vehicle
	if !DecodeJSON(w, r, &v) {
		return
	}
	h.logger().DebugContext(r.Context(), "vehicle posted",
		"manufacturer", v.Manufacturer, "model", v.Model, "year", v.Year)

	v.ID = newVehicleID()
	WriteJSON(w, http.StatusOK, v)
}

// Put handles PUT /vehicle.
func (h *VehicleHandlers) Put(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, vehiclePutResponse)
}

// PostQuery handles POST /vehicle2, binding the vehicle and its customer from
// the query string.
func (h *VehicleHandlers) PostQuery(w http.ResponseWriter, r *http.Request) {
	v, c, err := vehicleFromQuery(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	h.logger().DebugContext(r.Context(), "vehicle posted for customer",
		"first_name", c.FirstName, "last_name", c.LastName)

	v.ID = newVehicleID()
	WriteJSON(w, http.StatusOK, v)
}

func vehicleFromQuery(r *http.Request) (model.Vehicle, model.Customer, error) {
	q := r.URL.Query()
	for _, key := range []string{"manufacturer", "model", "year", "first_name", "last_name"} {
		if !q.Has(key) {
			return model.Vehicle{}, model.Customer{}, apperrors.ValidationField(key, key+" is required")
		}
	}

	year, err := strconv.ParseUint(q.Get("year"), 10, 16)
	if err != nil {
		return model.Vehicle{}, model.Customer{}, apperrors.ValidationField("year", "year must be between 0 and 65535")
	}

	v := model.Vehicle{
		Manufacturer: q.Get("manufacturer"),
		Model:        q.Get("model"),
		Year:         uint16(year),
	}
	c := model.Customer{FirstName: q.Get("first_name"), LastName: q.Get("last_name")}
	return v, c, nil
}
