package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/ticketdesk-api/internal/adapters/memstore"
	domainauth "github.com/target/ticketdesk-api/internal/domain/auth"
	"github.com/target/ticketdesk-api/internal/domain/model"
	"github.com/target/ticketdesk-api/internal/mocks"
	mockauth "github.com/target/ticketdesk-api/internal/mocks/auth"
	"github.com/target/ticketdesk-api/internal/service"
)


func newTestRouter(t *testing.T, mutate func(*RouterServices)) http.Handler {
	t.Helper()
	services := RouterServices{
		Auth:    service.NewAuthService(service.AuthServiceOptions{Verifier: mockauth.NewMockCredentialVerifier()}),
		Tickets: service.NewTicketService(service.TicketServiceOptions{Store: memstore.NewTicketStore(), Logger: discardLogger()}),
		Logger:  discardLogger(),
	}
	if mutate != nil {
		mutate(&services)
	}
	return NewRouter(services)
}

func do(t *testing.T, h http.Handler, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler) *http.Cookie {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/login", `{"username":"demo","password":"123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"result":{"success":true}}`, rec.Body.String())

	c := findCookie(rec.Result(), domainauth.CookieName)
	require.NotNil(t, c)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/", c.Path)
	tok, err := domainauth.ParseToken(c.Value)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), tok.UserID)
	return c
}

func TestRouter_EndToEnd(t *testing.T) {
	h := newTestRouter(t, nil)
	cookie := login(t, h)

	rec := do(t, h, http.MethodPost, "/api/tickets", `{"title":"first"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":0,"cid":1,"title":"first"}`, rec.Body.String())

	do(t, h, http.MethodPost, "/api/tickets", `{"title":"second"}`, cookie)
	do(t, h, http.MethodPost, "/api/tickets", `{"title":"third"}`, cookie)

	rec = do(t, h, http.MethodDelete, "/api/tickets/1", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"cid":1,"title":"second"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/tickets", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var tickets []model.Ticket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tickets))
	require.Len(t, tickets, 2)
	assert.Equal(t, uint64(0), tickets[0].ID)
	assert.Equal(t, uint64(2), tickets[1].ID)

	rec = do(t, h, http.MethodPost, "/api/tickets", `{"title":"fourth"}`, cookie)
	assert.JSONEq(t, `{"id":3,"cid":1,"title":"fourth"}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/api/tickets/1", "", cookie)
	requireEnvelope(t, rec, http.StatusBadRequest, TagInvalidParams)
}

func TestRouter_ProtectedWithoutCookie(t *testing.T) {
	h := newTestRouter(t, nil)

	for _, tc := range []struct{ method, target, body string }{
		{http.MethodGet, "/api/tickets", ""},
		{http.MethodPost, "/api/tickets", `{"title":"x"}`},
		{http.MethodDelete, "/api/tickets/0", ""},
	} {
		rec := do(t, h, tc.method, tc.target, tc.body)
		requireEnvelope(t, rec, http.StatusForbidden, TagNoAuth)
	}
}

func TestRouter_LoginFail(t *testing.T) {
	h := newTestRouter(t, nil)

	for _, body := range []string{
		`{"username":"demo","password":"nope"}`,
		`{"username":"nobody","password":"123"}`,
		`{"username":"","password":""}`,
	} {
		rec := do(t, h, http.MethodPost, "/api/login", body)
		requireEnvelope(t, rec, http.StatusForbidden, TagLoginFail)
		assert.Nil(t, findCookie(rec.Result(), domainauth.CookieName))
	}
}

func TestRouter_InvalidBodies(t *testing.T) {
	h := newTestRouter(t, nil)
	cookie := login(t, h)

	requireEnvelope(t, do(t, h, http.MethodPost, "/api/login", `{not json`), http.StatusBadRequest, TagInvalidParams)
	requireEnvelope(t, do(t, h, http.MethodPost, "/api/tickets", `{"title":""}`, cookie), http.StatusBadRequest, TagInvalidParams)
	requireEnvelope(t, do(t, h, http.MethodDelete, "/api/tickets/abc", "", cookie), http.StatusBadRequest, TagInvalidParams)
}

func TestRouter_Logoff(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/api/logoff", `{"logoff":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":{"logged_off":true}}`, rec.Body.String())
	c := findCookie(rec.Result(), domainauth.CookieName)
	require.NotNil(t, c)
	assert.Less(t, c.MaxAge, 0)

	rec = do(t, h, http.MethodPost, "/api/logoff", `{"logoff":false}`)
	assert.JSONEq(t, `{"result":{"logged_off":false}}`, rec.Body.String())
	assert.Nil(t, findCookie(rec.Result(), domainauth.CookieName))
}

func TestRouter_Hello(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, "Hello, World!", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/hello", "")
	assert.Equal(t, "<h1>Hello, <strong>World!!!</strong></h1>", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	rec = do(t, h, http.MethodGet, "/hello?name=pinku", "")
	assert.Equal(t, "<h1>Hello, <strong>pinku</strong></h1>", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/hello2/mike", "")
	assert.Equal(t, "<h1>Hello, <strong>mike</strong></h1>", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/hello?name=%3Cscript%3E", "")
	assert.NotContains(t, rec.Body.String(), "<script>")
}

func TestRouter_Vehicles(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodGet, "/vehicle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var v model.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, "Dodge", v.Manufacturer)
	assert.Equal(t, "RAM 1560", v.Model)
	assert.Equal(t, uint16(2020), v.Year)
	require.NotNil(t, v.ID)

	rec = do(t, h, http.MethodPost, "/vehicle", `{"manufacturer":"Tesla","model":"Y","year":2024,"id":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var posted model.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posted))
	assert.Equal(t, "Tesla", posted.Manufacturer)
	require.NotNil(t, posted.ID)
	assert.NotEqual(t, *v.ID, *posted.ID)

	rec = do(t, h, http.MethodPut, "/vehicle", "")
	assert.Equal(t, "Vehicle PUT endpoint", rec.Body.String())

	rec = do(t, h, http.MethodPost, "/vehicle2?manufacturer=Ford&model=F150&year=2019&first_name=Ada&last_name=L", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var q model.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, "Ford", q.Manufacturer)
	assert.Equal(t, uint16(2019), q.Year)
	assert.NotNil(t, q.ID)

	rec = do(t, h, http.MethodPost, "/vehicle2?manufacturer=Ford&model=F150&year=99999&first_name=Ada&last_name=L", "")
	requireEnvelope(t, rec, http.StatusBadRequest, TagInvalidParams)

	rec = do(t, h, http.MethodPost, "/vehicle2?manufacturer=Ford", "")
	requireEnvelope(t, rec, http.StatusBadRequest, TagInvalidParams)
}

func TestRouter_AnalyzeImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockNutritionAnalyzer(ctrl)
	analyzer.EXPECT().Analyze(gomock.Any(), "aGVsbG8=").Return(model.NutritionResponse{
		Foods: []model.FoodItem{{Name: "Apple", Calories: 95}},
	}, nil)

	h := newTestRouter(t, func(s *RouterServices) {
		s.Nutrition = service.NewNutritionService(service.NutritionServiceOptions{Analyzer: analyzer})
	})

	rec := do(t, h, http.MethodPost, "/analyze-image", `{"image":"data:image/jpeg;base64,aGVsbG8="}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp model.NutritionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Foods, 1)
	assert.Equal(t, "Apple", resp.Foods[0].Name)
}

func TestRouter_AnalyzeImageDisabled(t *testing.T) {
	h := newTestRouter(t, func(s *RouterServices) {
		s.Nutrition = service.NewNutritionService(service.NutritionServiceOptions{})
	})

	rec := do(t, h, http.MethodPost, "/analyze-image", `{"image":"aGVsbG8="}`)
	requireEnvelope(t, rec, http.StatusInternalServerError, TagServiceError)
}

func TestRouter_StaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<p>home</p>"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o600))

	h := newTestRouter(t, func(s *RouterServices) { s.WebFolder = dir })

	rec := do(t, h, http.MethodGet, "/pub/assets/app.js", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/pub/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>home</p>", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/pub/assets/", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/pub/missing.txt", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Healthz(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"status":"ok"}`, rec.Body.String())
}
