package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TECHBREW-hub/TravelSure/internal/adapters/memory/clock"
	memidem "github.com/TECHBREW-hub/TravelSure/internal/adapters/memory/idempotency"
	memsessions "github.com/TECHBREW-hub/TravelSure/internal/adapters/memory/sessionstore"
	"github.com/TECHBREW-hub/TravelSure/internal/adapters/simulated/authprovider"
	"github.com/TECHBREW-hub/TravelSure/internal/adapters/simulated/paymentprovider"
	"github.com/TECHBREW-hub/TravelSure/internal/adapters/static/catalogsource"
	"github.com/TECHBREW-hub/TravelSure/internal/app/bookings"
	"github.com/TECHBREW-hub/TravelSure/internal/app/search"
	"github.com/TECHBREW-hub/TravelSure/internal/app/session"
	"github.com/TECHBREW-hub/TravelSure/internal/app/store"
)

const testSecret = "handler-test-secret"

type testEnv struct {
	store   *store.Store
	handler http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.New()

	catalog, err := catalogsource.NewSource().Load(context.Background())
	require.NoError(t, err)
	st.Dispatch(store.SetDestinations{Destinations: catalog.Destinations})
	st.Dispatch(store.SetPackages{Packages: catalog.Packages})
	st.Dispatch(store.SetHotels{Hotels: catalog.Hotels})
	st.Dispatch(store.SetExperiences{Experiences: catalog.Experiences})

	clk := clock.NewManualClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	sessionSvc := session.NewService(st, memsessions.NewStore(), authprovider.NewProvider(0))
	bookingSvc := bookings.NewService(st, paymentprovider.NewProvider(0, clk), clk)

	srv := NewServer(st, sessionSvc, search.NewService(st), bookingSvc, memidem.NewStore(), slog.New(slog.NewTextHandler(io.Discard, nil)), testSecret, time.Hour)
	return &testEnv{store: st, handler: NewRouter(srv, testSecret)}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return e.doWithHeaders(t, method, path, token, body, nil)
}

func (e *testEnv) doWithHeaders(t *testing.T, method, path, token string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/v1/auth/login", "", LoginRequest{Email: "john@example.com", Password: "hunter2"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func dateOf(year int, month time.Month, day int) openapi_types.Date {
	return openapi_types.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func bookingPayload() CreateBookingRequest {
	price := int64(12999)
	return CreateBookingRequest{
		Type: "package",
		Item: BookingItemDTO{Package: &PackageDTO{
			Id:            "1",
			DestinationId: "1",
			Name:          "Goa Beach Paradise",
			Duration:      "4 Days / 3 Nights",
			Price:         price,
		}},
		TravelDate:  dateOf(2025, 7, 15),
		Guests:      2,
		TotalAmount: price,
		Payment: PaymentInstrumentDTO{
			Method: "upi",
			Upi:    &UPIInstrumentDTO{UpiId: "john@okbank", App: "gpay"},
		},
	}
}

func TestLogin_EstablishesSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/auth/login", "", LoginRequest{Email: "john@example.com", Password: "hunter2"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1", resp.User.Id)
	assert.Equal(t, "John Doe", resp.User.Name)
	assert.Equal(t, "john@example.com", string(resp.User.Email))
	assert.NotEmpty(t, resp.Token)

	snap := env.store.Snapshot()
	require.NotNil(t, snap.User)
	assert.True(t, snap.IsAuthenticated)
}

func TestLogin_RejectsBadEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{"email": "not-an-email", "password": "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestRegister_NormalizesName(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/auth/register", "", RegisterRequest{
		Name:     "  Priya   Sharma ",
		Email:    "priya@example.com",
		Phone:    "+91 9000000000",
		Password: "hunter2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Priya Sharma", resp.User.Name)
}

func TestMe_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_InvalidatesToken(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The token's signature is still valid but no session matches it.
	rec = env.do(t, http.MethodGet, "/v1/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SESSION_MISMATCH", resp.Error.Code)
}

func TestCatalog_PublicAndFiltered(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/v1/destinations", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dests DestinationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dests))
	assert.NotEmpty(t, dests.Destinations)

	// Package search resolves destination names: "kerala" matches a package
	// bound to the Kerala destination even without "kerala" in its own text.
	rec = env.do(t, http.MethodGet, "/v1/packages?q=kerala", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pkgs PackageListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pkgs))
	require.NotEmpty(t, pkgs.Packages)

	rec = env.do(t, http.MethodGet, "/v1/hotels?q=zzzznothing", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var hotels HotelListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hotels))
	assert.Empty(t, hotels.Hotels)
	assert.NotNil(t, hotels.Hotels)
}

func TestPatchSearch_TriState(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPatch, "/v1/search", token, map[string]any{
		"query":  "goa",
		"guests": 3,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var crit SearchCriteriaDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &crit))
	assert.Equal(t, "goa", crit.Query)
	assert.Equal(t, 3, crit.Guests)

	// Null resets the query; absent guests stay at 3.
	rec = env.do(t, http.MethodPatch, "/v1/search", token, map[string]any{"query": nil})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &crit))
	assert.Equal(t, "", crit.Query)
	assert.Equal(t, 3, crit.Guests)
}

func TestPatchSearch_RejectsZeroGuests(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPatch, "/v1/search", token, map[string]any{"guests": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateBooking_FullFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/v1/bookings", token, bookingPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Booking.Status)
	assert.Equal(t, "paid", resp.Booking.PaymentStatus)
	assert.Equal(t, "1", resp.Booking.UserId)
	require.NotNil(t, resp.Booking.Payment)
	assert.Equal(t, "upi", resp.Booking.Payment.Method)
	assert.NotEmpty(t, resp.Booking.Payment.OrderId)

	rec = env.do(t, http.MethodGet, "/v1/bookings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Bookings, 1)
}

func TestCreateBooking_IdempotencyReplay(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)
	payload := bookingPayload()

	headers := map[string]string{"Idempotency-Key": "key-1"}
	rec := env.doWithHeaders(t, http.MethodPost, "/v1/bookings", token, payload, headers)
	require.Equal(t, http.StatusCreated, rec.Code)
	var first BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))

	// Same key, same payload: replayed, no second booking.
	rec = env.doWithHeaders(t, http.MethodPost, "/v1/bookings", token, payload, headers)
	require.Equal(t, http.StatusCreated, rec.Code)
	var second BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, first.Booking.Id, second.Booking.Id)

	rec = env.do(t, http.MethodGet, "/v1/bookings", token, nil)
	var list BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Bookings, 1)

	// Same key, different payload: rejected.
	payload.Guests = 5
	rec = env.doWithHeaders(t, http.MethodPost, "/v1/bookings", token, payload, headers)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateBooking_InvalidInstrument(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	payload := bookingPayload()
	payload.Payment = PaymentInstrumentDTO{
		Method: "upi",
		Upi:    &UPIInstrumentDTO{UpiId: "no-at-sign", App: "gpay"},
	}

	rec := env.do(t, http.MethodPost, "/v1/bookings", token, payload)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCancelBooking(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/v1/bookings", token, bookingPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = env.do(t, http.MethodPost, "/v1/bookings/"+created.Booking.Id+"/cancel", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cancelled BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cancelled))
	assert.Equal(t, "cancelled", cancelled.Booking.Status)

	// Cancelling again is a no-op.
	rec = env.do(t, http.MethodPost, "/v1/bookings/"+created.Booking.Id+"/cancel", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelBooking_NotFound(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/v1/bookings/nope/cancel", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BOOKING_NOT_FOUND", resp.Error.Code)
}

func TestLogout_ClearsBookings(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/v1/bookings", token, bookingPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Sign back in: bookings are session-scoped and gone.
	token = env.login(t)
	rec = env.do(t, http.MethodGet, "/v1/bookings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list.Bookings)
}
