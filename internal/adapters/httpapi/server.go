package httpapi

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/TECHBREW-hub/TravelSure/internal/app/bookings"
	"github.com/TECHBREW-hub/TravelSure/internal/app/search"
	"github.com/TECHBREW-hub/TravelSure/internal/app/session"
	"github.com/TECHBREW-hub/TravelSure/internal/app/store"
	"github.com/TECHBREW-hub/TravelSure/internal/domain"
	"github.com/TECHBREW-hub/TravelSure/internal/platform/auth/sessiontoken"
	"github.com/TECHBREW-hub/TravelSure/internal/ports/out/idempotency"
)

// Server is the HTTP adapter over the storefront services. It serves a single
// storefront session: auth endpoints replace the session, and the protected
// endpoints operate on whoever is currently signed in.
type Server struct {
	Store    *store.Store
	Sessions *session.Service
	Search   *search.Service
	Bookings *bookings.Service
	Idem     idempotency.Store

	Log *slog.Logger

	jwtSecret string
	tokenTTL  time.Duration
}

func NewServer(st *store.Store, sessions *session.Service, searchSvc *search.Service, bookingsSvc *bookings.Service, idem idempotency.Store, log *slog.Logger, jwtSecret string, tokenTTL time.Duration) *Server {
	return &Server{
		Store:     st,
		Sessions:  sessions,
		Search:    searchSvc,
		Bookings:  bookingsSvc,
		Idem:      idem,
		Log:       log,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "malformed request body", nil)
		return
	}

	u, err := s.Sessions.Login(r.Context(), string(req.Email), req.Password)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	s.writeAuthResponse(w, r, http.StatusOK, u)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "malformed request body", nil)
		return
	}

	u, err := s.Sessions.Register(r.Context(), session.RegisterInput{
		Name:     req.Name,
		Email:    string(req.Email),
		Phone:    req.Phone,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	s.writeAuthResponse(w, r, http.StatusCreated, u)
}

func (s *Server) writeAuthResponse(w http.ResponseWriter, r *http.Request, status int, u domain.User) {
	tok, err := sessiontoken.Mint(u, s.jwtSecret, s.tokenTTL)
	if err != nil {
		s.Log.Error("mint session token", "err", err)
		writeError(w, r, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
		return
	}
	writeJSON(w, status, AuthResponse{User: userFromDomain(u), Token: tok})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.Sessions.Logout(r.Context()); err != nil {
		s.Log.Error("clear durable session", "err", err)
		writeError(w, r, http.StatusInternalServerError, "SESSION_CLEAR_FAILED", "failed to clear the durable session", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	snap := s.Store.Snapshot()
	if snap.User == nil {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "no active session", nil)
		return
	}
	writeJSON(w, http.StatusOK, MeResponse{User: userFromDomain(*snap.User)})
}

func (s *Server) handleListDestinations(w http.ResponseWriter, r *http.Request) {
	ds := s.Search.Destinations()
	out := make([]DestinationDTO, 0, len(ds))
	for _, d := range ds {
		out = append(out, destinationFromDomain(d))
	}
	writeJSON(w, http.StatusOK, DestinationListResponse{Destinations: out})
}

func (s *Server) handleListPackages(w http.ResponseWriter, r *http.Request) {
	ps := s.Search.Packages(r.URL.Query().Get("q"))
	out := make([]PackageDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, packageFromDomain(p))
	}
	writeJSON(w, http.StatusOK, PackageListResponse{Packages: out})
}

func (s *Server) handleListHotels(w http.ResponseWriter, r *http.Request) {
	hs := s.Search.Hotels(r.URL.Query().Get("q"))
	out := make([]HotelDTO, 0, len(hs))
	for _, h := range hs {
		out = append(out, hotelFromDomain(h))
	}
	writeJSON(w, http.StatusOK, HotelListResponse{Hotels: out})
}

func (s *Server) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	es := s.Search.Experiences(r.URL.Query().Get("q"))
	out := make([]ExperienceDTO, 0, len(es))
	for _, e := range es {
		out = append(out, experienceFromDomain(e))
	}
	writeJSON(w, http.StatusOK, ExperienceListResponse{Experiences: out})
}

func (s *Server) handleGetSearch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, searchCriteriaFromDomain(s.Store.Snapshot().Search))
}

// handlePatchSearch applies tri-state updates to the transient search state:
// absent fields are untouched, nulls reset to the initial value, values
// replace.
func (s *Server) handlePatchSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "malformed request body", nil)
		return
	}

	if req.Query.IsSpecified() {
		q := ""
		if !req.Query.IsNull() {
			q, _ = req.Query.Get()
		}
		s.Store.Dispatch(store.SetSearchQuery{Query: q})
	}
	if req.SelectedDestination.IsSpecified() {
		id := ""
		if !req.SelectedDestination.IsNull() {
			id, _ = req.SelectedDestination.Get()
		}
		s.Store.Dispatch(store.SetSelectedDestination{DestinationID: domain.DestinationID(id)})
	}
	if req.Dates.IsSpecified() {
		var dr domain.DateRange
		if !req.Dates.IsNull() {
			v, _ := req.Dates.Get()
			dr = dateRangeToDomain(v)
		}
		s.Store.Dispatch(store.SetDateRange{Dates: dr})
	}
	if req.Guests.IsSpecified() {
		g := 1
		if !req.Guests.IsNull() {
			g, _ = req.Guests.Get()
		}
		if g < 1 {
			writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid guest count", map[string]any{"guests": "must be at least 1"})
			return
		}
		s.Store.Dispatch(store.SetGuests{Guests: g})
	}

	writeJSON(w, http.StatusOK, searchCriteriaFromDomain(s.Store.Snapshot().Search))
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	bs, err := s.Bookings.List(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]BookingDTO, 0, len(bs))
	for _, b := range bs {
		out = append(out, bookingFromDomain(b))
	}
	writeJSON(w, http.StatusOK, BookingListResponse{Bookings: out})
}

func (s *Server) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	id := domain.BookingID(chi.URLParam(r, "bookingId"))
	b, err := s.Bookings.Get(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, BookingResponse{Booking: bookingFromDomain(b)})
}

// handleCreateBooking runs the full purchase flow. An optional
// Idempotency-Key header makes retries safe: the same key with the same
// payload replays the first response, the same key with a different payload
// is rejected.
func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing subject", nil)
		return
	}

	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "malformed request body", nil)
		return
	}

	idemKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	var bodyHash string
	if idemKey != "" && s.Idem != nil {
		var err error
		bodyHash, err = hashCreateBookingBody(req)
		if err != nil {
			s.Log.Error("hash booking body", "err", err)
			writeError(w, r, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
			return
		}

		metaFP := idempotency.Fingerprint{
			Key:      idempotency.Key(idemKey),
			UserID:   userID,
			Method:   http.MethodPost,
			Route:    "/v1/bookings",
			BodyHash: "",
		}
		if meta, found, err := s.Idem.Get(r.Context(), metaFP); err != nil {
			s.Log.Error("idempotency lookup", "err", err)
			writeError(w, r, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
			return
		} else if found {
			if string(meta.Body) != bodyHash {
				writeError(w, r, http.StatusConflict, "IDEMPOTENCY_KEY_REUSE", "idempotency key reuse with different payload", nil)
				return
			}
		} else {
			_ = s.Idem.Put(r.Context(), metaFP, idempotency.Record{
				ContentType: "text/plain",
				Body:        []byte(bodyHash),
				CreatedAt:   time.Now().UTC(),
			})
		}

		respFP := metaFP
		respFP.BodyHash = bodyHash
		if rec, found, err := s.Idem.Get(r.Context(), respFP); err != nil {
			s.Log.Error("idempotency lookup", "err", err)
			writeError(w, r, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
			return
		} else if found && rec.StatusCode == http.StatusCreated {
			w.Header().Set("Content-Type", rec.ContentType)
			w.WriteHeader(rec.StatusCode)
			_, _ = w.Write(rec.Body)
			return
		}
	}

	draft := bookings.Draft{
		Type:        domain.BookingType(req.Type),
		Item:        bookingItemToDomain(req.Item),
		TravelDate:  req.TravelDate.Time,
		Guests:      req.Guests,
		TotalAmount: req.TotalAmount,
	}
	ins := instrumentFromDTO(req.Payment)

	b, err := s.Bookings.Purchase(r.Context(), draft, ins)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	resp := BookingResponse{Booking: bookingFromDomain(b)}
	if idemKey != "" && s.Idem != nil {
		respFP := idempotency.Fingerprint{
			Key:      idempotency.Key(idemKey),
			UserID:   userID,
			Method:   http.MethodPost,
			Route:    "/v1/bookings",
			BodyHash: bodyHash,
		}
		if body, err := json.Marshal(resp); err == nil {
			_ = s.Idem.Put(r.Context(), respFP, idempotency.Record{
				StatusCode:  http.StatusCreated,
				ContentType: "application/json",
				Body:        body,
				CreatedAt:   time.Now().UTC(),
			})
		}
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	id := domain.BookingID(chi.URLParam(r, "bookingId"))
	found, err := s.Bookings.Cancel(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	if !found {
		writeError(w, r, http.StatusNotFound, "BOOKING_NOT_FOUND", "booking not found", nil)
		return
	}

	b, err := s.Bookings.Get(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, BookingResponse{Booking: bookingFromDomain(b)})
}

func instrumentFromDTO(p PaymentInstrumentDTO) bookings.Instrument {
	out := bookings.Instrument{Method: domain.PaymentMethod(p.Method)}
	if p.Upi != nil {
		out.UPI = &bookings.UPIInstrument{VPA: p.Upi.UpiId, App: p.Upi.App}
	}
	if p.NetBanking != nil {
		out.NetBanking = &bookings.NetBankingInstrument{Bank: p.NetBanking.Bank, UserID: p.NetBanking.UserId}
	}
	if p.Card != nil {
		out.Card = &bookings.CardInstrument{
			Number: p.Card.Number,
			Expiry: p.Card.Expiry,
			CVV:    p.Card.Cvv,
			Holder: p.Card.Holder,
		}
	}
	return out
}

func hashCreateBookingBody(req CreateBookingRequest) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
