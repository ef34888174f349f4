package httpapi

import (
	"time"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
)

// Wire types mirror the storefront's JSON shapes: camelCase keys, prices in
// whole INR, dates as RFC 3339 timestamps except where noted.

type UserDTO struct {
	Id     string              `json:"id"`
	Name   string              `json:"name"`
	Email  openapi_types.Email `json:"email"`
	Phone  string              `json:"phone"`
	Avatar *string             `json:"avatar,omitempty"`
}

type LoginRequest struct {
	Email    openapi_types.Email `json:"email"`
	Password string              `json:"password"`
}

type RegisterRequest struct {
	Name     string              `json:"name"`
	Email    openapi_types.Email `json:"email"`
	Phone    string              `json:"phone"`
	Password string              `json:"password"`
	Avatar   *string             `json:"avatar,omitempty"`
}

type AuthResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

type MeResponse struct {
	User UserDTO `json:"user"`
}

type DestinationDTO struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	State         string   `json:"state"`
	Country       string   `json:"country"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	StartingPrice int64    `json:"startingPrice"`
	Description   string   `json:"description"`
	Highlights    []string `json:"highlights"`
}

type PackageDTO struct {
	Id            string   `json:"id"`
	DestinationId string   `json:"destinationId"`
	Name          string   `json:"name"`
	Duration      string   `json:"duration"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Includes      []string `json:"includes"`
	Description   string   `json:"description"`
	Itinerary     []string `json:"itinerary"`
}

type HotelDTO struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
}

type ExperienceDTO struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Duration      string   `json:"duration"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Highlights    []string `json:"highlights"`
}

type DateRangeDTO struct {
	From *openapi_types.Date `json:"from,omitempty"`
	To   *openapi_types.Date `json:"to,omitempty"`
}

type SearchCriteriaDTO struct {
	Query               string       `json:"query"`
	SelectedDestination string       `json:"selectedDestination"`
	Dates               DateRangeDTO `json:"dates"`
	Guests              int          `json:"guests"`
}

// SearchPatchRequest carries tri-state fields: absent leaves the criterion
// unchanged, null resets it, a value replaces it.
type SearchPatchRequest struct {
	Query               nullable.Nullable[string]       `json:"query,omitempty"`
	SelectedDestination nullable.Nullable[string]       `json:"selectedDestination,omitempty"`
	Dates               nullable.Nullable[DateRangeDTO] `json:"dates,omitempty"`
	Guests              nullable.Nullable[int]          `json:"guests,omitempty"`
}

type BookingItemDTO struct {
	Package    *PackageDTO    `json:"package,omitempty"`
	Hotel      *HotelDTO      `json:"hotel,omitempty"`
	Experience *ExperienceDTO `json:"experience,omitempty"`
}

type UPIInstrumentDTO struct {
	UpiId string `json:"upiId"`
	App   string `json:"app"`
}

type NetBankingInstrumentDTO struct {
	Bank   string `json:"bank"`
	UserId string `json:"userId"`
}

type CardInstrumentDTO struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	Cvv    string `json:"cvv"`
	Holder string `json:"holder"`
}

type PaymentInstrumentDTO struct {
	Method     string                   `json:"method"`
	Upi        *UPIInstrumentDTO        `json:"upi,omitempty"`
	NetBanking *NetBankingInstrumentDTO `json:"netbanking,omitempty"`
	Card       *CardInstrumentDTO       `json:"card,omitempty"`
}

type CreateBookingRequest struct {
	Type        string               `json:"type"`
	Item        BookingItemDTO       `json:"item"`
	TravelDate  openapi_types.Date   `json:"travelDate"`
	Guests      int                  `json:"guests"`
	TotalAmount int64                `json:"totalAmount"`
	Payment     PaymentInstrumentDTO `json:"payment"`
}

type PaymentDetailsDTO struct {
	Method     string                   `json:"method"`
	PaymentId  string                   `json:"paymentId"`
	OrderId    string                   `json:"orderId"`
	Signature  string                   `json:"signature"`
	Amount     int64                    `json:"amount"`
	PaidAt     time.Time                `json:"paidAt"`
	Upi        *UPIDetailsDTO           `json:"upi,omitempty"`
	NetBanking *NetBankingInstrumentDTO `json:"netbanking,omitempty"`
	Card       *CardDetailsDTO          `json:"card,omitempty"`
}

type UPIDetailsDTO struct {
	UpiId string `json:"upiId"`
	App   string `json:"app"`
}

type CardDetailsDTO struct {
	MaskedNumber string `json:"maskedNumber"`
	Holder       string `json:"holder"`
}

type BookingDTO struct {
	Id            string             `json:"id"`
	Type          string             `json:"type"`
	UserId        string             `json:"userId"`
	Item          BookingItemDTO     `json:"item"`
	Status        string             `json:"status"`
	BookingDate   time.Time          `json:"bookingDate"`
	TravelDate    openapi_types.Date `json:"travelDate"`
	Guests        int                `json:"guests"`
	TotalAmount   int64              `json:"totalAmount"`
	PaymentStatus string             `json:"paymentStatus"`
	Payment       *PaymentDetailsDTO `json:"payment,omitempty"`
}

type BookingResponse struct {
	Booking BookingDTO `json:"booking"`
}

type BookingListResponse struct {
	Bookings []BookingDTO `json:"bookings"`
}

type DestinationListResponse struct {
	Destinations []DestinationDTO `json:"destinations"`
}

type PackageListResponse struct {
	Packages []PackageDTO `json:"packages"`
}

type HotelListResponse struct {
	Hotels []HotelDTO `json:"hotels"`
}

type ExperienceListResponse struct {
	Experiences []ExperienceDTO `json:"experiences"`
}

func userFromDomain(u domain.User) UserDTO {
	return UserDTO{
		Id:     string(u.ID),
		Name:   u.Name,
		Email:  openapi_types.Email(u.Email),
		Phone:  u.Phone,
		Avatar: u.Avatar,
	}
}

func destinationFromDomain(d domain.Destination) DestinationDTO {
	return DestinationDTO{
		Id:            string(d.ID),
		Name:          d.Name,
		State:         d.State,
		Country:       d.Country,
		Image:         d.Image,
		Rating:        d.Rating,
		ReviewCount:   d.ReviewCount,
		StartingPrice: d.StartingPrice,
		Description:   d.Description,
		Highlights:    d.Highlights,
	}
}

func packageFromDomain(p domain.TravelPackage) PackageDTO {
	return PackageDTO{
		Id:            string(p.ID),
		DestinationId: string(p.DestinationID),
		Name:          p.Name,
		Duration:      p.Duration,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Includes:      p.Includes,
		Description:   p.Description,
		Itinerary:     p.Itinerary,
	}
}

func packageToDomain(p PackageDTO) domain.TravelPackage {
	return domain.TravelPackage{
		ID:            domain.PackageID(p.Id),
		DestinationID: domain.DestinationID(p.DestinationId),
		Name:          p.Name,
		Duration:      p.Duration,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Includes:      p.Includes,
		Description:   p.Description,
		Itinerary:     p.Itinerary,
	}
}

func hotelFromDomain(h domain.Hotel) HotelDTO {
	return HotelDTO{
		Id:            string(h.ID),
		Name:          h.Name,
		Location:      h.Location,
		Price:         h.Price,
		OriginalPrice: h.OriginalPrice,
		Image:         h.Image,
		Rating:        h.Rating,
		ReviewCount:   h.ReviewCount,
		Amenities:     h.Amenities,
		Description:   h.Description,
	}
}

func hotelToDomain(h HotelDTO) domain.Hotel {
	return domain.Hotel{
		ID:            domain.HotelID(h.Id),
		Name:          h.Name,
		Location:      h.Location,
		Price:         h.Price,
		OriginalPrice: h.OriginalPrice,
		Image:         h.Image,
		Rating:        h.Rating,
		ReviewCount:   h.ReviewCount,
		Amenities:     h.Amenities,
		Description:   h.Description,
	}
}

func experienceFromDomain(e domain.Experience) ExperienceDTO {
	return ExperienceDTO{
		Id:            string(e.ID),
		Name:          e.Name,
		Location:      e.Location,
		Duration:      e.Duration,
		Price:         e.Price,
		OriginalPrice: e.OriginalPrice,
		Image:         e.Image,
		Rating:        e.Rating,
		ReviewCount:   e.ReviewCount,
		Category:      e.Category,
		Description:   e.Description,
		Highlights:    e.Highlights,
	}
}

func experienceToDomain(e ExperienceDTO) domain.Experience {
	return domain.Experience{
		ID:            domain.ExperienceID(e.Id),
		Name:          e.Name,
		Location:      e.Location,
		Duration:      e.Duration,
		Price:         e.Price,
		OriginalPrice: e.OriginalPrice,
		Image:         e.Image,
		Rating:        e.Rating,
		ReviewCount:   e.ReviewCount,
		Category:      e.Category,
		Description:   e.Description,
		Highlights:    e.Highlights,
	}
}

func bookingItemFromDomain(i domain.BookingItem) BookingItemDTO {
	var out BookingItemDTO
	if i.Package != nil {
		p := packageFromDomain(*i.Package)
		out.Package = &p
	}
	if i.Hotel != nil {
		h := hotelFromDomain(*i.Hotel)
		out.Hotel = &h
	}
	if i.Experience != nil {
		e := experienceFromDomain(*i.Experience)
		out.Experience = &e
	}
	return out
}

func bookingItemToDomain(i BookingItemDTO) domain.BookingItem {
	var out domain.BookingItem
	if i.Package != nil {
		p := packageToDomain(*i.Package)
		out.Package = &p
	}
	if i.Hotel != nil {
		h := hotelToDomain(*i.Hotel)
		out.Hotel = &h
	}
	if i.Experience != nil {
		e := experienceToDomain(*i.Experience)
		out.Experience = &e
	}
	return out
}

func paymentDetailsFromDomain(p *domain.PaymentDetails) *PaymentDetailsDTO {
	if p == nil {
		return nil
	}
	out := &PaymentDetailsDTO{
		Method:    string(p.Method),
		PaymentId: p.PaymentID,
		OrderId:   p.OrderID,
		Signature: p.Signature,
		Amount:    p.Amount,
		PaidAt:    p.PaidAt,
	}
	if p.UPI != nil {
		out.Upi = &UPIDetailsDTO{UpiId: p.UPI.VPA, App: p.UPI.App}
	}
	if p.NetBanking != nil {
		out.NetBanking = &NetBankingInstrumentDTO{Bank: p.NetBanking.Bank, UserId: p.NetBanking.UserID}
	}
	if p.Card != nil {
		out.Card = &CardDetailsDTO{MaskedNumber: p.Card.MaskedNumber, Holder: p.Card.Holder}
	}
	return out
}

func bookingFromDomain(b domain.Booking) BookingDTO {
	return BookingDTO{
		Id:            string(b.ID),
		Type:          string(b.Type),
		UserId:        string(b.UserID),
		Item:          bookingItemFromDomain(b.Item),
		Status:        string(b.Status),
		BookingDate:   b.BookingDate,
		TravelDate:    openapi_types.Date{Time: b.TravelDate},
		Guests:        b.Guests,
		TotalAmount:   b.TotalAmount,
		PaymentStatus: string(b.PaymentStatus),
		Payment:       paymentDetailsFromDomain(b.Payment),
	}
}

func searchCriteriaFromDomain(c domain.SearchCriteria) SearchCriteriaDTO {
	out := SearchCriteriaDTO{
		Query:               c.Query,
		SelectedDestination: string(c.SelectedDestination),
		Guests:              c.Guests,
	}
	if c.Dates.From != nil {
		d := openapi_types.Date{Time: *c.Dates.From}
		out.Dates.From = &d
	}
	if c.Dates.To != nil {
		d := openapi_types.Date{Time: *c.Dates.To}
		out.Dates.To = &d
	}
	return out
}

func dateRangeToDomain(d DateRangeDTO) domain.DateRange {
	var out domain.DateRange
	if d.From != nil {
		t := d.From.Time
		out.From = &t
	}
	if d.To != nil {
		t := d.To.Time
		out.To = &t
	}
	return out
}
