//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"samhotel-api/internal/domain/booking"
	"samhotel-api/internal/handler/api"
	"samhotel-api/internal/usecase/commands"
	"samhotel-api/internal/usecase/mock"
	"samhotel-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	commands *mock.MockBookingCommands
	queries  *mock.MockBookingQueries
	router   *gin.Engine
}

func (s *BookingHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.commands = mock.NewMockBookingCommands(s.ctrl)
	s.queries = mock.NewMockBookingQueries(s.ctrl)

	handler := api.NewBookingHandler(s.commands, s.queries)
	s.router = gin.New()
	s.router.POST("/api/bookings", handler.Create)
	s.router.GET("/api/bookings", handler.List)
	s.router.GET("/api/bookings/search_by_email", handler.SearchByEmail)
	s.router.GET("/api/bookings/:id", handler.Get)
	s.router.DELETE("/api/bookings/:id", handler.Delete)
}

func (s *BookingHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerSuite))
}

func (s *BookingHandlerSuite) postJSON(path string, body map[string]any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *BookingHandlerSuite) errorBody(rec *httptest.ResponseRecorder) string {
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func validCreateBody(roomID uuid.UUID) map[string]any {
	return map[string]any{
		"room_id":      roomID.String(),
		"client_name":  "Alice",
		"client_email": "alice@example.com",
		"check_in":     "2026-01-10",
		"check_out":    "2026-01-12",
		"adults":       1,
		"meal_plan":    "none",
		"amount_paid":  "200.00",
	}
}

func (s *BookingHandlerSuite) TestCreateReturns201() {
	roomID := uuid.New()
	view := &queries.BookingView{
		ID:            uuid.New(),
		RoomID:        roomID,
		RoomName:      "Deluxe Suite",
		ClientName:    "Alice",
		ClientEmail:   "alice@example.com",
		CheckIn:       time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Adults:        1,
		MealPlan:      "none",
		TotalAmount:   "200.00",
		AmountPaid:    "200.00",
		PaymentStatus: "Paid",
	}
	s.commands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view, nil)

	rec := s.postJSON("/api/bookings", validCreateBody(roomID))

	s.Equal(http.StatusCreated, rec.Code)
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("200.00", body["total_amount"])
	s.Equal("2026-01-10", body["check_in"])
	s.Equal("Paid", body["payment_status"])
}

func (s *BookingHandlerSuite) TestCreateConflictIs400() {
	roomID := uuid.New()
	s.commands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, commands.ErrDatesAlreadyBooked)

	rec := s.postJSON("/api/bookings", validCreateBody(roomID))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("These dates are already booked. Please choose different dates.", s.errorBody(rec))
}

func (s *BookingHandlerSuite) TestCreatePaymentMismatchIs400() {
	roomID := uuid.New()
	mismatch := &booking.PaymentMismatchError{
		Expected: booking.NewMoney(20000),
		Got:      booking.NewMoney(15000),
	}
	s.commands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, mismatch)

	rec := s.postJSON("/api/bookings", validCreateBody(roomID))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Payment mismatch. Expected 200.00, got 150.00.", s.errorBody(rec))
}

func (s *BookingHandlerSuite) TestCreateUnknownRoomIs404() {
	roomID := uuid.New()
	s.commands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, commands.ErrRoomNotFound)

	rec := s.postJSON("/api/bookings", validCreateBody(roomID))

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *BookingHandlerSuite) TestCreateBadDateFormatIs400() {
	body := validCreateBody(uuid.New())
	body["check_in"] = "10/01/2026"

	rec := s.postJSON("/api/bookings", body)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("dates must use the YYYY-MM-DD format", s.errorBody(rec))
}

func (s *BookingHandlerSuite) TestCreateMissingAmountIs400() {
	body := validCreateBody(uuid.New())
	delete(body, "amount_paid")

	rec := s.postJSON("/api/bookings", body)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BookingHandlerSuite) TestListFiltersByRoom() {
	roomID := uuid.New()
	s.queries.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, got *uuid.UUID) ([]*queries.BookingView, error) {
			s.Require().NotNil(got)
			s.Equal(roomID, *got)
			return []*queries.BookingView{}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?room_id="+roomID.String(), nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq("[]", rec.Body.String())
}

func (s *BookingHandlerSuite) TestSearchByEmailNoMatchesIs404() {
	s.queries.EXPECT().SearchByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, queries.ErrNoBookingsForEmail)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/search_by_email?email=nobody@example.com", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *BookingHandlerSuite) TestDeleteStartedStayIs400() {
	id := uuid.New()
	s.commands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrStayAlreadyStarted)

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+id.String(), nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BookingHandlerSuite) TestDeleteReturns204() {
	id := uuid.New()
	s.commands.EXPECT().Delete(gomock.Any(), id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+id.String(), nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
}
