package handlers

import (
	"net/http"

	"booking-client/clients"
	"booking-client/domain"
	"booking-client/security"
	"booking-client/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type BookingHandler struct {
	reservationService services.ReservationService
	roomService        services.RoomService
	backend            *clients.BackendClient
	logger             *logrus.Logger
	Tracer             trace.Tracer
}

func NewBookingHandler(reservationService services.ReservationService, roomService services.RoomService, backend *clients.BackendClient, logger *logrus.Logger, tr trace.Tracer) BookingHandler {
	return BookingHandler{
		reservationService: reservationService,
		roomService:        roomService,
		backend:            backend,
		logger:             logger,
		Tracer:             tr,
	}
}

type stayRequest struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	AdultCount   int    `json:"adultCount"`
	ChildCount   int    `json:"childCount"`
}

func (br stayRequest) toDomain() (domain.DateRange, domain.GuestCount, error) {
	var stay domain.DateRange
	if br.CheckInDate != "" {
		checkIn, err := domain.ParseCalendarDate(br.CheckInDate)
		if err != nil {
			return stay, domain.GuestCount{}, domain.NewValidationError("checkInDate", "Invalid check-in date")
		}
		stay.CheckIn = checkIn
	}
	if br.CheckOutDate != "" {
		checkOut, err := domain.ParseCalendarDate(br.CheckOutDate)
		if err != nil {
			return stay, domain.GuestCount{}, domain.NewValidationError("checkOutDate", "Invalid check-out date")
		}
		stay.CheckOut = checkOut
	}
	return stay, domain.GuestCount{Adults: br.AdultCount, Children: br.ChildCount}, nil
}

// Quote computes the stay total before anything is committed. The number it
// returns is for display; the backend's booking record is what was charged.
func (bh *BookingHandler) Quote(ctx *gin.Context) {
	spanCtx, span := bh.Tracer.Start(ctx.Request.Context(), "BookingHandler.Quote")
	defer span.End()

	roomID := ctx.Param("roomId")

	var request stayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	stay, guests, err := request.toDomain()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	room, err := bh.roomService.Get(spanCtx, roomID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	quote, err := bh.reservationService.Quote(room, stay, guests)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	span.SetStatus(codes.Ok, "Quote computed")
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "quote": quote})
}

func (bh *BookingHandler) Confirm(ctx *gin.Context) {
	spanCtx, span := bh.Tracer.Start(ctx.Request.Context(), "BookingHandler.Confirm")
	defer span.End()

	roomID := ctx.Param("roomId")
	session := security.CurrentSession(ctx)
	if session == nil {
		span.SetStatus(codes.Error, "You are not logged in")
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
		return
	}

	var request stayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	stay, guests, err := request.toDomain()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	user, err := bh.backend.GetCurrentUserProfile(spanCtx, session.Token)
	if err != nil {
		span.SetStatus(codes.Error, "Failed to obtain current user information. Try again later")
		respondWithError(ctx, err)
		return
	}

	confirmationCode, err := bh.reservationService.Confirm(spanCtx, session.Token, roomID, user.ID, stay, guests)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	span.SetStatus(codes.Ok, "Booking confirmed")
	ctx.JSON(http.StatusOK, gin.H{
		"status":                  "success",
		"bookingConfirmationCode": confirmationCode,
		"notice":                  domain.NewNotice(domain.NoticeSuccess, "Booking successful! Here is your confirmation code: "+confirmationCode, successNoticeMs),
	})
}

func (bh *BookingHandler) Find(ctx *gin.Context) {
	spanCtx, span := bh.Tracer.Start(ctx.Request.Context(), "BookingHandler.Find")
	defer span.End()

	session := security.CurrentSession(ctx)
	if session == nil {
		span.SetStatus(codes.Error, "You are not logged in")
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
		return
	}

	code := ctx.Param("confirmationCode")
	booking, err := bh.reservationService.Find(spanCtx, session.Token, code)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	span.SetStatus(codes.Ok, "Found booking")
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "booking": booking})
}

// Cancel is irreversible, so the request must carry confirm=true. On
// failure the booking stays untouched and the cause is surfaced.
func (bh *BookingHandler) Cancel(ctx *gin.Context) {
	spanCtx, span := bh.Tracer.Start(ctx.Request.Context(), "BookingHandler.Cancel")
	defer span.End()

	session := security.CurrentSession(ctx)
	if session == nil {
		span.SetStatus(codes.Error, "You are not logged in")
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
		return
	}

	bookingID := ctx.Param("bookingId")
	confirmed := ctx.Query("confirm") == "true"

	err := bh.reservationService.Cancel(spanCtx, session.Token, bookingID, confirmed)
	if err != nil {
		if err == domain.ErrCancelNotConfirmed {
			span.SetStatus(codes.Error, err.Error())
			ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Confirm the cancellation to proceed"})
			return
		}
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	span.SetStatus(codes.Ok, "Booking cancelled")
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"notice": domain.NewNotice(domain.NoticeSuccess, "Booking cancelled", errorNoticeMs),
	})
}
