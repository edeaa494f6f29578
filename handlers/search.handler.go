package handlers

import (
	"net/http"

	"booking-client/domain"
	"booking-client/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type SearchHandler struct {
	availabilityService services.AvailabilityService
	logger              *logrus.Logger
	Tracer              trace.Tracer
}

func NewSearchHandler(availabilityService services.AvailabilityService, logger *logrus.Logger, tr trace.Tracer) SearchHandler {
	return SearchHandler{availabilityService: availabilityService, logger: logger, Tracer: tr}
}

func (sh *SearchHandler) GetRoomTypes(ctx *gin.Context) {
	spanCtx, span := sh.Tracer.Start(ctx.Request.Context(), "SearchHandler.GetRoomTypes")
	defer span.End()

	types, err := sh.availabilityService.ListRoomTypes(spanCtx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	span.SetStatus(codes.Ok, "Got room types")
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "roomTypes": types})
}

// SearchRooms answers an availability query. The response always echoes the
// query that produced it, so the presentation can discard a result that no
// longer matches what the user last asked for.
func (sh *SearchHandler) SearchRooms(ctx *gin.Context) {
	spanCtx, span := sh.Tracer.Start(ctx.Request.Context(), "SearchHandler.SearchRooms")
	defer span.End()

	checkInParam := ctx.Query("checkInDate")
	checkOutParam := ctx.Query("checkOutDate")
	roomType := ctx.Query("roomType")

	var stay domain.DateRange
	if checkInParam != "" {
		checkIn, err := domain.ParseCalendarDate(checkInParam)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			respondWithError(ctx, domain.NewValidationError("checkInDate", "Invalid check-in date"))
			return
		}
		stay.CheckIn = checkIn
	}
	if checkOutParam != "" {
		checkOut, err := domain.ParseCalendarDate(checkOutParam)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			respondWithError(ctx, domain.NewValidationError("checkOutDate", "Invalid check-out date"))
			return
		}
		stay.CheckOut = checkOut
	}

	rooms, err := sh.availabilityService.Search(spanCtx, stay, roomType)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	response := gin.H{
		"status":       "success",
		"checkInDate":  checkInParam,
		"checkOutDate": checkOutParam,
		"roomType":     roomType,
		"rooms":        rooms,
	}

	// an empty result is a normal outcome, distinct from a failed request
	if len(rooms) == 0 {
		response["notice"] = domain.NewNotice(domain.NoticeInfo, "No rooms available for this date range and room type.", searchNoticeMs)
	}

	span.SetStatus(codes.Ok, "Searched rooms")
	ctx.JSON(http.StatusOK, response)
}
