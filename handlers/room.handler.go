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

// RoomHandler carries the admin management views. Price changes and room
// deletion never touch already confirmed bookings on this side; the backend
// owns those records.
type RoomHandler struct {
	roomService services.RoomService
	backend     *clients.BackendClient
	logger      *logrus.Logger
	Tracer      trace.Tracer
}

func NewRoomHandler(roomService services.RoomService, backend *clients.BackendClient, logger *logrus.Logger, tr trace.Tracer) RoomHandler {
	return RoomHandler{roomService: roomService, backend: backend, logger: logger, Tracer: tr}
}

func (rh *RoomHandler) GetAllRooms(ctx *gin.Context) {
	spanCtx, span := rh.Tracer.Start(ctx.Request.Context(), "RoomHandler.GetAllRooms")
	defer span.End()

	session := security.CurrentSession(ctx)
	rooms, err := rh.roomService.GetAll(spanCtx, session.Token)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	span.SetStatus(codes.Ok, "Got all rooms")
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "rooms": rooms})
}

func (rh *RoomHandler) GetRoom(ctx *gin.Context) {
	spanCtx, span := rh.Tracer.Start(ctx.Request.Context(), "RoomHandler.GetRoom")
	defer span.End()

	room, err := rh.roomService.Get(spanCtx, ctx.Param("roomId"))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	span.SetStatus(codes.Ok, "Got room")
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "room": room})
}

func (rh *RoomHandler) CreateRoom(ctx *gin.Context) {
	spanCtx, span := rh.Tracer.Start(ctx.Request.Context(), "RoomHandler.CreateRoom")
	defer span.End()

	var input domain.RoomInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	session := security.CurrentSession(ctx)
	room, err := rh.roomService.Create(spanCtx, session.Token, input)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	span.SetStatus(codes.Ok, "Room created")
	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "room": room})
}

func (rh *RoomHandler) UpdateRoom(ctx *gin.Context) {
	spanCtx, span := rh.Tracer.Start(ctx.Request.Context(), "RoomHandler.UpdateRoom")
	defer span.End()

	var input domain.RoomInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	session := security.CurrentSession(ctx)
	room, err := rh.roomService.Update(spanCtx, session.Token, ctx.Param("roomId"), input)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	span.SetStatus(codes.Ok, "Room updated")
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "room": room})
}

func (rh *RoomHandler) DeleteRoom(ctx *gin.Context) {
	spanCtx, span := rh.Tracer.Start(ctx.Request.Context(), "RoomHandler.DeleteRoom")
	defer span.End()

	session := security.CurrentSession(ctx)
	err := rh.roomService.Delete(spanCtx, session.Token, ctx.Param("roomId"))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	span.SetStatus(codes.Ok, "Room deleted")
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"notice": domain.NewNotice(domain.NoticeSuccess, "Room deleted", errorNoticeMs),
	})
}

func (rh *RoomHandler) GetAllBookings(ctx *gin.Context) {
	spanCtx, span := rh.Tracer.Start(ctx.Request.Context(), "RoomHandler.GetAllBookings")
	defer span.End()

	session := security.CurrentSession(ctx)
	bookings, err := rh.backend.GetAllBookings(spanCtx, session.Token)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	span.SetStatus(codes.Ok, "Got all bookings")
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "bookings": bookings})
}
