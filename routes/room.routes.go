package routes

import (
	"booking-client/handlers"
	"booking-client/security"

	"github.com/gin-gonic/gin"
)

type RoomRouteHandler struct {
	searchHandler handlers.SearchHandler
	roomHandler   handlers.RoomHandler
	store         *security.CredentialStore
}

func NewRoomRouteHandler(searchHandler handlers.SearchHandler, roomHandler handlers.RoomHandler, store *security.CredentialStore) RoomRouteHandler {
	return RoomRouteHandler{searchHandler, roomHandler, store}
}

func (rr *RoomRouteHandler) RoomRoute(rg *gin.RouterGroup) {
	// room search is reachable without login, like the home page
	router := rg.Group("rooms")
	router.GET("/types", rr.searchHandler.GetRoomTypes)
	router.GET("/available-rooms-by-date-and-type", rr.searchHandler.SearchRooms)

	details := router.Group("")
	details.Use(security.Guard(rr.store, security.Authenticated))
	details.GET("/room-details-book/:roomId", rr.roomHandler.GetRoom)

	admin := rg.Group("admin")
	admin.Use(security.Guard(rr.store, security.AdminOnly))
	admin.GET("/manage-rooms", rr.roomHandler.GetAllRooms)
	admin.GET("/edit-room/:roomId", rr.roomHandler.GetRoom)
	admin.POST("/add-room", rr.roomHandler.CreateRoom)
	admin.PUT("/edit-room/:roomId", rr.roomHandler.UpdateRoom)
	admin.DELETE("/delete-room/:roomId", rr.roomHandler.DeleteRoom)
	admin.GET("/manage-bookings", rr.roomHandler.GetAllBookings)
}
