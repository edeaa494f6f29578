package routes

import (
	"booking-client/handlers"
	"booking-client/security"

	"github.com/gin-gonic/gin"
)

type BookingRouteHandler struct {
	bookingHandler handlers.BookingHandler
	store          *security.CredentialStore
}

func NewBookingRouteHandler(bookingHandler handlers.BookingHandler, store *security.CredentialStore) BookingRouteHandler {
	return BookingRouteHandler{bookingHandler, store}
}

func (br *BookingRouteHandler) BookingRoute(rg *gin.RouterGroup) {
	router := rg.Group("bookings")
	router.Use(security.Guard(br.store, security.Authenticated))
	router.POST("/quote/:roomId", br.bookingHandler.Quote)
	router.POST("/book-room/:roomId", br.bookingHandler.Confirm)
	router.GET("/get-by-confirmation-code/:confirmationCode", br.bookingHandler.Find)
	router.DELETE("/cancel/:bookingId", br.bookingHandler.Cancel)

	admin := rg.Group("admin/bookings")
	admin.Use(security.Guard(br.store, security.AdminOnly))
	admin.GET("/edit-booking/:confirmationCode", br.bookingHandler.Find)
	admin.DELETE("/cancel/:bookingId", br.bookingHandler.Cancel)
}
