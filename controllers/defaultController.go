package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the ShadeCart API. Browse shades, fill a cart and place orders.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account

CATALOG
- GET "/api/catalog" - Categories and their shades

ORDERS
- POST "/api/orders" - Place an order from the cart
- GET "/api/orders?startDate=&endDate=" - Order history

PROFILE
- GET "/api/profile" - Current user with family members
- POST "/api/profile/family-members" - Add a family member
- POST "/api/appointments" - Book an appointment
- GET "/api/appointments" - List appointments

ADMIN
- GET "/api/admin/stats" - User and recent order counts
- GET "/api/admin/orders/undelivered" - Orders awaiting delivery
- PUT "/api/admin/orders/:orderId/deliver" - Mark an order delivered
- GET "/api/admin/orders?userId=" - Orders of one user
- GET "/api/admin/users" - All users
- GET "/api/admin/users/:userId" - One user`

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": message,
	})
}
