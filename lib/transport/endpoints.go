package transport

import (
	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/controllers"
	"github.com/openfactor/factorhub/lib/service"
)

func RegisterEndpoints(svc *service.FactorhubService, e *echo.Echo, secured *echo.Group, securedWithStrictRateLimit *echo.Group, admin *echo.Group, adminWithStrictRateLimit *echo.Group, strictRateLimitMiddleware echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	e.GET("/", controllers.NewHomeController().Home)
	e.POST("/auth", controllers.NewAuthController(svc).Auth, strictRateLimitMiddleware, logMw)

	if svc.Config.AllowAccountCreation {
		admin.POST("/v2/users", controllers.NewCreateUserController(svc).CreateUser)
	}
	admin.GET("/v2/admin/users", controllers.NewUsersController(svc).ListUsers)
	admin.POST("/v2/admin/cash-receipts", controllers.NewCashReceiptController(svc).AddCashReceipt)
	admin.POST("/v2/admin/account-statuses", controllers.NewAccountStatusController(svc).CreateAccountStatus)
	admin.PUT("/v2/admin/account-statuses/:id", controllers.NewAccountStatusController(svc).UpdateAccountStatus)
	adminWithStrictRateLimit.POST("/v2/admin/payment-requests", controllers.NewPaymentRequestController(svc).RequestPaymentForUser)

	ledgerEntryCtrl := controllers.NewLedgerEntryController(svc)
	secured.POST("/v2/ledger", ledgerEntryCtrl.AddLedgerEntry)
	secured.GET("/v2/ledger", ledgerEntryCtrl.GetLedgerEntries)
	secured.GET("/v2/balance", controllers.NewBalanceController(svc).Balance)
	secured.GET("/v2/availability", controllers.NewAvailabilityController(svc).Availability)
	secured.GET("/v2/account-status", controllers.NewAccountStatusController(svc).GetAccountStatuses)
	secured.GET("/v2/current-account", controllers.NewCurrentAccountController(svc).GetCurrentAccount)
	securedWithStrictRateLimit.POST("/v2/payment-requests", controllers.NewPaymentRequestController(svc).SendPaymentRequest)
}
