package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/SscSPs/digital_khata_client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountingService portssvc.AccountingSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountingSvcFacade) *accountHandler {
	return &accountHandler{
		accountingService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountingService portssvc.AccountingSvcFacade) {
	h := newAccountHandler(accountingService) // Inject service

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/chart", h.chartOfAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Adds an entry to the chart of accounts
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.AccountRequest true "Account details"
// @Success 201 {object} domain.Account
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Please log in first"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AccountRequest
	if !bindJSON(c, &req) {
		return
	}

	logger.Info("Received request to create account", slog.String("account_name", req.Name), slog.String("account_type", req.Type))

	newAccount, err := h.accountingService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to save account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", newAccount.ID.String()))
	c.JSON(http.StatusCreated, newAccount)
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} domain.Account
// @Failure 401 {object} map[string]string "Please log in first"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountingService.GetAccount(c.Request.Context(), domain.RecordID(c.Param("id")))
	if err != nil {
		respondError(c, err, "Failed to fetch account")
		return
	}
	c.JSON(http.StatusOK, account)
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce  json
// @Param   q query string false "Case-insensitive search on name and type"
// @Success 200 {array} domain.Account
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	var params dto.SearchParams
	_ = c.ShouldBindQuery(&params)
	accounts, err := h.accountingService.ListAccounts(c.Request.Context(), params.Query)
	if err != nil {
		respondError(c, err, "Failed to fetch chart of accounts")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// chartOfAccounts godoc
// @Summary Chart of accounts
// @Description Accounts grouped by type: Assets, Liabilities, Equity, Revenue, Expenses
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountGroup
// @Router /accounts/chart [get]
func (h *accountHandler) chartOfAccounts(c *gin.Context) {
	groups, err := h.accountingService.ChartOfAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch chart of accounts")
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *accountHandler) updateAccount(c *gin.Context) {
	var req dto.AccountRequest
	if !bindJSON(c, &req) {
		return
	}
	account, err := h.accountingService.UpdateAccount(c.Request.Context(), domain.RecordID(c.Param("id")), req)
	if err != nil {
		respondError(c, err, "Failed to save account")
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")
	if err := h.accountingService.DeleteAccount(c.Request.Context(), domain.RecordID(accountID)); err != nil {
		respondError(c, err, "Failed to delete account")
		return
	}
	logger.Info("Account deleted", slog.String("account_id", accountID))
	c.Status(http.StatusNoContent)
}
