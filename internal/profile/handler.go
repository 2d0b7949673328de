package profile

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/middleware"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/pubsub"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/reject"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/utils"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/ws"
)

type profileHandler struct {
	profile *Service
}

func RegisterRoutesAndSubscriptions(rg *gin.RouterGroup, service *Service, notificationHub *ws.NotificationHub) {
	handler := profileHandler{profile: service}

	routes := rg.Group("/profile")
	routes.GET("", middleware.VerifyAuthToken, handler.getProfile)
	routes.POST("/photo", middleware.VerifyAuthToken, handler.uploadPhoto)
	routes.PUT("/wallet", middleware.VerifyAuthToken, handler.updateWallet)
	routes.GET("/transactions", middleware.VerifyAuthToken, handler.getTransactions)
	routes.DELETE("/session", middleware.VerifyAuthToken, handler.endSession)

	bridge := &ledgerBridge{notificationHub: notificationHub}
	go pubsub.Subscribe(pubsub.SubscriptionHandler{
		SubscriptionId: "ledger.transactions.recorded-sub",
		Handler:        bridge.handleTransactionRecorded,
	})
}

func (h profileHandler) getProfile(c *gin.Context) {
	snapshot := h.profile.LoadProfile(c.Request.Context(), utils.GetIdentity(c))
	c.JSON(http.StatusOK, snapshot)
}

type photoUploadResponse struct {
	PhotoUrl string `json:"photoUrl"`
}

func (h profileHandler) uploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, reject.BodyParseProblem())
		return
	}

	// reject on the declared type and size before buffering the payload
	if problem := validatePhoto(fileHeader.Header.Get("Content-Type"), fileHeader.Size); problem != nil {
		c.JSON(problem.Problem.Status, problem.Problem)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, reject.BodyParseProblem())
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, reject.BodyParseProblem())
		return
	}

	photoUrl, problem := h.profile.UpdatePhoto(
		c.Request.Context(),
		utils.GetIdentity(c),
		image,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size)
	if problem != nil {
		c.JSON(problem.Problem.Status, problem.Problem)
		return
	}

	c.JSON(http.StatusOK, photoUploadResponse{PhotoUrl: photoUrl})
}

type UpdateWalletRequest struct {
	WalletAddress string `json:"walletAddress"`
}

type walletUpdateResponse struct {
	Durability Durability `json:"durability"`
}

func (h profileHandler) updateWallet(c *gin.Context) {
	body := UpdateWalletRequest{}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, reject.BodyParseProblem())
		return
	}

	durability, problem := h.profile.UpdateWalletAddress(c.Request.Context(), utils.GetIdentity(c), body.WalletAddress)
	if problem != nil {
		c.JSON(problem.Problem.Status, problem.Problem)
		return
	}

	c.JSON(http.StatusOK, walletUpdateResponse{Durability: durability})
}

func (h profileHandler) getTransactions(c *gin.Context) {
	limit := utils.QueryLimit(c, defaultTransactionLimit, defaultTransactionLimit)
	records := h.profile.RecentTransactions(c.Request.Context(), utils.GetIdentity(c), limit)
	c.JSON(http.StatusOK, records)
}

func (h profileHandler) endSession(c *gin.Context) {
	h.profile.EndSession(utils.GetIdentity(c).Uid)
	c.Status(http.StatusNoContent)
}
