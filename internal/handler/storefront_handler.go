package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/girishsunnykumar006-arch/bitesaver/internal/catalog"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/domain"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/repository"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/service"
)

// SessionHeader carries the session token. Responses always echo the
// resolved session id so a client without one picks it up on first contact.
const SessionHeader = "X-Session-ID"

type StorefrontHandler struct {
	storefront *service.StorefrontService
	catalog    *catalog.Catalog
	sessions   *repository.SessionRepository
	logger     *zap.Logger
}

func NewStorefrontHandler(
	storefront *service.StorefrontService,
	cat *catalog.Catalog,
	sessions *repository.SessionRepository,
	logger *zap.Logger,
) *StorefrontHandler {
	return &StorefrontHandler{
		storefront: storefront,
		catalog:    cat,
		sessions:   sessions,
		logger:     logger,
	}
}

// Register mounts all storefront routes on the group.
func (h *StorefrontHandler) Register(g *gin.RouterGroup) {
	g.GET("/catalog/featured", h.ListFeatured)
	g.GET("/catalog/deals", h.ListBrowseDeals)
	g.GET("/stores", h.ListStores)
	g.GET("/stores/:id/items", h.GetStoreListing)

	g.POST("/auth/signin", h.SignIn)
	g.POST("/auth/signup", h.SignUp)
	g.POST("/auth/signout", h.SignOut)

	g.GET("/cart", h.GetCart)
	g.POST("/cart/items", h.AddToCart)
	g.PUT("/cart/items/:catalog/:id", h.UpdateQuantity)
	g.DELETE("/cart/items/:catalog/:id", h.RemoveFromCart)
	g.DELETE("/cart", h.ClearCart)

	g.GET("/checkout/quote", h.GetQuote)
	g.POST("/checkout/orders", h.PlaceOrder)
	g.GET("/checkout/orders/:id", h.GetOrder)

	g.POST("/sellers/applications", h.ApplySeller)
}

func (h *StorefrontHandler) session(c *gin.Context) *repository.Session {
	sess := h.sessions.Resolve(c.GetHeader(SessionHeader))
	c.Header(SessionHeader, sess.ID)
	return sess
}

func (h *StorefrontHandler) ListFeatured(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"deals": h.catalog.Featured()})
}

func (h *StorefrontHandler) ListBrowseDeals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"deals": h.catalog.BrowseDeals()})
}

func (h *StorefrontHandler) ListStores(c *gin.Context) {
	stores := h.catalog.Stores()
	// The directory lists stores without their item details.
	out := make([]catalog.StoreProfile, 0, len(stores))
	for _, s := range stores {
		s.Items = nil
		out = append(out, s)
	}
	c.JSON(http.StatusOK, gin.H{"stores": out})
}

func (h *StorefrontHandler) GetStoreListing(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})
		return
	}

	listing, err := h.catalog.StoreListing(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *StorefrontHandler) SignIn(c *gin.Context) {
	sess := h.session(c)

	var req domain.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	user, fieldErrs := h.storefront.SignIn(sess, req)
	if !fieldErrs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "redirect": "/"})
}

func (h *StorefrontHandler) SignUp(c *gin.Context) {
	sess := h.session(c)

	var req domain.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	user, fieldErrs := h.storefront.SignUp(sess, req)
	if !fieldErrs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "redirect": "/"})
}

func (h *StorefrontHandler) SignOut(c *gin.Context) {
	sess := h.session(c)
	h.storefront.SignOut(sess)
	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}

func (h *StorefrontHandler) GetCart(c *gin.Context) {
	sess := h.session(c)
	c.JSON(http.StatusOK, h.storefront.Cart(sess))
}

func (h *StorefrontHandler) AddToCart(c *gin.Context) {
	sess := h.session(c)

	var req domain.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	key := domain.ItemKey{Catalog: req.Catalog, ID: req.ID}
	if err := h.storefront.AddToCart(sess, key); err != nil {
		h.renderCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.storefront.Cart(sess))
}

func (h *StorefrontHandler) UpdateQuantity(c *gin.Context) {
	sess := h.session(c)

	key, ok := h.itemKey(c)
	if !ok {
		return
	}

	var req domain.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	h.storefront.UpdateQuantity(sess, key, req.Quantity)
	c.JSON(http.StatusOK, h.storefront.Cart(sess))
}

func (h *StorefrontHandler) RemoveFromCart(c *gin.Context) {
	sess := h.session(c)

	key, ok := h.itemKey(c)
	if !ok {
		return
	}

	h.storefront.RemoveFromCart(sess, key)
	c.JSON(http.StatusOK, h.storefront.Cart(sess))
}

func (h *StorefrontHandler) ClearCart(c *gin.Context) {
	sess := h.session(c)
	h.storefront.ClearCart(sess)
	c.JSON(http.StatusOK, h.storefront.Cart(sess))
}

func (h *StorefrontHandler) GetQuote(c *gin.Context) {
	sess := h.session(c)
	c.JSON(http.StatusOK, h.storefront.Quote(sess))
}

func (h *StorefrontHandler) PlaceOrder(c *gin.Context) {
	sess := h.session(c)

	var req domain.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	requestID := c.GetString("request_id")
	order, fieldErrs, err := h.storefront.PlaceOrder(c.Request.Context(), sess, req, requestID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotLoggedIn):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in required", "redirect": "/signin"})
		case errors.Is(err, domain.ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{"error": "cart is empty", "redirect": "/browse"})
		default:
			h.logger.Error("Failed to place order",
				zap.String("request_id", requestID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order", "request_id": requestID})
		}
		return
	}
	if !fieldErrs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	c.JSON(http.StatusCreated, domain.PlaceOrderResponse{
		OrderID: order.OrderID,
		Status:  order.Status,
		Totals:  order.Totals,
		Message: "Order placed successfully",
	})
}

func (h *StorefrontHandler) GetOrder(c *gin.Context) {
	order, err := h.storefront.GetOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *StorefrontHandler) ApplySeller(c *gin.Context) {
	var app domain.SellerApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	requestID := c.GetString("request_id")
	resp, fieldErrs, err := h.storefront.ApplySeller(c.Request.Context(), app, requestID)
	if err != nil {
		h.logger.Error("Failed to process seller application",
			zap.String("request_id", requestID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application", "request_id": requestID})
		return
	}
	if !fieldErrs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *StorefrontHandler) itemKey(c *gin.Context) (domain.ItemKey, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return domain.ItemKey{}, false
	}
	return domain.ItemKey{Catalog: c.Param("catalog"), ID: id}, true
}

func (h *StorefrontHandler) renderCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotLoggedIn):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in required", "redirect": "/signin"})
	case errors.Is(err, domain.ErrUnknownItem):
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
	case errors.Is(err, domain.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
