package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"shoe-store/middleware"
	"shoe-store/models"
	"shoe-store/repositories"
	"shoe-store/services"
	"shoe-store/store"
)

const cartCookie = "cart_session"

type AddItemRequest struct {
	ID       int    `json:"id" binding:"required"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

// UpdateQuantityRequest carries the new quantity. Values below one are not
// rejected here; they turn into a removal at the handler.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartView is a cart snapshot plus the derived totals.
type CartView struct {
	Items    []store.LineItem `json:"items"`
	IsOpen   bool             `json:"is_open"`
	Subtotal string           `json:"subtotal"`
	Shipping string           `json:"shipping"`
	Total    string           `json:"total"`
}

type CartController struct {
	Sessions *store.Sessions
	Checkout *services.CheckoutService
	Logger   *zap.Logger
}

// cart resolves the caller's cart from the cart cookie, issuing a fresh
// session id on first contact.
func (ctrl *CartController) cart(c *gin.Context) *store.Cart {
	id, err := c.Cookie(cartCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(cartCookie, id, int(store.SessionTTL.Seconds()), "/", "", false, true)
	}
	return ctrl.Sessions.Get(id)
}

func (ctrl *CartController) render(c *gin.Context, state store.State) {
	totals, err := store.ComputeTotals(state.Items)
	if err != nil {
		// An unparsable price is a display-fatal condition, never a silent zero.
		ctrl.Logger.Error("cart totals failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Cart contains an invalid price",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: CartView{
			Items:    state.Items,
			IsOpen:   state.IsOpen,
			Subtotal: totals.Subtotal.StringFixed(2),
			Shipping: totals.Shipping.StringFixed(2),
			Total:    totals.Total.StringFixed(2),
		},
	})
}

// @Summary Get cart
// @Description Get the session cart with derived totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	ctrl.render(c, ctrl.cart(c).State())
}

// @Summary Add item to cart
// @Description Add a product to the cart, merging quantities for an existing id
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body AddItemRequest true "Line item"
// @Success 200 {object} models.Response
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid item payload",
			Error:   err.Error(),
		})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	state := ctrl.cart(c).Dispatch(store.Intent{
		Type: store.AddItem,
		Item: store.LineItem{
			ID:       req.ID,
			Name:     req.Name,
			Price:    req.Price,
			Image:    req.Image,
			Quantity: req.Quantity,
			Size:     req.Size,
		},
	})
	ctrl.render(c, state)
}

// @Summary Update item quantity
// @Description Set the quantity for a cart item; below one removes the item
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param quantity body UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid quantity payload",
			Error:   err.Error(),
		})
		return
	}

	cart := ctrl.cart(c)

	// The store applies whatever quantity it is handed; the view layer owns
	// the lower bound and issues a removal instead.
	var state store.State
	if req.Quantity < 1 {
		state = cart.Dispatch(store.Intent{Type: store.RemoveItem, ID: id})
	} else {
		state = cart.Dispatch(store.Intent{Type: store.UpdateQuantity, ID: id, Quantity: req.Quantity})
	}
	ctrl.render(c, state)
}

// @Summary Remove item from cart
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}
	ctrl.render(c, ctrl.cart(c).Dispatch(store.Intent{Type: store.RemoveItem, ID: id}))
}

// @Summary Toggle cart panel
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/toggle [post]
func (ctrl *CartController) Toggle(c *gin.Context) {
	ctrl.render(c, ctrl.cart(c).Dispatch(store.Intent{Type: store.ToggleCart}))
}

// @Summary Checkout
// @Description Submit the cart as a sale; the cart is cleared only on success
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /cart/checkout [post]
func (ctrl *CartController) CheckoutCart(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	cart := ctrl.cart(c)

	state, err := ctrl.Checkout.Checkout(c.Request.Context(), identity, cart)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: "Customer not authenticated"})
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Cart is empty"})
		default:
			var upErr *repositories.UpstreamError
			if errors.As(err, &upErr) {
				c.JSON(upErr.StatusCode, models.ErrorResponse{Success: false, Message: upErr.Message})
				return
			}
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Success: false,
				Message: "Checkout failed",
				Error:   err.Error(),
			})
		}
		return
	}

	totals, terr := store.ComputeTotals(state.Items)
	if terr != nil {
		totals = store.Totals{}
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sale registered successfully",
		Data: CartView{
			Items:    state.Items,
			IsOpen:   state.IsOpen,
			Subtotal: totals.Subtotal.StringFixed(2),
			Shipping: totals.Shipping.StringFixed(2),
			Total:    totals.Total.StringFixed(2),
		},
	})
}
