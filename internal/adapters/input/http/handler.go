package http

import (
	"database/sql"

	"jewelshop/internal/domain"
	"jewelshop/internal/ports/input"
	"jewelshop/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	srv       input.CatalogService
	db        *sql.DB
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(srv input.CatalogService, db *sql.DB) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		db:        db,
		validator: validator.New(),
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if err := hdl.db.Ping(); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// ListProducts func
/* list the catalog */
// ListProducts godoc
// @Summary List products
// @Description Returns every product in the catalog with storefront-resolvable image paths
// @Tags Catalog
// @Accept application/json
// @Success 200 {array} map[string]interface{}
// @Router /api/products [get]
// @Produce json
func (hdl *HTTPHandler) ListProducts(c *fiber.Ctx) error {
	products, err := hdl.srv.ListProducts()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

// Checkout func
/* push an order summary to the admin chat */
// Checkout godoc
// @Summary Checkout
// @Description Composes a plain-text order summary and pushes it to the admin chat
// @Tags Catalog
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /api/checkout [post]
// @Produce json
// @param Checkout body CheckoutRequest true "Checkout"
func (hdl *HTTPHandler) Checkout(c *fiber.Ctx) error {
	var request CheckoutRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	domainReq := domain.CheckoutRequest{
		Total: request.Total,
	}
	for _, item := range request.Items {
		domainReq.Items = append(domainReq.Items, domain.CheckoutItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	if err := hdl.srv.Checkout(domainReq); err != nil {
		logrus.Errorln(err)
		msg := ResponseBody{
			Status: InternalServerError,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusInternalServerError).JSON(msg)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}
