package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roosly/site-api/internal/core/domain"
	"github.com/roosly/site-api/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer CRUD operations.
// Every route is registered behind the Auth and RBAC middleware; requests
// reaching these methods carry a verified admin session.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /api/customers.
//
// @Summary      List all customers, newest first
// @Tags         customers
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}   domain.Customer
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to fetch customers"})
	}
	return c.JSON(http.StatusOK, customers)
}

// Create handles POST /api/customers.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  domain.Customer
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateCustomerInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return customerError(c, err, "failed to create customer")
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/customers — a full replace of name and email.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      updateCustomerRequest  true  "Customer details including id"
// @Success      200   {object}  domain.Customer
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/customers [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), ports.UpdateCustomerInput{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return customerError(c, err, "failed to update customer")
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/customers?id=<id>. The deleted id is echoed
// back so the client can reconcile its list without a refetch.
//
// @Summary      Delete a customer
// @Tags         customers
// @Produce      json
// @Security     SessionCookie
// @Param        id   query     int  true  "Customer id"
// @Success      200  {object}  deleteCustomerResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/customers [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	raw := c.QueryParam("id")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "id is required"})
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "id must be a positive integer"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return customerError(c, err, "failed to delete customer")
	}
	return c.JSON(http.StatusOK, deleteCustomerResponse{Message: "customer deleted", ID: id})
}

// customerError translates service errors into the stable client-facing
// vocabulary; raw store detail never leaves the server.
func customerError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCustomer):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrCustomerExists):
		return c.JSON(http.StatusConflict, errorResponse{Error: "customer already exists"})
	case errors.Is(err, domain.ErrCustomerNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "customer not found"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: fallback})
	}
}
