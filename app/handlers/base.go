package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tokosembilan/go-commerce/app/helpers"
	"github.com/tokosembilan/go-commerce/app/services"
	"github.com/unrolled/render"
)

var validate = validator.New()

func NewRenderer() *render.Render {
	return render.New(render.Options{
		IndentJSON: true,
	})
}

// userIDFrom reads the identity the auth proxy attaches to the request.
func userIDFrom(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}

func requireUser(rnd *render.Render, w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := userIDFrom(r)
	if userID == "" {
		writeJSON(rnd, w, http.StatusUnauthorized, map[string]string{"error": "missing user identity"})
		return "", false
	}
	return userID, true
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(rnd *render.Render, w http.ResponseWriter, status int, payload interface{}) {
	if err := rnd.JSON(w, status, payload); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

func writeError(rnd *render.Render, w http.ResponseWriter, err error) {
	writeJSON(rnd, w, statusFor(err), map[string]string{"error": err.Error()})
}

func writeValidationError(rnd *render.Render, w http.ResponseWriter, err error) {
	writeJSON(rnd, w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"fields": helpers.FormatValidationErrors(err),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrVariantNotFound),
		errors.Is(err, services.ErrInventoryNotFound),
		errors.Is(err, services.ErrCouponNotFound),
		errors.Is(err, services.ErrDealNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrBrandNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrReviewNotFound),
		errors.Is(err, services.ErrCartItemNotFound):
		return http.StatusNotFound

	case errors.Is(err, services.ErrDuplicateSku),
		errors.Is(err, services.ErrCouponCodeExists),
		errors.Is(err, services.ErrReviewAlreadyExists):
		return http.StatusConflict

	case errors.Is(err, services.ErrVariantMismatch),
		errors.Is(err, services.ErrInvalidChangeType),
		errors.Is(err, services.ErrInvalidCouponType),
		errors.Is(err, services.ErrInvalidDealType),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrInsufficientStock):
		return http.StatusBadRequest

	case errors.Is(err, services.ErrCouponDisabled),
		errors.Is(err, services.ErrCouponNotStarted),
		errors.Is(err, services.ErrCouponExpired),
		errors.Is(err, services.ErrCouponUsageLimitReached),
		errors.Is(err, services.ErrCouponPerUserLimitReached),
		errors.Is(err, services.ErrCouponMinimumPurchase):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}
