package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

var validate = validator.New()

// decodeAndValidate reads the JSON body into req and runs the struct
// validation tags. Responds and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return false
	}
	if err := validate.Struct(req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			utils.RespondErrorWithCode(
				w, http.StatusUnprocessableEntity, utils.ErrCodeValidation, "Validation failed", vErrs.Error(), err,
			)
			return false
		}
		utils.RespondErrorWithCode(
			w, http.StatusUnprocessableEntity, utils.ErrCodeValidation, "Validation failed", nil, err,
		)
		return false
	}
	return true
}

// pathID extracts the integer {id} path variable. Responds and returns
// false when it is missing or not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id path parameter", nil, err,
		)
		return 0, false
	}
	return id, true
}
