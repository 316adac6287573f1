package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

// errorStatus maps usecase sentinels to HTTP status codes. Unknown errors become 500.
var errorStatus = map[error]int{
	usecase.ErrCategoryNotFound:          http.StatusNotFound,
	usecase.ErrStatusNotFound:            http.StatusNotFound,
	usecase.ErrRoomNotFound:              http.StatusNotFound,
	usecase.ErrRoomTypeNotFound:          http.StatusNotFound,
	usecase.ErrRoomTypeNotInBin:          http.StatusNotFound,
	usecase.ErrGuestNotFound:             http.StatusNotFound,
	usecase.ErrBookingNotFound:           http.StatusNotFound,
	usecase.ErrPaymentNotFound:           http.StatusNotFound,
	usecase.ErrPreferenceNotFound:        http.StatusNotFound,
	usecase.ErrCategoryNameTaken:         http.StatusConflict,
	usecase.ErrCategoryInUse:             http.StatusConflict,
	usecase.ErrStatusNameTaken:           http.StatusConflict,
	usecase.ErrStatusInUse:               http.StatusConflict,
	usecase.ErrDefaultStatusProtected:    http.StatusConflict,
	usecase.ErrRoomNumberTaken:           http.StatusConflict,
	usecase.ErrGuestHasBookings:          http.StatusConflict,
	usecase.ErrRoomUnavailable:           http.StatusConflict,
	usecase.ErrBookingNotActive:          http.StatusConflict,
	usecase.ErrBookingAlreadyCancelled:   http.StatusConflict,
	usecase.ErrBookingAlreadyCheckedIn:   http.StatusConflict,
	usecase.ErrBookingNotCheckedIn:       http.StatusConflict,
	usecase.ErrBookingCancelled:          http.StatusConflict,
	usecase.ErrBillNotFound:              http.StatusConflict,
	usecase.ErrNoDefaultStatus:           http.StatusConflict,
	usecase.ErrRoomNotOutOfOrder:         http.StatusConflict,
	usecase.ErrStatusInactive:            http.StatusBadRequest,
	usecase.ErrNotesRequired:             http.StatusBadRequest,
	usecase.ErrInvalidPrice:              http.StatusBadRequest,
	usecase.ErrInvalidRoomTypeCounts:     http.StatusBadRequest,
	usecase.ErrInvalidStayRange:          http.StatusBadRequest,
	usecase.ErrInvalidAmount:             http.StatusBadRequest,
	usecase.ErrMobileMoneyDetailsMissing: http.StatusBadRequest,
	usecase.ErrPaymentAmountRequired:     http.StatusBadRequest,
	usecase.ErrInvalidRate:               http.StatusBadRequest,
	usecase.ErrRateMissing:               http.StatusBadRequest,
	usecase.ErrInvalidPreferenceKey:      http.StatusBadRequest,
	usecase.ErrInvalidPreferenceValue:    http.StatusBadRequest,
	usecase.ErrPreferenceTooLarge:        http.StatusRequestEntityTooLarge,
}

// writeError sends the sentinel's own message for known errors and fallback otherwise.
func writeError(w http.ResponseWriter, err error, fallback string) {
	for sentinel, status := range errorStatus {
		if errors.Is(err, sentinel) {
			response.Error(w, status, sentinel.Error(), nil)
			return
		}
	}
	response.InternalServerError(w, fallback)
}

// decodeJSON reads the request body into dst. An empty body is accepted when optional is set.
func decodeJSON(r *http.Request, dst interface{}, optional bool) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if optional && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

func pathInt(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// queryInt parses an optional positive integer filter; absent or invalid values are ignored.
func queryInt(r *http.Request, name string) *int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 1 {
		return nil
	}
	return &v
}

func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func pagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
