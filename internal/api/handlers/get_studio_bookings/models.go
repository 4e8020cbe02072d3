package get_studio_bookings

import (
	"strconv"
	"time"

	"github.com/lensroom/studio-booking-service/internal/domain"
	"github.com/lensroom/studio-booking-service/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из path и query параметров.
// startDate без endDate трактуется как запрос на один день
func ToServiceRequest(studioID, userID int64, roomIDStr, statusStr, startDateStr, endDateStr, includeInactiveStr string) (*models.GetStudioBookingsRequest, error) {
	req := &models.GetStudioBookingsRequest{
		UserID:   userID,
		StudioID: studioID,
	}

	if roomIDStr != "" {
		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomID = &roomID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate

		endDate := startDate
		if endDateStr != "" {
			endDate, err = time.Parse(domain.DateFormat, endDateStr)
			if err != nil {
				return nil, err
			}
		}
		req.EndDate = &endDate
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
